package models

import (
	"encoding/json"
	"strings"
)

// Credential is either a salted hash or a legacy plaintext password kept
// for accounts created before hashing was introduced. Both are stored as a
// single JSON string; the bcrypt prefix tells them apart.
type Credential struct {
	hash   []byte
	plain  string
	legacy bool
}

func Hashed(hash []byte) Credential {
	return Credential{hash: append([]byte{}, hash...)}
}

func LegacyPlaintext(password string) Credential {
	return Credential{plain: password, legacy: true}
}

func (c Credential) IsLegacy() bool { return c.legacy }

func (c Credential) Hash() []byte { return c.hash }

func (c Credential) Plaintext() string { return c.plain }

func (c Credential) Equal(other Credential) bool {
	if c.legacy != other.legacy {
		return false
	}
	if c.legacy {
		return c.plain == other.plain
	}
	return string(c.hash) == string(other.hash)
}

func (c Credential) String() string {
	if c.legacy {
		return "legacy-plaintext"
	}
	return "hashed"
}

func (c Credential) MarshalJSON() ([]byte, error) {
	if c.legacy {
		return json.Marshal(c.plain)
	}
	return json.Marshal(string(c.hash))
}

func (c *Credential) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if looksHashed(s) {
		*c = Hashed([]byte(s))
		return nil
	}
	*c = LegacyPlaintext(s)
	return nil
}

func looksHashed(s string) bool {
	if len(s) != 60 {
		return false
	}
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
