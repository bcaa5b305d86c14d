package models

import "strings"

// AccountKind separates the two credential namespaces.
type AccountKind string

const (
	KindStylist AccountKind = "stylist"
	KindUser    AccountKind = "user"
)

func (k AccountKind) Valid() bool {
	return k == KindStylist || k == KindUser
}

// NormalizeEmail is the sole key form for identities.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AccountKinds lists every kind in a stable order.
func AccountKinds() []AccountKind {
	return []AccountKind{KindStylist, KindUser}
}
