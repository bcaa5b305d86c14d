package auth

import "github.com/VanderIG123/stylists-api/internal/models"

// Principal is the authenticated caller of a request.
type Principal struct {
	ID    int64              `json:"id"`
	Email string             `json:"email"`
	Type  models.AccountKind `json:"type"`
}

// Owns reports whether p is the account (kind, id).
func (p Principal) Owns(kind models.AccountKind, id int64) bool {
	return p.Type == kind && p.ID == id
}
