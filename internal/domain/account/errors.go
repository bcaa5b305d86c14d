package account

import "github.com/VanderIG123/stylists-api/internal/httperr"

var (
	ErrStylistNotFound    = httperr.NotFoundErr("stylist_not_found", "Stylist not found.")
	ErrUserNotFound       = httperr.NotFoundErr("user_not_found", "User not found.")
	ErrInvalidCredentials = httperr.UnauthorizedErr("invalid_credentials", "Invalid email or password.")
	ErrForbidden          = httperr.Forbidden("forbidden", "You can only change your own profile.")
	ErrInvalidEmailDomain = httperr.Validation("invalid_email_domain", "The email domain does not accept mail.")
	ErrNameRequired       = httperr.Validation("invalid_request", "Name is required.")
)
