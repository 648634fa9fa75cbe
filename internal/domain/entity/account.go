package entity

import (
	"strings"
	"time"
)

// Account is a registered rescuer, authority or organization.
// The ID is supplied by the client at registration and never generated server-side.
type Account struct {
	ID           string    // Externally supplied unique identifier.
	Variant      Variant   // Which table the account lives in. Immutable after creation.
	Name         string    // Display name.
	Phone        string    // Contact phone number.
	Email        string    // Login identifier, unique within its variant.
	PasswordHash string    // bcrypt digest. Never leaves the service layer.
	City         string    // Lowercased on write.
	State        string    // Lowercased on write.
	Country      string    // Lowercased on write.
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// NormalizeLocation lowercases the location fields.
func (a *Account) NormalizeLocation() {
	a.City = strings.ToLower(strings.TrimSpace(a.City))
	a.State = strings.ToLower(strings.TrimSpace(a.State))
	a.Country = strings.ToLower(strings.TrimSpace(a.Country))
}
