package entity

import "time"

// SessionClaim is what a session token asserts. It is carried by the client and never stored.
type SessionClaim struct {
	Email     string
	Variant   Variant
	IssuedAt  time.Time
	ExpiresAt time.Time
}
