package service

import "resq/internal/domain/entity"

// IssuedSession is a freshly signed session token together with the claim it carries.
type IssuedSession struct {
	Token string
	Claim entity.SessionClaim
}

// SessionTokenService signs and verifies stateless session tokens.
// Validity depends only on the signature and expiry; there is no server-side revocation.
type SessionTokenService interface {
	// Issue signs a new session token for the account.
	Issue(email string, variant entity.Variant) (*IssuedSession, error)

	// Verify checks signature and expiry and returns the embedded claim.
	Verify(token string) (*entity.SessionClaim, error)
}
