package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"resq/config"
	"resq/internal/domain/entity"
	"resq/internal/domain/service"
	"resq/internal/errors"
)

// sessionClaims is the JWT payload of a session token.
type sessionClaims struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the SessionTokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // HMAC secret, loaded once at boot and never mutated.
	issuer string           // Value of the iss claim.
	ttl    time.Duration    // Time-to-live for session tokens.
	now    func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// A missing secret is a startup failure.
func NewJWTService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg == nil || cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	ttl := 24 * time.Hour
	issuer := ""
	if cfg.Auth != nil {
		if cfg.Auth.SessionTTL > 0 {
			ttl = cfg.Auth.SessionTTL
		}
		issuer = cfg.Auth.Issuer
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed session token embedding the email, the variant and an expiry.
func (s *jwtService) Issue(email string, variant entity.Variant) (*service.IssuedSession, error) {
	// JWT timestamps have second precision.
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := sessionClaims{
		Email: email,
		Type:  variant.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	return &service.IssuedSession{
		Token: signed,
		Claim: entity.SessionClaim{
			Email:     email,
			Variant:   variant,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
	}, nil
}

// Verify checks the signature, algorithm, issuer and expiry of a session token.
func (s *jwtService) Verify(tokenString string) (*entity.SessionClaim, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}

	variant, err := entity.ParseVariant(claims.Type)
	if err != nil {
		return nil, errors.Wrap(err, "session token carries an unknown account type")
	}
	if claims.Email == "" {
		return nil, errors.New("session token carries no email")
	}

	claim := &entity.SessionClaim{
		Email:     claims.Email,
		Variant:   variant,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		claim.IssuedAt = claims.IssuedAt.Time
	}

	return claim, nil
}
