package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"resq/config"
	"resq/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Session: secret},
		Auth: &config.AuthConfig{
			SessionTTL: time.Hour,
			Issuer:     "resq-test",
		},
	}

	return cfg
}

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	s := svc.(*jwtService)
	s.now = func() time.Time { return now }

	return s
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := newTestJWTService(t, now)

	issued, err := svc.Issue("a@x.com", entity.VariantRescuer)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, "a@x.com", issued.Claim.Email)
	assert.Equal(t, entity.VariantRescuer, issued.Claim.Variant)
	assert.Equal(t, now, issued.Claim.IssuedAt)
	assert.Equal(t, now.Add(time.Hour), issued.Claim.ExpiresAt)

	claim, err := svc.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claim.Email)
	assert.Equal(t, entity.VariantRescuer, claim.Variant)
	assert.True(t, claim.ExpiresAt.Equal(issued.Claim.ExpiresAt))
	assert.True(t, claim.IssuedAt.Equal(issued.Claim.IssuedAt))
}

func TestJWTService_Expiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := newTestJWTService(t, issuedAt)

	issued, err := svc.Issue("a@x.com", entity.VariantAuthority)
	require.NoError(t, err)
	expiry := issued.Claim.ExpiresAt

	svc.now = func() time.Time { return expiry.Add(-time.Second) }
	_, err = svc.Verify(issued.Token)
	assert.NoError(t, err, "token must verify before expiry")

	svc.now = func() time.Time { return expiry.Add(time.Second) }
	_, err = svc.Verify(issued.Token)
	assert.Error(t, err, "token must fail after expiry")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	issued, err := svc.Issue("a@x.com", entity.VariantRescuer)
	require.NoError(t, err)

	// Swap the payload for one claiming another account, keeping the original signature.
	parts := strings.Split(issued.Token, ".")
	require.Len(t, parts, 3)
	forged, err := json.Marshal(map[string]any{
		"email": "intruder@x.com",
		"type":  "authority",
		"iss":   "resq-test",
		"exp":   issued.Claim.ExpiresAt.Unix(),
	})
	require.NoError(t, err)
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)

	_, err = svc.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, now)

	other, err := NewJWTService(newTestConfig("another_secret_entirely_different"))
	require.NoError(t, err)

	issued, err := other.Issue("a@x.com", entity.VariantRescuer)
	require.NoError(t, err)

	_, err = svc.Verify(issued.Token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	claims := sessionClaims{
		Email: "a@x.com",
		Type:  "rescuer",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "resq-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnknownVariant(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	claims := sessionClaims{
		Email: "a@x.com",
		Type:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "resq-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, entity.ErrInvalidVariant)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, time.Now())

	claim, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claim)
	assert.Contains(t, err.Error(), "failed to parse session token")
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "session signing secret must be provided")
}

func TestJWTService_ExpiryFollowsSessionTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)
	issued, err := svc.Issue("a@x.com", entity.VariantRescuer)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, issued.Claim.ExpiresAt.Sub(issued.Claim.IssuedAt))

	cfg := newTestConfig("secret")
	cfg.Auth = nil
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	issued, err = svc.Issue("a@x.com", entity.VariantRescuer)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, issued.Claim.ExpiresAt.Sub(issued.Claim.IssuedAt))
}
