package jwt

import (
	"strings"
	"testing"
	"time"

	"moodmate/be/biz/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newTestService(now time.Time) *Service {
	return New(config.JWTConf{
		Issuer:            "go test",
		AccessTokenSecret: "secret",
	}).WithClock(func() time.Time { return now })
}

func TestIssueAndVerify(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(issuedAt)

	tok, err := svc.Issue("pub-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, tok.Value)
	assert.Equal(t, issuedAt.Add(300*time.Minute).Unix(), tok.ExpiresAt)

	t.Run("valid", func(t *testing.T) {
		v := svc.Verify(tok.Value)
		assert.True(t, v.Valid())
		assert.Equal(t, "pub-1", v.Subject)
	})

	t.Run("still valid just before expiry", func(t *testing.T) {
		v := svc.WithClock(func() time.Time { return issuedAt.Add(299 * time.Minute) }).Verify(tok.Value)
		assert.Equal(t, StatusValid, v.Status)
	})

	t.Run("expired", func(t *testing.T) {
		v := svc.WithClock(func() time.Time { return issuedAt.Add(301 * time.Minute) }).Verify(tok.Value)
		assert.Equal(t, StatusExpired, v.Status)
		assert.Empty(t, v.Subject)
	})

	t.Run("secret key invalid", func(t *testing.T) {
		other := New(config.JWTConf{AccessTokenSecret: "secret123"}).
			WithClock(func() time.Time { return issuedAt })
		v := other.Verify(tok.Value)
		assert.Equal(t, StatusBadSignature, v.Status)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(tok.Value, ".")
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour))},
			PublicID:         "pub-admin",
		}).SignedString([]byte("attacker"))
		assert.NoError(t, err)
		forgedParts := strings.Split(forged, ".")

		v := svc.Verify(parts[0] + "." + forgedParts[1] + "." + parts[2])
		assert.Equal(t, StatusBadSignature, v.Status)
	})
}

func TestVerify_Rejections(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)
	exp := jwt.NewNumericDate(now.Add(time.Hour))

	t.Run("missing", func(t *testing.T) {
		assert.Equal(t, StatusMissing, svc.Verify("").Status)
	})

	t.Run("malformed", func(t *testing.T) {
		assert.Equal(t, StatusMalformed, svc.Verify("not-a-token").Status)
		assert.Equal(t, StatusMalformed, svc.Verify("a.b.c").Status)
	})

	t.Run("unexpected method", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
			PublicID:         "pub-1",
		}).SignedString([]byte("secret"))
		assert.NoError(t, err)
		assert.Equal(t, StatusUnexpectedMethod, svc.Verify(tok).Status)

		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
			PublicID:         "pub-1",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)
		assert.Equal(t, StatusUnexpectedMethod, svc.Verify(none).Status)
	})

	t.Run("no expiry", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{PublicID: "pub-1"}).
			SignedString([]byte("secret"))
		assert.NoError(t, err)
		assert.False(t, svc.Verify(tok).Valid())
	})

	t.Run("no subject", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
		}).SignedString([]byte("secret"))
		assert.NoError(t, err)
		assert.Equal(t, StatusMalformed, svc.Verify(tok).Status)
	})
}

func TestIssue_EmptySubject(t *testing.T) {
	_, err := newTestService(time.Now()).Issue("")
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestNew_Window(t *testing.T) {
	assert.Equal(t, DefaultAccessExpiration, New(config.JWTConf{}).Window())
	assert.Equal(t, 10*time.Second, New(config.JWTConf{AccessExpiration: 10}).Window())
}
