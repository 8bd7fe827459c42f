package jwt

import (
	"errors"
	"time"

	"moodmate/be/biz/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultAccessExpiration is used when the config leaves the window unset.
const DefaultAccessExpiration = 300 * time.Minute

var (
	ErrEmptySubject = errors.New("credential subject is empty")

	errUnexpectedMethod = errors.New("unexpected jwt method")
)

type Status int

const (
	StatusValid Status = iota
	StatusMissing
	StatusMalformed
	StatusBadSignature
	StatusExpired
	StatusUnexpectedMethod
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusMissing:
		return "missing"
	case StatusMalformed:
		return "malformed"
	case StatusBadSignature:
		return "bad_signature"
	case StatusExpired:
		return "expired"
	case StatusUnexpectedMethod:
		return "unexpected_method"
	}
	return "unknown"
}

type Token struct {
	Value     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Verification is the outcome of Verify. Subject is only set when Status is
// StatusValid.
type Verification struct {
	Status  Status
	Subject string
}

func (v Verification) Valid() bool {
	return v.Status == StatusValid
}

type Claims struct {
	jwt.RegisteredClaims

	PublicID string `json:"public_id"`
}

// Service issues and verifies HS256 access credentials. It keeps no state
// besides the signing secret, so issued credentials cannot be revoked and
// simply expire.
type Service struct {
	secret []byte
	issuer string
	window time.Duration
	now    func() time.Time
}

func New(conf config.JWTConf) *Service {
	window := time.Duration(conf.AccessExpiration) * time.Second
	if window <= 0 {
		window = DefaultAccessExpiration
	}
	return &Service{
		secret: []byte(conf.AccessTokenSecret),
		issuer: conf.Issuer,
		window: window,
		now:    time.Now,
	}
}

// WithClock returns a copy of the service reading time from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	cp := *s
	cp.now = now
	return &cp
}

func (s *Service) Window() time.Duration {
	return s.window
}

func (s *Service) Issue(publicID string) (Token, error) {
	if publicID == "" {
		return Token{}, ErrEmptySubject
	}

	now := s.now()
	expAt := now.Add(s.window)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
		PublicID: publicID,
	}

	value, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: value, ExpiresAt: expAt.Unix()}, nil
}

func (s *Service) Verify(tokenStr string) Verification {
	if tokenStr == "" {
		return Verification{Status: StatusMissing}
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errUnexpectedMethod
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Verification{Status: statusOf(err)}
	}
	if !token.Valid || claims.PublicID == "" {
		return Verification{Status: StatusMalformed}
	}

	return Verification{Status: StatusValid, Subject: claims.PublicID}
}

func statusOf(err error) Status {
	switch {
	case errors.Is(err, errUnexpectedMethod):
		return StatusUnexpectedMethod
	case errors.Is(err, jwt.ErrTokenMalformed):
		return StatusMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return StatusBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return StatusExpired
	}
	return StatusMalformed
}
