package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims carried by a session token. Subject is the user's OpenID and ID
// (jti) identifies the session for revocation.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// OpenID returns the identity key the session was issued for.
func (c *Claims) OpenID() string { return c.Subject }

// SessionManager issues and verifies HS256-signed session tokens.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret []byte, issuer string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: secret, issuer: issuer, ttl: ttl, now: time.Now}
}

// Issue signs a new session for openID.
func (m *SessionManager) Issue(openID, name string) (string, *Claims, error) {
	now := m.now()
	claims := &Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   openID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Verify parses a token and validates signature, issuer and expiry.
func (m *SessionManager) Verify(token string) (*Claims, error) {
	claims := new(Claims)
	parser := jwt.NewParser(
		jwt.WithIssuer(m.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Remaining returns how long the session stays valid.
func (m *SessionManager) Remaining(c *Claims) time.Duration {
	if c == nil || c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Sub(m.now())
}

// TTL is the lifetime of newly issued sessions.
func (m *SessionManager) TTL() time.Duration { return m.ttl }
