package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Timomoulin/Todo0/internal/core/domain"
)

const sessionIssuer = "todoapp"

var ErrInvalidSession = errors.New("invalid session")

type sessionClaims struct {
	UserID uint64   `json:"uid"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// SessionCodec signs and verifies the session token stored in the session
// cookie.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionCodec(secret string, ttl time.Duration) *SessionCodec {
	return &SessionCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (c *SessionCodec) TTL() time.Duration {
	return c.ttl
}

func (c *SessionCodec) Encode(principal domain.Principal) (string, error) {
	issuedAt := c.now()
	claims := sessionClaims{
		UserID: principal.UserID,
		Roles:  principal.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Name,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

func (c *SessionCodec) Decode(token string) (domain.Principal, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if claims.Subject == "" {
		return domain.Principal{}, ErrInvalidSession
	}

	return domain.Principal{
		UserID: claims.UserID,
		Name:   claims.Subject,
		Roles:  claims.Roles,
	}, nil
}
