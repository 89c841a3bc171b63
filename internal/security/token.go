package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that cannot be trusted:
// malformed, tampered, expired, or missing its subject.
var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer issues and verifies signed bearer tokens. Tokens are
// stateless; there is no revocation before expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and
// default token lifetime.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

type claims struct {
	AuthType string `json:"auth_type,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed token carrying the user id and expiry.
// authType records which login path produced the token and may be empty.
func (t *TokenIssuer) IssueToken(userID int64, authType string) (string, error) {
	now := time.Now()
	c := claims{
		AuthType: authType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(t.secret)
}

// VerifyToken checks signature and expiry and returns the user id.
// Any failure mode maps to ErrInvalidToken; malformed input never panics.
func (t *TokenIssuer) VerifyToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.Subject == "" {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
