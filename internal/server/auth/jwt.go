// Package auth contains the token codec (HS256 JWTs) and the credential
// hasher (bcrypt) used by the authentication and user services.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the validity of issued tokens when none is configured.
const DefaultTokenTTL = 4 * time.Hour

// Claims is the signed token body: the application claim id plus the
// standard exp/iat fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// Payload is the application part of a verified token. Standard claims
// (exp, iat) are dropped before a payload reaches any lookup.
type Payload struct {
	ID string
}

// TokenCodec signs and verifies tokens with a shared HMAC secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec returns a codec issuing tokens valid for ttl.
// A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: secret, ttl: ttl, now: time.Now}
}

// Sign issues a token for userID with the codec's default validity.
func (c *TokenCodec) Sign(userID string) (string, error) {
	return c.SignWithTTL(userID, c.ttl)
}

// SignWithTTL issues a token for userID valid for ttl.
func (c *TokenCodec) SignWithTTL(userID string, ttl time.Duration) (string, error) {
	return generateToken(userID, c.secret, c.now(), ttl)
}

// Verify checks the signature and expiry of token and returns its payload.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// verification yields common.ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (*Payload, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired(), jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, errors.Join(common.ErrInvalidToken, err)
	}

	if !parsed.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return &Payload{ID: claims.UserID}, nil
}

func generateToken(userID string, secretKey []byte, now time.Time, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
