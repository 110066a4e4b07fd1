package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned for a well-signed token whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for malformed tokens, bad signatures and missing claims.
	ErrTokenInvalid = errors.New("invalid token")
)

// DefaultExpiration is the validity window of a session token.
const DefaultExpiration = time.Hour

// Claims is the signed payload of a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID *int64 `json:"user_id,omitempty"`
}

// JWT issues and verifies session tokens with a shared HS256 secret.
type JWT struct {
	secretKey []byte
	exp       time.Duration
	now       func() time.Time
}

// Option configures a JWT.
type Option func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Option {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the token validity window.
func WithExpiration(exp time.Duration) Option {
	return func(j *JWT) {
		j.exp = exp
	}
}

// WithClock replaces time.Now, used by tests to move across the validity window.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a new JWT instance.
func New(opts ...Option) *JWT {
	j := &JWT{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a token for the given user id.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	return Issue(userID, j.secretKey, j.now(), j.exp)
}

// GetUserID verifies the token and returns the user id it was issued for.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (int64, error) {
	return Verify(tokenString, j.secretKey, j.now())
}

// Issue signs a token for userID that expires ttl after now.
func Issue(userID int64, secret []byte, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: &userID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify checks signature and expiry of tokenString as of now.
// It holds no state and is safe for concurrent use.
func Verify(tokenString string, secret []byte, now time.Time) (int64, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if claims.UserID == nil {
		return 0, fmt.Errorf("%w: user_id claim missing", ErrTokenInvalid)
	}

	return *claims.UserID, nil
}
