package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// TokenManager issues and verifies HS256-signed JWT access tokens. The key is
// set once at construction and read-only after that, so concurrent use needs
// no synchronization.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Tests use it to exercise expiry.
func (tm *TokenManager) WithClock(now func() time.Time) *TokenManager {
	tm.now = now
	return tm
}

// Claims describes the signed JWT payload.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the given account.
func (tm *TokenManager) Issue(userID string, role domain.Role) (string, error) {
	now := tm.now()
	claims := &Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify checks signature integrity and expiry, then derives the caller's
// Identity from the claims. A role value outside the known enum is a
// malformed token, not a policy decision.
func (tm *TokenManager) Verify(tokenStr string) (domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Identity{}, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Identity{}, errors.New("invalid token claims")
	}
	if claims.Subject == "" {
		return domain.Identity{}, errors.New("token missing subject")
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{UserID: claims.Subject, Role: role}, nil
}
