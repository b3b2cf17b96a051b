// internals/features/identity/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"currimon_backend/internals/configs"
)

/* ==========================
   Session token issuer
========================== */

// TokenService signs and parses the stateless bearer credential. Expiry is
// the sole cancellation mechanism; there is no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *configs.Config) *TokenService {
	return &TokenService{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL}
}

func NewTokenServiceWith(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func buildAccessClaims(id Identity, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"id":         id.ID,
		"username":   id.Email,
		"first_name": id.FirstName,
		"last_name":  id.LastName,
		"role":       id.Role,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
}

// Issue signs an HS256 token embedding the resolved identity.
func (s *TokenService) Issue(id Identity) (string, error) {
	claims := buildAccessClaims(id, time.Now().UTC(), s.ttl)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// TTL exposes the configured lifetime for cookie expiry.
func (s *TokenService) TTL() time.Duration { return s.ttl }

// Parse validates signature and expiry and rebuilds the identity.
func (s *TokenService) Parse(tokenString string) (*Identity, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}); err != nil {
		return nil, err
	}
	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}
	return &Identity{
		ID:        str("id"),
		Email:     str("username"),
		FirstName: str("first_name"),
		LastName:  str("last_name"),
		Role:      str("role"),
	}, nil
}
