// Package auth issues and verifies the signed session tokens that replace
// the desktop application's in-memory "current user" holder: every request
// carries its own token, so the server keeps no session state.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/univerp/authd/internal/common"
	"github.com/univerp/authd/internal/server/models"
)

// Claims extends the registered JWT claims with the authenticated user id
// and role. The role rides in the token so admin-only methods can be gated
// without a store round-trip.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
	Role   string
}

// GenerateToken mints an HS256 session token for the given identity.
func GenerateToken(ident *models.Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: ident.UserID,
		Role:   string(ident.Role),
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies the signature and expiry of a session token and
// returns the embedded user id and role. Expired tokens return
// common.ErrTokenExpired; any other verification failure returns
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (string, models.Role, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", common.ErrTokenExpired
		}
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.UserID, models.Role(claims.Role), nil
}
