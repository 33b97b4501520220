// Package auth provides the credential primitives of the server: password
// hashing and the signed-token codec. Both are pure; all state (secret,
// validity, cost) is passed in by the caller.
package auth

import (
	"errors"
	"time"

	"github.com/avoronov/authkeeper/internal/common"
	"github.com/avoronov/authkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the registered claims plus the identity
// snapshot taken at issuance. The password hash is never part of it.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

// GenerateToken signs an HS256 token over the user's snapshot, valid for
// validityDuration from now.
func GenerateToken(user *models.User, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies the token's signature and expiry and returns its
// claims. Signature is checked before any claim is trusted. Expired tokens
// yield common.ErrTokenExpired; everything else (malformed input, wrong
// algorithm, bad signature) yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
