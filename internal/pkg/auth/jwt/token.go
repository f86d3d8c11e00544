/*
Package jwt signs and parses the HS256 tokens used by the JWT session backend.
*/
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"authsite/internal/pkg/randx"
)

// TokenIssuer identifies the issuer of the token.
const TokenIssuer = "authsite"

// GenerateToken fills the standard claims of payload and returns the signed token string.
func GenerateToken(payload *Payload, secretKey string, duration time.Duration) (string, error) {
	now := time.Now()

	payload.StandardClaims = jwt.StandardClaims{
		Id:        randx.TokenID(),
		ExpiresAt: now.Add(duration).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)

	return token.SignedString([]byte(secretKey))
}

// ParseToken parses and validates the token string using secretKey.
func ParseToken(tokenString string, secretKey string) (*Payload, error) {
	claims := &Payload{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	if claims.Issuer != TokenIssuer || !randx.IsValidTokenID(claims.Id) {
		return nil, errors.New("token was not issued by this server")
	}

	return claims, nil
}
