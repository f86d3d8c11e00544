package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the claims of a session token.
type Payload struct {
	// StandardClaims carries expiry (exp), issue time (iat), issuer (iss) and the token id (jti).
	jwt.StandardClaims

	// UserID is the id of the authenticated user the session belongs to.
	UserID int64 `json:"uid"`
}
