/*
Package randx provides functions for generating cryptographically secure random values and unique identifiers.

It is used to generate development session secrets and the unique ids carried by session tokens.
*/
package randx

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// SecretKeyBytes is the number of random bytes behind a generated secret key.
const SecretKeyBytes = 32

// SecretKey generates a hex encoded key from SecretKeyBytes bytes of crypto/rand output.
func SecretKey() (string, error) {
	buf := make([]byte, SecretKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes for secret key: %v", err)
	}

	return hex.EncodeToString(buf), nil
}

// TokenID generates a standard UUID v4 string to serve as a unique identifier for a session token.
func TokenID() string {
	return uuid.New().String()
}

// IsValidTokenID checks whether id is a well-formed UUID as produced by TokenID.
func IsValidTokenID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
