package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(&Payload{UserID: 42}, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.Id)
}

func TestParseToken_Rejects(t *testing.T) {
	valid, err := GenerateToken(&Payload{UserID: 1}, testSecret, time.Hour)
	require.NoError(t, err)

	expired, err := GenerateToken(&Payload{UserID: 1}, testSecret, -time.Minute)
	require.NoError(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &Payload{
		StandardClaims: jwt.StandardClaims{Issuer: "someone-else", ExpiresAt: time.Now().Add(time.Hour).Unix()},
		UserID:         1,
	})
	foreignToken, err := foreign.SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Payload{UserID: 1})
	noneToken, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]struct {
		token  string
		secret string
	}{
		"wrong secret":   {token: valid, secret: "other"},
		"expired":        {token: expired, secret: testSecret},
		"foreign issuer": {token: foreignToken, secret: testSecret},
		"alg none":       {token: noneToken, secret: testSecret},
		"garbage":        {token: "not.a.token", secret: testSecret},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			assert.Error(t, err)
		})
	}
}
