package fetcher

import (
	"testing"
	"time"

	"getjwt/internal/browser"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestInspectTokens(t *testing.T) {
	exp := time.Date(2027, 3, 1, 12, 0, 0, 0, time.UTC)
	cookies := []browser.Cookie{
		{Name: "ps_visitor", Value: "plain-value"},
		{Name: "PsJwt-production", Value: signedToken(t, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(exp),
		})},
		{Name: "no_exp", Value: signedToken(t, jwt.MapClaims{"sub": "bob"})},
		{Name: "dotted", Value: "a.b.c"},
	}

	tokens := InspectTokens(cookies)
	require.Len(t, tokens, 2)

	assert.Equal(t, "PsJwt-production", tokens[0].Cookie)
	assert.True(t, tokens[0].HasExpiry)
	assert.True(t, exp.Equal(tokens[0].ExpiresAt))

	assert.Equal(t, "no_exp", tokens[1].Cookie)
	assert.False(t, tokens[1].HasExpiry)
}

func TestInspectTokens_Empty(t *testing.T) {
	assert.Empty(t, InspectTokens(nil))
}
