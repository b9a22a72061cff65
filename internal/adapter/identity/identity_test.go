package identity

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestPrefill(t *testing.T) {
	p := NewPrefiller()

	t.Run("ProfileClaims", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{
			"given_name":   "Ada",
			"family_name":  "Lovelace",
			"email":        "ada@example.com",
			"phone_number": "+15550100",
		})

		info, err := p.Prefill(tok)
		require.NoError(t, err)
		assert.Equal(t, "Ada", info.FirstName)
		assert.Equal(t, "Lovelace", info.LastName)
		assert.Equal(t, "ada@example.com", info.Email)
		assert.Equal(t, "+15550100", info.Phone)
	})

	t.Run("DisplayNameFallback", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{
			"name":  "Augusta Ada King",
			"email": "ada@example.com",
		})

		info, err := p.Prefill(tok)
		require.NoError(t, err)
		assert.Equal(t, "Augusta Ada", info.FirstName)
		assert.Equal(t, "King", info.LastName)
	})

	t.Run("SingleWordName", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"name": "Ada"})

		info, err := p.Prefill(tok)
		require.NoError(t, err)
		assert.Equal(t, "Ada", info.FirstName)
		assert.Empty(t, info.LastName)
	})

	t.Run("NonStringClaimIgnored", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{
			"given_name": 42,
			"email":      "ada@example.com",
		})

		info, err := p.Prefill(tok)
		require.NoError(t, err)
		assert.Empty(t, info.FirstName)
		assert.Equal(t, "ada@example.com", info.Email)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := p.Prefill("not.a.token")
		assert.Error(t, err)
	})
}
