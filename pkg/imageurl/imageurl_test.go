package imageurl_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/glowmart/storefront/pkg/imageurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	gifBytes  = []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61}
	webpBytes = []byte{0x52, 0x49, 0x46, 0x46, 0x24, 0x00}
)

func TestResolve(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, imageurl.FallbackURL, imageurl.Resolve(""))
		assert.Equal(t, imageurl.FallbackURL, imageurl.Resolve("   "))
	})

	t.Run("HTTPPassthrough", func(t *testing.T) {
		u := "https://cdn.example.com/serum.jpg"
		assert.Equal(t, u, imageurl.Resolve(u))

		u = "http://cdn.example.com/serum.jpg"
		assert.Equal(t, u, imageurl.Resolve(u))
	})

	t.Run("DataURLPassthrough", func(t *testing.T) {
		u := "data:image/png;base64,iVBORw0KGgo="
		assert.Equal(t, u, imageurl.Resolve(u))
	})

	t.Run("ValidBase64PNG", func(t *testing.T) {
		enc := base64.StdEncoding.EncodeToString(pngBytes)
		got := imageurl.Resolve(enc)
		assert.Equal(t, "data:image/png;base64,"+enc, got)
	})

	t.Run("ValidBase64UnknownPayload", func(t *testing.T) {
		enc := base64.StdEncoding.EncodeToString([]byte{0x00, 0x01, 0x02, 0x03})
		got := imageurl.Resolve(enc)
		assert.True(t, strings.HasPrefix(got, "data:image/jpeg;base64,"))
	})

	t.Run("MalformedBase64", func(t *testing.T) {
		assert.Equal(t, imageurl.FallbackURL, imageurl.Resolve("no pad!!"))
		assert.Equal(t, imageurl.FallbackURL, imageurl.Resolve("abc"))
	})

	t.Run("ArbitraryText", func(t *testing.T) {
		assert.Equal(t, imageurl.FallbackURL, imageurl.Resolve("hydrating face cream"))
	})

	// totality: any input yields a displayable URL, never a panic
	t.Run("Totality", func(t *testing.T) {
		inputs := []string{
			"", " ", "====", "a", "ab", "abc",
			"\x00\xff", "data:", "http://", "%%%",
			strings.Repeat("A", 4001),
			base64.StdEncoding.EncodeToString(jpegBytes),
		}
		for _, in := range inputs {
			got := imageurl.Resolve(in)
			require.NotEmpty(t, got)
			ok := strings.HasPrefix(got, "http://") ||
				strings.HasPrefix(got, "https://") ||
				strings.HasPrefix(got, "data:")
			assert.True(t, ok, "input %q resolved to %q", in, got)
		}
	})
}

func TestIsBase64(t *testing.T) {
	assert.True(t, imageurl.IsBase64(base64.StdEncoding.EncodeToString(gifBytes)))
	assert.False(t, imageurl.IsBase64("abc"))      // length not multiple of 4
	assert.False(t, imageurl.IsBase64("ab cd=="))  // charset violation
	assert.False(t, imageurl.IsBase64(""))
}

func TestDetectMIME(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"PNG", pngBytes, "image/png"},
		{"JPEG", jpegBytes, "image/jpeg"},
		{"GIF", gifBytes, "image/gif"},
		{"WebP", webpBytes, "image/webp"},
		{"Unknown", []byte{0x01, 0x02, 0x03, 0x04}, "image/jpeg"},
		{"Short", []byte{0x89}, "image/jpeg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, imageurl.DetectMIME(tc.data))
		})
	}
}
