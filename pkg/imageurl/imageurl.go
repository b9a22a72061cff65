// Package imageurl normalizes heterogeneous image references (HTTP URLs,
// raw Base64 payloads, data URLs) into displayable URLs and derives
// responsive size variants. Every function is total: bad input degrades
// to a fixed placeholder, image display must never block rendering.
package imageurl

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// FallbackURL is returned whenever a reference cannot be resolved.
const FallbackURL = "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=800&q=80"

var base64Charset = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// Resolve turns an arbitrary image reference into a guaranteed display URL.
func Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return FallbackURL
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	if strings.HasPrefix(ref, "data:") {
		return ref
	}

	if raw, ok := decodeBase64(ref); ok {
		return "data:" + DetectMIME(raw) + ";base64," + ref
	}

	return FallbackURL
}

// IsBase64 reports whether s is a syntactically valid Base64 payload:
// charset, padding, length multiple of 4 and round-trip equality.
func IsBase64(s string) bool {
	_, ok := decodeBase64(s)
	return ok
}

func decodeBase64(s string) ([]byte, bool) {
	if s == "" || len(s)%4 != 0 || !base64Charset.MatchString(s) {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, false
	}
	if base64.StdEncoding.EncodeToString(raw) != s {
		return nil, false
	}
	return raw, true
}

// DetectMIME sniffs the leading magic bytes of an image payload.
// Unrecognized content defaults to image/jpeg, matching how the
// storefront renders unknown uploads.
func DetectMIME(data []byte) string {
	if mime, ok := sniffMIME(data); ok {
		return mime
	}
	return "image/jpeg"
}

func sniffMIME(data []byte) (string, bool) {
	if len(data) < 4 {
		return "", false
	}
	switch {
	case data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47:
		return "image/png", true
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg", true
	case data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x38:
		return "image/gif", true
	case data[0] == 0x52 && data[1] == 0x49 && data[2] == 0x46 && data[3] == 0x46:
		return "image/webp", true
	}
	return "", false
}
