package imageurl

import (
	"fmt"
	"net/url"
	"strings"
)

// A SizeSet holds the responsive variants derived from one base URL.
type SizeSet struct {
	Thumbnail string
	Small     string
	Medium    string
	Large     string
	Original  string
}

// Variants derives responsive size variants for a resolved URL.
// Recognized CDN hosts get provider-specific resize parameters; data URLs
// and unknown hosts cannot be resized and are returned verbatim.
func Variants(base string) SizeSet {
	resolved := Resolve(base)

	u, err := url.Parse(resolved)
	if err != nil || u.Host == "" {
		return uniformSet(resolved)
	}

	switch {
	case strings.Contains(u.Host, "unsplash.com"):
		return SizeSet{
			Thumbnail: unsplashVariant(u, 150),
			Small:     unsplashVariant(u, 300),
			Medium:    unsplashVariant(u, 600),
			Large:     unsplashVariant(u, 1200),
			Original:  resolved,
		}
	case strings.Contains(u.Host, "cloudinary.com"):
		return SizeSet{
			Thumbnail: cloudinaryVariant(resolved, 150),
			Small:     cloudinaryVariant(resolved, 300),
			Medium:    cloudinaryVariant(resolved, 600),
			Large:     cloudinaryVariant(resolved, 1200),
			Original:  resolved,
		}
	}
	return uniformSet(resolved)
}

func uniformSet(u string) SizeSet {
	return SizeSet{
		Thumbnail: u,
		Small:     u,
		Medium:    u,
		Large:     u,
		Original:  u,
	}
}

func unsplashVariant(base *url.URL, width int) string {
	u := *base
	q := u.Query()
	q.Set("w", fmt.Sprint(width))
	q.Set("h", fmt.Sprint(width))
	q.Set("fit", "crop")
	q.Set("q", "80")
	u.RawQuery = q.Encode()
	return u.String()
}

// cloudinaryVariant injects a fill transform after the /upload/ path
// segment, the documented spot for delivery transformations.
func cloudinaryVariant(base string, width int) string {
	const marker = "/upload/"
	idx := strings.Index(base, marker)
	if idx < 0 {
		return base
	}
	transform := fmt.Sprintf("c_fill,w_%d,h_%d,q_auto/", width, width)
	return base[:idx+len(marker)] + transform + base[idx+len(marker):]
}
