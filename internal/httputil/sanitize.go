package httputil

import (
	"fmt"
	"net/url"
)

// ValidateURL checks that a URL is well-formed and uses HTTP or HTTPS.
// Plain HTTP stays allowed because the backend commonly runs on localhost.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("only HTTP(S) URLs are allowed, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host")
	}
	return nil
}

// BuildURL constructs a URL from base and path components, encoding each
// path segment.
func BuildURL(base string, pathSegments ...string) string {
	u := base
	for len(u) > 0 && u[len(u)-1] == '/' {
		u = u[:len(u)-1]
	}
	for _, seg := range pathSegments {
		u += "/" + url.PathEscape(seg)
	}
	return u
}
