package bookmark

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when input does not name an absolute http(s) URL.
var ErrInvalidURL = errors.New("bookmark: url must be absolute http or https")

// ParseURL trims raw and validates that it is an absolute URL with an http or
// https scheme, returning the trimmed form.
func ParseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrInvalidURL
	}
	if u.Host == "" {
		return "", ErrInvalidURL
	}
	return trimmed, nil
}

// ValidURL reports whether raw would be accepted by ParseURL.
func ValidURL(raw string) bool {
	_, err := ParseURL(raw)
	return err == nil
}
