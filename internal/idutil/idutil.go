// Package idutil holds the identifier and credential validation
// helpers shared by the authorization and session collaborators.
package idutil

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"

	"github.com/google/uuid"
)

// IsValidUUID reports whether id parses as an RFC 4122 UUID in any of
// the forms the google/uuid package accepts.
func IsValidUUID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// IsValidURL reports whether urlStr parses as an absolute URL whose
// scheme is in allowedSchemes. A nil or empty allowedSchemes defaults
// to http/https. An empty urlStr is treated as valid since callers
// use it for optional fields.
func IsValidURL(urlStr string, allowedSchemes []string) bool {
	if urlStr == "" {
		return true
	}
	parsed, err := url.ParseRequestURI(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}
	if len(allowedSchemes) == 0 {
		allowedSchemes = []string{"http", "https"}
	}
	for _, s := range allowedSchemes {
		if parsed.Scheme == s {
			return true
		}
	}
	return false
}

// HashPassword renders the SHA-256 digest of the UTF-8 password bytes
// as lowercase hex, matching the fixtures the authentication
// collaborator pins its credential store against.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
