package idutil_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nexuscore/provenance/internal/idutil"
)

func TestIsValidUUID(t *testing.T) {
	cases := []struct {
		name string
		id   string
		want bool
	}{
		{"valid", uuid.New().String(), true},
		{"empty", "", false},
		{"short", "123", false},
		{"malformed", "not-a-uuid-string", false},
		{"zero uuid", "00000000-0000-0000-0000-000000000000", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, idutil.IsValidUUID(tc.id))
		})
	}
}

func TestIsValidURL(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		schemes []string
		want    bool
	}{
		{"valid http", "http://example.com", nil, true},
		{"valid https with path", "https://example.com/path?query=1", nil, true},
		{"valid custom scheme", "custom://data", []string{"custom"}, true},
		{"disallowed scheme", "ftp://example.com", nil, false},
		{"disallowed scheme with explicit list", "ftp://example.com", []string{"http", "https"}, false},
		{"malformed", "http//example.com", nil, false},
		{"empty is valid", "", nil, true},
		{"missing scheme", "example.com", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, idutil.IsValidURL(tc.url, tc.schemes))
		})
	}
}

func TestHashPassword_KnownFixtures(t *testing.T) {
	assert.Equal(t, "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9", idutil.HashPassword("admin123"))
	assert.Equal(t, "9b8769a4a742959a2d0298c36fb70623f2dfacda8436237df08d8dfd5b37374c", idutil.HashPassword("pass123"))
}
