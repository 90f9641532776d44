package tenantdomain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDomain(t *testing.T) {
	longLabel := strings.Repeat("a", 64)
	okLabel := strings.Repeat("a", 63)
	// 4*63 + 3 dots = 255 > 253
	tooLong := strings.Join([]string{okLabel, okLabel, okLabel, okLabel}, ".")

	tests := []struct {
		name    string
		domain  string
		wantErr bool
	}{
		{"simple", "example.com", false},
		{"subdomain", "shop.example.com", false},
		{"hyphenated", "my-shop.example.com", false},
		{"digits", "a1.b2.c3", false},
		{"max label", okLabel + ".com", false},
		{"single label", "localhost", false},
		{"empty", "", true},
		{"label too long", longLabel + ".com", true},
		{"domain too long", tooLong, true},
		{"leading hyphen", "-shop.example.com", true},
		{"trailing hyphen", "shop-.example.com", true},
		{"empty label", "shop..com", true},
		{"leading dot", ".example.com", true},
		{"trailing dot", "example.com.", true},
		{"underscore", "my_shop.example.com", true},
		{"space", "my shop.example.com", true},
		{"scheme", "https://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDomain(tt.domain)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateDomain(%q) = nil, want error", tt.domain)
				}
				if !errors.Is(err, ErrInvalidDomainFormat) {
					t.Errorf("error %v does not wrap ErrInvalidDomainFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateDomain(%q) = %v, want nil", tt.domain, err)
			}
		})
	}
}
