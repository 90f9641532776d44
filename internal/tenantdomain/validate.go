package tenantdomain

import (
	"fmt"
	"strings"
)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

// ValidateDomain checks a hostname against RFC-1035 grammar: dot-separated
// labels of 1-63 alphanumeric-or-hyphen characters, no leading or trailing
// hyphen, total length at most 253.
func ValidateDomain(domain string) error {
	if domain == "" {
		return fmt.Errorf("%w: empty domain", ErrInvalidDomainFormat)
	}
	if len(domain) > maxDomainLength {
		return fmt.Errorf("%w: domain exceeds %d characters", ErrInvalidDomainFormat, maxDomainLength)
	}

	for _, label := range strings.Split(domain, ".") {
		if err := validateLabel(label); err != nil {
			return err
		}
	}
	return nil
}

func validateLabel(label string) error {
	if label == "" {
		return fmt.Errorf("%w: empty label", ErrInvalidDomainFormat)
	}
	if len(label) > maxLabelLength {
		return fmt.Errorf("%w: label %q exceeds %d characters", ErrInvalidDomainFormat, label, maxLabelLength)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("%w: label %q has leading or trailing hyphen", ErrInvalidDomainFormat, label)
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return fmt.Errorf("%w: label %q contains invalid character %q", ErrInvalidDomainFormat, label, c)
		}
	}
	return nil
}
