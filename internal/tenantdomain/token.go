package tenantdomain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewVerificationToken generates a random 256-bit token, hex-encoded.
func NewVerificationToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
