package verification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const wellKnownPath = "/.well-known/domain-verification.txt"

// maxChallengeBody bounds how much of the challenge file is read; the token
// is 64 characters, anything much larger is not ours.
const maxChallengeBody = 4096

// FileChecker verifies domain ownership by fetching the well-known challenge
// file over HTTPS and comparing its content to the stored token.
type FileChecker struct {
	client *http.Client
}

// NewFileChecker creates a file checker
func NewFileChecker(timeout time.Duration) *FileChecker {
	return &FileChecker{
		client: &http.Client{Timeout: timeout},
	}
}

// Check fetches the well-known verification file
func (fc *FileChecker) Check(ctx context.Context, domain, token string) (bool, error) {
	url := fmt.Sprintf("https://%s%s", domain, wellKnownPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := fc.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxChallengeBody))
	if err != nil {
		return false, fmt.Errorf("failed to read challenge file: %w", err)
	}
	return strings.TrimSpace(string(body)) == token, nil
}
