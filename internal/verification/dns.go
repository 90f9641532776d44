package verification

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-acme/lego/v4/challenge/dns01"
)

// DNSChecker verifies domain ownership by looking up the challenge TXT
// record at _verification.<domain> and comparing it to the stored token.
type DNSChecker struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// NewDNSChecker creates a DNS checker using the system resolver
func NewDNSChecker(timeout time.Duration) *DNSChecker {
	return &DNSChecker{
		resolver: net.DefaultResolver,
		timeout:  timeout,
	}
}

// Check looks up the verification TXT record
func (dc *DNSChecker) Check(ctx context.Context, domain, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dc.timeout)
	defer cancel()

	name := dns01.ToFqdn(fmt.Sprintf("_verification.%s", domain))
	records, err := dc.resolver.LookupTXT(ctx, name)
	if err != nil {
		// NXDOMAIN just means the record is not published yet.
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up TXT record for %s: %w", domain, err)
	}

	for _, record := range records {
		if record == token {
			return true, nil
		}
	}
	return false, nil
}
