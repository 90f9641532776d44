package tenantdomain

import (
	"context"
	"time"

	"tenantcfg/internal/model"
)

// Checker performs a method-specific domain ownership check. Implementations
// report pass/fail given the current external state; transport errors are
// treated by the caller as a failed check, never as an operation error.
type Checker interface {
	Check(ctx context.Context, domain, token string) (bool, error)
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context, domain, token string) (bool, error)

// Check implements Checker
func (f CheckerFunc) Check(ctx context.Context, domain, token string) (bool, error) {
	return f(ctx, domain, token)
}

// Checkers maps each verification method to its checker
type Checkers map[model.VerificationMethod]Checker

// buildVerifyUpdates computes the column updates for a verify call.
// The method and supplied DNS records are recorded unconditionally, even when
// the check failed. verified=true is terminal: a repeated verify refreshes
// the timestamp but never regresses the state.
func buildVerifyUpdates(rec *model.TenantDomain, method model.VerificationMethod, records model.DNSRecordList, token string, passed bool, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{
		"verification_method": method,
		"dns_records":         records,
	}
	if records == nil {
		updates["dns_records"] = model.DNSRecordList{}
	}
	if token != rec.VerificationToken {
		updates["verification_token"] = token
	}

	if rec.Verified || passed {
		updates["verified"] = true
		updates["verified_at"] = now
		updates["status"] = model.DomainStatusActive
	}
	return updates
}
