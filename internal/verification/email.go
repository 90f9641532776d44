package verification

import "context"

// EmailChecker verifies domain ownership against a recorded email
// confirmation. The confirmation is written out-of-band when the tenant
// follows the link mailed to the domain's administrative addresses; the
// check consumes it.
type EmailChecker struct {
	store *ConfirmStore
}

// NewEmailChecker creates an email checker backed by a confirm store
func NewEmailChecker(store *ConfirmStore) *EmailChecker {
	return &EmailChecker{store: store}
}

// Check consumes a pending email confirmation for the domain
func (ec *EmailChecker) Check(ctx context.Context, domain, token string) (bool, error) {
	return ec.store.Consume(ctx, domain, token)
}
