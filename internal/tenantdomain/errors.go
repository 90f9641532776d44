package tenantdomain

import "errors"

// Registry error kinds. Handlers translate these to httpx responses;
// anything else bubbling out of the service is a store failure.
var (
	ErrInvalidDomainFormat = errors.New("invalid domain format")
	ErrDomainAlreadyExists = errors.New("domain already registered")
	ErrDomainNotFound      = errors.New("domain not found")
	ErrDomainProtected     = errors.New("cannot delete primary or default domain")
)
