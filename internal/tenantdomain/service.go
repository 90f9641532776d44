package tenantdomain

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tenantcfg/internal/model"
)

// Service is the tenant domain registry. It owns the domain-to-tenant
// mapping, the per-tenant default/primary singleton flags, and the
// verification workflow. All durable state lives in the database; the
// service keeps no state between calls.
type Service struct {
	db       *gorm.DB
	checkers Checkers
	logger   *logrus.Entry
}

// NewService creates the registry service
func NewService(db *gorm.DB, checkers Checkers, logger *logrus.Entry) *Service {
	return &Service{
		db:       db,
		checkers: checkers,
		logger:   logger.WithField("component", "tenant-domain-registry"),
	}
}

// RegisterParams holds the fields accepted when registering a domain
type RegisterParams struct {
	TenantID   string
	Domain     string
	DomainType model.DomainType
	Protocol   model.DomainProtocol
	IsDefault  bool
	IsPrimary  bool
	RedirectTo string
	SSLConfig  *model.SSLConfig
	CORSConfig *model.CORSConfig
	Notes      string
}

// UpdateParams is a partial patch; nil fields keep their prior value.
// Verification state is deliberately absent: it only moves through Verify.
type UpdateParams struct {
	DomainType        *model.DomainType
	Status            *model.DomainStatus
	Protocol          *model.DomainProtocol
	IsDefault         *bool
	IsPrimary         *bool
	RedirectTo        *string
	SSLConfig         *model.SSLConfig
	CORSConfig        *model.CORSConfig
	PerformanceConfig datatypes.JSON
	DNSProvider       datatypes.JSON
	Notes             *string
}

// Register creates a new domain mapping. The domain must be globally unique;
// the unique index is the authority and a duplicate-key insert surfaces as
// ErrDomainAlreadyExists even when two registrations race past the pre-check.
// Flag sweeps run before the insert inside one transaction so the tenant
// never holds two defaults, not even transiently.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*model.TenantDomain, error) {
	if err := ValidateDomain(params.Domain); err != nil {
		return nil, err
	}

	// Pre-check for a friendlier error; the unique index still backs it up.
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.TenantDomain{}).
		Where("domain = ?", params.Domain).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDomainAlreadyExists
	}

	token, err := NewVerificationToken()
	if err != nil {
		return nil, err
	}

	rec := &model.TenantDomain{
		TenantID:           params.TenantID,
		Domain:             params.Domain,
		DomainType:         params.DomainType,
		Status:             model.DomainStatusActive,
		IsDefault:          params.IsDefault,
		IsPrimary:          params.IsPrimary,
		Protocol:           defaultProtocol(params.Protocol),
		RedirectTo:         params.RedirectTo,
		SSLConfig:          defaultSSLConfig(params.SSLConfig),
		CORSConfig:         defaultCORSConfig(params.CORSConfig),
		VerificationMethod: model.VerifyMethodDNS,
		VerificationToken:  token,
		DNSRecords:         model.DNSRecordList{},
		PerformanceConfig:  defaultPerformanceConfig(),
		DNSProvider:        datatypes.JSON([]byte(`{}`)),
		Notes:              params.Notes,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if params.IsDefault {
			if err := sweepFlag(tx, params.TenantID, "is_default", ""); err != nil {
				return err
			}
		}
		if params.IsPrimary {
			if err := sweepFlag(tx, params.TenantID, "is_primary", ""); err != nil {
				return err
			}
		}
		if err := tx.Create(rec).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDomainAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"tenantId": params.TenantID,
		"domain":   params.Domain,
	}).Info("domain registered")
	return rec, nil
}

// Resolve looks up an active domain and counts the access. The increment is
// applied server-side in a single UPDATE so concurrent resolutions never
// lose counts; the record is fetched afterwards.
func (s *Service) Resolve(ctx context.Context, domain string) (*model.TenantDomain, error) {
	now := time.Now()
	res := s.db.WithContext(ctx).Model(&model.TenantDomain{}).
		Where("domain = ? AND status = ?", domain, model.DomainStatusActive).
		UpdateColumns(map[string]interface{}{
			"access_count":     gorm.Expr("access_count + ?", 1),
			"last_access_date": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrDomainNotFound
	}

	// The row can vanish between the increment and this fetch; that is still
	// a not-found to the caller.
	var rec model.TenantDomain
	if err := s.db.WithContext(ctx).Where("domain = ?", domain).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDomainNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindByTenant lists a tenant's domains, optionally filtered by type
func (s *Service) FindByTenant(ctx context.Context, tenantID string, domainType model.DomainType) ([]model.TenantDomain, error) {
	query := s.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if domainType != "" {
		query = query.Where("domain_type = ?", domainType)
	}

	var domains []model.TenantDomain
	if err := query.Find(&domains).Error; err != nil {
		return nil, err
	}
	return domains, nil
}

// FindOne fetches a single record by (tenantId, domain)
func (s *Service) FindOne(ctx context.Context, tenantID, domain string) (*model.TenantDomain, error) {
	var rec model.TenantDomain
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND domain = ?", tenantID, domain).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDomainNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindByDomain fetches a record by domain alone. The domain column is
// globally unique, so no tenant scope is needed.
func (s *Service) FindByDomain(ctx context.Context, domain string) (*model.TenantDomain, error) {
	var rec model.TenantDomain
	err := s.db.WithContext(ctx).Where("domain = ?", domain).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDomainNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindDefault returns the tenant's active default domain, or nil when the
// tenant holds none.
func (s *Service) FindDefault(ctx context.Context, tenantID string) (*model.TenantDomain, error) {
	return s.findFlagged(ctx, tenantID, "is_default")
}

// FindPrimary returns the tenant's active primary domain, or nil
func (s *Service) FindPrimary(ctx context.Context, tenantID string) (*model.TenantDomain, error) {
	return s.findFlagged(ctx, tenantID, "is_primary")
}

func (s *Service) findFlagged(ctx context.Context, tenantID, column string) (*model.TenantDomain, error) {
	var rec model.TenantDomain
	err := s.db.WithContext(ctx).
		Where("tenant_id = ? AND "+column+" = ? AND status = ?", tenantID, true, model.DomainStatusActive).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Update applies a partial patch. Setting isDefault or isPrimary to true
// sweeps the flag off the tenant's other domains first, inside the same
// transaction as the patch.
func (s *Service) Update(ctx context.Context, tenantID, domain string, patch UpdateParams) (*model.TenantDomain, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec model.TenantDomain
		if err := tx.Where("tenant_id = ? AND domain = ?", tenantID, domain).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDomainNotFound
			}
			return err
		}

		if patch.IsDefault != nil && *patch.IsDefault {
			if err := sweepFlag(tx, tenantID, "is_default", domain); err != nil {
				return err
			}
		}
		if patch.IsPrimary != nil && *patch.IsPrimary {
			if err := sweepFlag(tx, tenantID, "is_primary", domain); err != nil {
				return err
			}
		}

		updates := patchUpdates(patch)
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&model.TenantDomain{}).
			Where("tenant_id = ? AND domain = ?", tenantID, domain).
			Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return s.FindOne(ctx, tenantID, domain)
}

// Verify runs the requested ownership check and advances the verification
// state machine. The method and supplied DNS records are recorded whether or
// not the check passes; a failed check is a normal result, not an error.
func (s *Service) Verify(ctx context.Context, tenantID, domain string, method model.VerificationMethod, records model.DNSRecordList) (*model.TenantDomain, error) {
	rec, err := s.FindOne(ctx, tenantID, domain)
	if err != nil {
		return nil, err
	}

	// A blank token would make every challenge unpublishable; backfill before
	// any check runs.
	token := rec.VerificationToken
	if token == "" {
		if token, err = NewVerificationToken(); err != nil {
			return nil, err
		}
	}

	passed := false
	if rec.Verified {
		passed = true
	} else if checker, ok := s.checkers[method]; ok {
		var checkErr error
		passed, checkErr = checker.Check(ctx, rec.Domain, token)
		if checkErr != nil {
			s.logger.WithFields(logrus.Fields{
				"tenantId": tenantID,
				"domain":   domain,
				"method":   method,
			}).Warnf("verification check errored: %v", checkErr)
			passed = false
		}
	}

	updates := buildVerifyUpdates(rec, method, records, token, passed, time.Now())
	if err := s.db.WithContext(ctx).Model(&model.TenantDomain{}).
		Where("tenant_id = ? AND domain = ?", tenantID, domain).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	if passed && !rec.Verified {
		s.logger.WithFields(logrus.Fields{
			"tenantId": tenantID,
			"domain":   domain,
			"method":   method,
		}).Info("domain verified")
	}
	return s.FindOne(ctx, tenantID, domain)
}

// SetAsDefault makes the target the tenant's only default domain. The sweep
// and the set run in one transaction: if the target is missing, the whole
// operation rolls back and the previous default survives.
func (s *Service) SetAsDefault(ctx context.Context, tenantID, domain string) (*model.TenantDomain, error) {
	return s.setFlag(ctx, tenantID, domain, "is_default")
}

// SetAsPrimary makes the target the tenant's only primary domain
func (s *Service) SetAsPrimary(ctx context.Context, tenantID, domain string) (*model.TenantDomain, error) {
	return s.setFlag(ctx, tenantID, domain, "is_primary")
}

func (s *Service) setFlag(ctx context.Context, tenantID, domain, column string) (*model.TenantDomain, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := sweepFlag(tx, tenantID, column, ""); err != nil {
			return err
		}
		res := tx.Model(&model.TenantDomain{}).
			Where("tenant_id = ? AND domain = ?", tenantID, domain).
			Update(column, true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrDomainNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.FindOne(ctx, tenantID, domain)
}

// Remove deletes a domain mapping. Default and primary domains are protected:
// the caller must move the flag elsewhere first.
func (s *Service) Remove(ctx context.Context, tenantID, domain string) error {
	rec, err := s.FindOne(ctx, tenantID, domain)
	if err != nil {
		return err
	}
	if rec.IsPrimary || rec.IsDefault {
		return ErrDomainProtected
	}

	res := s.db.WithContext(ctx).
		Where("tenant_id = ? AND domain = ?", tenantID, domain).
		Delete(&model.TenantDomain{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDomainNotFound
	}

	s.logger.WithFields(logrus.Fields{
		"tenantId": tenantID,
		"domain":   domain,
	}).Info("domain removed")
	return nil
}

// StatsByTenant aggregates a tenant's domains
func (s *Service) StatsByTenant(ctx context.Context, tenantID string) (*Stats, error) {
	domains, err := s.FindByTenant(ctx, tenantID, "")
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(domains)
	return &stats, nil
}

// VerificationInstructions derives the challenge artifacts for a domain.
// Read-only: no state changes.
func (s *Service) VerificationInstructions(ctx context.Context, tenantID, domain string) (*Instructions, error) {
	rec, err := s.FindOne(ctx, tenantID, domain)
	if err != nil {
		return nil, err
	}
	return BuildInstructions(rec.Domain, rec.VerificationToken, rec.VerificationMethod), nil
}

// sweepFlag unsets a singleton flag on all of a tenant's domains, optionally
// excluding one domain.
func sweepFlag(tx *gorm.DB, tenantID, column, excludeDomain string) error {
	query := tx.Model(&model.TenantDomain{}).Where("tenant_id = ?", tenantID)
	if excludeDomain != "" {
		query = query.Where("domain <> ?", excludeDomain)
	}
	return query.Update(column, false).Error
}

func patchUpdates(patch UpdateParams) map[string]interface{} {
	updates := map[string]interface{}{}
	if patch.DomainType != nil {
		updates["domain_type"] = *patch.DomainType
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Protocol != nil {
		updates["protocol"] = *patch.Protocol
	}
	if patch.IsDefault != nil {
		updates["is_default"] = *patch.IsDefault
	}
	if patch.IsPrimary != nil {
		updates["is_primary"] = *patch.IsPrimary
	}
	if patch.RedirectTo != nil {
		updates["redirect_to"] = *patch.RedirectTo
	}
	if patch.SSLConfig != nil {
		updates["ssl_config"] = *patch.SSLConfig
	}
	if patch.CORSConfig != nil {
		updates["cors_config"] = *patch.CORSConfig
	}
	if patch.PerformanceConfig != nil {
		updates["performance_config"] = patch.PerformanceConfig
	}
	if patch.DNSProvider != nil {
		updates["dns_provider"] = patch.DNSProvider
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	return updates
}

func defaultProtocol(p model.DomainProtocol) model.DomainProtocol {
	if p == "" {
		return model.ProtocolHTTPS
	}
	return p
}

func defaultSSLConfig(p *model.SSLConfig) model.SSLConfig {
	if p != nil {
		return *p
	}
	return model.SSLConfig{Enabled: true, AutoRenew: true}
}

func defaultCORSConfig(p *model.CORSConfig) model.CORSConfig {
	if p != nil {
		return *p
	}
	return model.CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Tenant-ID"},
		Credentials:    true,
	}
}

func defaultPerformanceConfig() datatypes.JSON {
	return datatypes.JSON([]byte(`{"enabled":false,"cacheHeaders":[],"compressionEnabled":true,"minifyEnabled":true}`))
}
