package tenantdomains

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tenantcfg/internal/events"
	"tenantcfg/internal/httpx"
	"tenantcfg/internal/model"
	"tenantcfg/internal/tenantdomain"
	"tenantcfg/internal/verification"
)

// Handler handles tenant domain API
type Handler struct {
	svc      *tenantdomain.Service
	confirms *verification.ConfirmStore
	events   *events.Publisher
}

// NewHandler creates a new tenant domains handler
func NewHandler(svc *tenantdomain.Service, confirms *verification.ConfirmStore, publisher *events.Publisher) *Handler {
	return &Handler{
		svc:      svc,
		confirms: confirms,
		events:   publisher,
	}
}

// Register handles POST /api/v1/tenant-domains
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	rec, err := h.svc.Register(c.Request.Context(), tenantdomain.RegisterParams{
		TenantID:   req.TenantID,
		Domain:     req.Domain,
		DomainType: req.DomainType,
		Protocol:   req.Protocol,
		IsDefault:  req.IsDefault,
		IsPrimary:  req.IsPrimary,
		RedirectTo: req.RedirectTo,
		SSLConfig:  req.SSLConfig,
		CORSConfig: req.CORSConfig,
		Notes:      req.Notes,
	})
	if err != nil {
		h.failDomainErr(c, err)
		return
	}

	h.events.Publish(events.DomainRegistered, rec.TenantID, rec.Domain)
	httpx.OK(c, rec)
}

// ListByTenant handles GET /api/v1/tenant-domains/tenant/:tenantId
func (h *Handler) ListByTenant(c *gin.Context) {
	tenantID := c.Param("tenantId")
	domainType := model.DomainType(c.Query("type"))

	domains, err := h.svc.FindByTenant(c.Request.Context(), tenantID, domainType)
	if err != nil {
		h.failDomainErr(c, err)
		return
	}
	httpx.OK(c, domains)
}

// GetDefault handles GET /api/v1/tenant-domains/tenant/:tenantId/default
func (h *Handler) GetDefault(c *gin.Context) {
	rec, err := h.svc.FindDefault(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		h.failDomainErr(c, err)
		return
	}
	httpx.OK(c, rec)
}

// GetPrimary handles GET /api/v1/tenant-domains/tenant/:tenantId/primary
func (h *Handler) GetPrimary(c *gin.Context) {
	rec, err := h.svc.FindPrimary(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		h.failDomainErr(c, err)
		return
	}
	httpx.OK(c, rec)
}

// Stats handles GET /api/v1/tenant-domains/tenant/:tenantId/stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.StatsByTenant(c.Request.Context(), c.Param("tenantId"))
	if err != nil {
		h.failDomainErr(c, err)
		return
	}
	httpx.OK(c, stats)
}

// Resolve handles GET /api/v1/tenant-domains/domain/:domain
//
// Public: the edge calls this on every incoming host to map it to a tenant.
// Each hit bumps the domain's access counter.
func (h *Handler) Resolve(c *gin.Context) {
	rec, err := h.svc.Resolve(c.Request.Context(), c.Param("domain"))
	if err != nil {
		h.failDomainErr(c, err)
		return
	}
	httpx.OK(c, rec)
}

// Get handles GET /api/v1/tenant-domains/tenant/:tenantId/domain/:domain
func (h *Handler) Get(c *gin.Context) {
	rec, err := h.svc.FindOne(c.Request.Context(), c.Param("tenantId"), c.Param("domain"))
	if err != nil {
		h.failDomainErr(c, err)
		return
	}
	httpx.OK(c, rec)
}

// Update handles PATCH /api/v1/tenant-domains/tenant/:tenantId/domain/:domain
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), c.Param("tenantId"), c.Param("domain"), tenantdomain.UpdateParams{
		DomainType:        req.DomainType,
		Status:            req.Status,
		Protocol:          req.Protocol,
		IsDefault:         req.IsDefault,
		IsPrimary:         req.IsPrimary,
		RedirectTo:        req.RedirectTo,
		SSLConfig:         req.SSLConfig,
		CORSConfig:        req.CORSConfig,
		PerformanceConfig: req.PerformanceConfig,
		DNSProvider:       req.DNSProvider,
		Notes:             req.Notes,
	})
	if err != nil {
		h.failDomainErr(c, err)
		return
	}

	if req.IsDefault != nil && *req.IsDefault {
		h.events.Publish(events.DomainDefaultChanged, rec.TenantID, rec.Domain)
	}
	if req.IsPrimary != nil && *req.IsPrimary {
		h.events.Publish(events.DomainPrimaryChanged, rec.TenantID, rec.Domain)
	}
	httpx.OK(c, rec)
}

// Remove handles DELETE /api/v1/tenant-domains/tenant/:tenantId/domain/:domain
func (h *Handler) Remove(c *gin.Context) {
	tenantID := c.Param("tenantId")
	domain := c.Param("domain")

	if err := h.svc.Remove(c.Request.Context(), tenantID, domain); err != nil {
		h.failDomainErr(c, err)
		return
	}

	h.events.Publish(events.DomainRemoved, tenantID, domain)
	httpx.NoContent(c)
}

// Verify handles PATCH /api/v1/tenant-domains/tenant/:tenantId/domain/:domain/verify
func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	tenantID := c.Param("tenantId")
	domain := c.Param("domain")

	prior, err := h.svc.FindOne(c.Request.Context(), tenantID, domain)
	if err != nil {
		h.failDomainErr(c, err)
		return
	}

	rec, err := h.svc.Verify(c.Request.Context(), tenantID, domain, req.Method, req.DNSRecords)
	if err != nil {
		h.failDomainErr(c, err)
		return
	}

	if rec.Verified && !prior.Verified {
		h.events.Publish(events.DomainVerified, rec.TenantID, rec.Domain)
	}
	httpx.OK(c, rec)
}

// Instructions handles GET /api/v1/tenant-domains/tenant/:tenantId/domain/:domain/verification
func (h *Handler) Instructions(c *gin.Context) {
	ins, err := h.svc.VerificationInstructions(c.Request.Context(), c.Param("tenantId"), c.Param("domain"))
	if err != nil {
		h.failDomainErr(c, err)
		return
	}
	httpx.OK(c, ins)
}

// SetDefault handles PATCH /api/v1/tenant-domains/tenant/:tenantId/domain/:domain/set-default
func (h *Handler) SetDefault(c *gin.Context) {
	rec, err := h.svc.SetAsDefault(c.Request.Context(), c.Param("tenantId"), c.Param("domain"))
	if err != nil {
		h.failDomainErr(c, err)
		return
	}

	h.events.Publish(events.DomainDefaultChanged, rec.TenantID, rec.Domain)
	httpx.OK(c, rec)
}

// SetPrimary handles PATCH /api/v1/tenant-domains/tenant/:tenantId/domain/:domain/set-primary
func (h *Handler) SetPrimary(c *gin.Context) {
	rec, err := h.svc.SetAsPrimary(c.Request.Context(), c.Param("tenantId"), c.Param("domain"))
	if err != nil {
		h.failDomainErr(c, err)
		return
	}

	h.events.Publish(events.DomainPrimaryChanged, rec.TenantID, rec.Domain)
	httpx.OK(c, rec)
}

// EmailConfirmation handles POST /api/v1/tenant-domains/email-confirmation
//
// Public: the tenant reaches this from the link in the challenge email. The
// token in the link must match the domain's stored verification token; the
// confirmation is then held in Redis until the next verify call consumes it.
func (h *Handler) EmailConfirmation(c *gin.Context) {
	var req EmailConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	rec, err := h.svc.FindByDomain(c.Request.Context(), req.Domain)
	if err != nil {
		h.failDomainErr(c, err)
		return
	}
	if rec.VerificationToken != req.Token {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid verification token"))
		return
	}

	if err := h.confirms.Record(c.Request.Context(), req.Domain, req.Token); err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("failed to record confirmation", err))
		return
	}
	httpx.OKMsg(c, "confirmation recorded", gin.H{"domain": req.Domain})
}

// failDomainErr maps registry errors to API errors
func (h *Handler) failDomainErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tenantdomain.ErrInvalidDomainFormat):
		httpx.FailErr(c, httpx.ErrDomainInvalid(err.Error()))
	case errors.Is(err, tenantdomain.ErrDomainAlreadyExists):
		httpx.FailErr(c, httpx.ErrAlreadyExists("domain already registered"))
	case errors.Is(err, tenantdomain.ErrDomainNotFound):
		httpx.FailErr(c, httpx.ErrNotFound("domain not found"))
	case errors.Is(err, tenantdomain.ErrDomainProtected):
		httpx.FailErr(c, httpx.ErrDomainProtected(""))
	default:
		httpx.FailErr(c, httpx.ErrDatabaseError("database error", err))
	}
}
