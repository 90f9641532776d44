package tenants

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tenantcfg/internal/httpx"
	"tenantcfg/internal/model"
)

// CreateRequest represents create tenant request
type CreateRequest struct {
	TenantID     string                `json:"tenantId"`
	Name         string                `json:"name" binding:"required"`
	Subdomain    string                `json:"subdomain" binding:"required"`
	CustomDomain string                `json:"customDomain"`
	Plan         model.TenantPlan      `json:"plan" binding:"omitempty,oneof=basic premium enterprise"`
	Settings     *model.TenantSettings `json:"settings"`
}

// UpdateRequest represents update tenant request
type UpdateRequest struct {
	Name         *string               `json:"name"`
	Subdomain    *string               `json:"subdomain"`
	CustomDomain *string               `json:"customDomain"`
	Status       *model.TenantStatus   `json:"status" binding:"omitempty,oneof=active inactive suspended"`
	Plan         *model.TenantPlan     `json:"plan" binding:"omitempty,oneof=basic premium enterprise"`
	Settings     *model.TenantSettings `json:"settings"`
}

// Handler handles tenants API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new tenants handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/tenants
func (h *Handler) List(c *gin.Context) {
	query := h.db.Model(&model.Tenant{})
	if subdomain := c.Query("subdomain"); subdomain != "" {
		query = query.Where("subdomain = ?", subdomain)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tenants []model.Tenant
	if err := query.Find(&tenants).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to list tenants", err))
		return
	}
	httpx.OK(c, tenants)
}

// Create handles POST /api/v1/tenants
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	tenantID := req.TenantID
	if tenantID == "" {
		tenantID = uuid.NewString()
	}
	plan := req.Plan
	if plan == "" {
		plan = model.TenantPlanBasic
	}

	tenant := model.Tenant{
		TenantID:     tenantID,
		Name:         req.Name,
		Subdomain:    req.Subdomain,
		CustomDomain: req.CustomDomain,
		Status:       model.TenantStatusActive,
		Plan:         plan,
	}
	if req.Settings != nil {
		tenant.Settings = *req.Settings
	}

	if err := h.db.Create(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("tenant id or subdomain already taken"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create tenant", err))
		return
	}
	httpx.OK(c, tenant)
}

// Get handles GET /api/v1/tenants/:tenantId
func (h *Handler) Get(c *gin.Context) {
	tenant, ok := h.fetch(c)
	if !ok {
		return
	}
	httpx.OK(c, tenant)
}

// Update handles PATCH /api/v1/tenants/:tenantId
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	tenant, ok := h.fetch(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Subdomain != nil {
		updates["subdomain"] = *req.Subdomain
	}
	if req.CustomDomain != nil {
		updates["custom_domain"] = *req.CustomDomain
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Plan != nil {
		updates["plan"] = *req.Plan
	}
	if req.Settings != nil {
		updates["settings"] = *req.Settings
	}

	if len(updates) > 0 {
		if err := h.db.Model(tenant).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				httpx.FailErr(c, httpx.ErrAlreadyExists("subdomain already taken"))
				return
			}
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to update tenant", err))
			return
		}
	}
	httpx.OK(c, tenant)
}

// Delete handles DELETE /api/v1/tenants/:tenantId
func (h *Handler) Delete(c *gin.Context) {
	res := h.db.Where("tenant_id = ?", c.Param("tenantId")).Delete(&model.Tenant{})
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete tenant", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("tenant not found"))
		return
	}
	httpx.NoContent(c)
}

func (h *Handler) fetch(c *gin.Context) (*model.Tenant, bool) {
	var tenant model.Tenant
	err := h.db.Where("tenant_id = ?", c.Param("tenantId")).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("tenant not found"))
		} else {
			httpx.FailErr(c, httpx.ErrDatabaseError("database error", err))
		}
		return nil, false
	}
	return &tenant, true
}
