package applications

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tenantcfg/internal/httpx"
	"tenantcfg/internal/model"
)

// CreateRequest represents create application request
type CreateRequest struct {
	TenantID      string         `json:"tenantId" binding:"required"`
	ApplicationID string         `json:"applicationId" binding:"required"`
	Name          string         `json:"name" binding:"required"`
	Description   string         `json:"description"`
	Version       string         `json:"version"`
	Config        datatypes.JSON `json:"config"`
}

// UpdateRequest represents update application request
type UpdateRequest struct {
	Name        *string                  `json:"name"`
	Description *string                  `json:"description"`
	Version     *string                  `json:"version"`
	Status      *model.ApplicationStatus `json:"status" binding:"omitempty,oneof=active inactive maintenance"`
	Config      datatypes.JSON           `json:"config"`
}

// Handler handles applications API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new applications handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/applications
func (h *Handler) List(c *gin.Context) {
	query := h.db.Model(&model.Application{})
	if tenantID := c.Query("tenantId"); tenantID != "" {
		query = query.Where("tenant_id = ?", tenantID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var apps []model.Application
	if err := query.Find(&apps).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to list applications", err))
		return
	}
	httpx.OK(c, apps)
}

// Create handles POST /api/v1/applications
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	version := req.Version
	if version == "" {
		version = "1.0.0"
	}
	config := req.Config
	if config == nil {
		config = datatypes.JSON([]byte(`{}`))
	}

	app := model.Application{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		Name:          req.Name,
		Description:   req.Description,
		Version:       version,
		Status:        model.ApplicationStatusActive,
		Config:        config,
	}

	if err := h.db.Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("application already exists for tenant"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create application", err))
		return
	}
	httpx.OK(c, app)
}

// Get handles GET /api/v1/applications/:tenantId/:applicationId
func (h *Handler) Get(c *gin.Context) {
	app, ok := h.fetch(c)
	if !ok {
		return
	}
	httpx.OK(c, app)
}

// Update handles PATCH /api/v1/applications/:tenantId/:applicationId
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	app, ok := h.fetch(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Version != nil {
		updates["version"] = *req.Version
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Config != nil {
		updates["config"] = req.Config
	}

	if len(updates) > 0 {
		if err := h.db.Model(app).Updates(updates).Error; err != nil {
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to update application", err))
			return
		}
	}
	httpx.OK(c, app)
}

// Delete handles DELETE /api/v1/applications/:tenantId/:applicationId
func (h *Handler) Delete(c *gin.Context) {
	res := h.db.
		Where("tenant_id = ? AND application_id = ?", c.Param("tenantId"), c.Param("applicationId")).
		Delete(&model.Application{})
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete application", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("application not found"))
		return
	}
	httpx.NoContent(c)
}

func (h *Handler) fetch(c *gin.Context) (*model.Application, bool) {
	var app model.Application
	err := h.db.
		Where("tenant_id = ? AND application_id = ?", c.Param("tenantId"), c.Param("applicationId")).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("application not found"))
		} else {
			httpx.FailErr(c, httpx.ErrDatabaseError("database error", err))
		}
		return nil, false
	}
	return &app, true
}
