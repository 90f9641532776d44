package controls

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tenantcfg/internal/httpx"
	"tenantcfg/internal/model"
)

// CreateRequest represents create control request
type CreateRequest struct {
	TenantID      string            `json:"tenantId" binding:"required"`
	ApplicationID string            `json:"applicationId" binding:"required"`
	ControlID     string            `json:"controlId" binding:"required"`
	Name          string            `json:"name" binding:"required"`
	Type          model.ControlType `json:"type" binding:"required,oneof=input select checkbox radio textarea datepicker button"`
	Props         datatypes.JSON    `json:"props"`
}

// UpdateRequest represents update control request
type UpdateRequest struct {
	Name  *string            `json:"name"`
	Type  *model.ControlType `json:"type" binding:"omitempty,oneof=input select checkbox radio textarea datepicker button"`
	Props datatypes.JSON     `json:"props"`
}

// Handler handles controls API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new controls handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/controls
func (h *Handler) List(c *gin.Context) {
	query := h.db.Model(&model.Control{})
	if tenantID := c.Query("tenantId"); tenantID != "" {
		query = query.Where("tenant_id = ?", tenantID)
	}
	if appID := c.Query("applicationId"); appID != "" {
		query = query.Where("application_id = ?", appID)
	}

	var controls []model.Control
	if err := query.Find(&controls).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to list controls", err))
		return
	}
	httpx.OK(c, controls)
}

// Create handles POST /api/v1/controls
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	props := req.Props
	if props == nil {
		props = datatypes.JSON([]byte(`{}`))
	}

	control := model.Control{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		ControlID:     req.ControlID,
		Name:          req.Name,
		Type:          req.Type,
		Props:         props,
	}

	if err := h.db.Create(&control).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("control already exists for tenant"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create control", err))
		return
	}
	httpx.OK(c, control)
}

// Get handles GET /api/v1/controls/:tenantId/:controlId
func (h *Handler) Get(c *gin.Context) {
	control, ok := h.fetch(c)
	if !ok {
		return
	}
	httpx.OK(c, control)
}

// Update handles PATCH /api/v1/controls/:tenantId/:controlId
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	control, ok := h.fetch(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Props != nil {
		updates["props"] = req.Props
	}

	if len(updates) > 0 {
		if err := h.db.Model(control).Updates(updates).Error; err != nil {
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to update control", err))
			return
		}
	}
	httpx.OK(c, control)
}

// Delete handles DELETE /api/v1/controls/:tenantId/:controlId
func (h *Handler) Delete(c *gin.Context) {
	res := h.db.
		Where("tenant_id = ? AND control_id = ?", c.Param("tenantId"), c.Param("controlId")).
		Delete(&model.Control{})
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete control", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("control not found"))
		return
	}
	httpx.NoContent(c)
}

func (h *Handler) fetch(c *gin.Context) (*model.Control, bool) {
	var control model.Control
	err := h.db.
		Where("tenant_id = ? AND control_id = ?", c.Param("tenantId"), c.Param("controlId")).
		First(&control).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("control not found"))
		} else {
			httpx.FailErr(c, httpx.ErrDatabaseError("database error", err))
		}
		return nil, false
	}
	return &control, true
}
