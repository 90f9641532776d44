package themes

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tenantcfg/internal/httpx"
	"tenantcfg/internal/model"
)

// CreateRequest represents create theme request
type CreateRequest struct {
	TenantID string         `json:"tenantId" binding:"required"`
	ThemeID  string         `json:"themeId" binding:"required"`
	Name     string         `json:"name" binding:"required"`
	IsActive bool           `json:"isActive"`
	Version  string         `json:"version"`
	Styles   datatypes.JSON `json:"styles"`
}

// UpdateRequest represents update theme request
type UpdateRequest struct {
	Name     *string        `json:"name"`
	IsActive *bool          `json:"isActive"`
	Version  *string        `json:"version"`
	Styles   datatypes.JSON `json:"styles"`
}

// Handler handles themes API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new themes handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/themes
func (h *Handler) List(c *gin.Context) {
	query := h.db.Model(&model.Theme{})
	if tenantID := c.Query("tenantId"); tenantID != "" {
		query = query.Where("tenant_id = ?", tenantID)
	}

	var themes []model.Theme
	if err := query.Find(&themes).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to list themes", err))
		return
	}
	httpx.OK(c, themes)
}

// Create handles POST /api/v1/themes
//
// A tenant has at most one active theme; creating an active theme
// deactivates the others in the same transaction.
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
	styles := req.Styles
	if styles == nil {
		styles = datatypes.JSON([]byte(`{}`))
	}

	theme := model.Theme{
		TenantID: req.TenantID,
		ThemeID:  req.ThemeID,
		Name:     req.Name,
		IsActive: req.IsActive,
		Version:  version,
		Styles:   styles,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if req.IsActive {
			if err := deactivateOthers(tx, req.TenantID, ""); err != nil {
				return err
			}
		}
		return tx.Create(&theme).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("theme already exists for tenant"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create theme", err))
		return
	}
	httpx.OK(c, theme)
}

// Get handles GET /api/v1/themes/:tenantId/:themeId
func (h *Handler) Get(c *gin.Context) {
	theme, ok := h.fetch(c)
	if !ok {
		return
	}
	httpx.OK(c, theme)
}

// Update handles PATCH /api/v1/themes/:tenantId/:themeId
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	theme, ok := h.fetch(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Version != nil {
		updates["version"] = *req.Version
	}
	if req.Styles != nil {
		updates["styles"] = req.Styles
	}
	if len(updates) == 0 {
		httpx.OK(c, theme)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if req.IsActive != nil && *req.IsActive {
			if err := deactivateOthers(tx, theme.TenantID, theme.ThemeID); err != nil {
				return err
			}
		}
		return tx.Model(theme).Updates(updates).Error
	})
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update theme", err))
		return
	}
	httpx.OK(c, theme)
}

// Delete handles DELETE /api/v1/themes/:tenantId/:themeId
func (h *Handler) Delete(c *gin.Context) {
	res := h.db.
		Where("tenant_id = ? AND theme_id = ?", c.Param("tenantId"), c.Param("themeId")).
		Delete(&model.Theme{})
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete theme", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("theme not found"))
		return
	}
	httpx.NoContent(c)
}

func (h *Handler) fetch(c *gin.Context) (*model.Theme, bool) {
	var theme model.Theme
	err := h.db.
		Where("tenant_id = ? AND theme_id = ?", c.Param("tenantId"), c.Param("themeId")).
		First(&theme).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("theme not found"))
		} else {
			httpx.FailErr(c, httpx.ErrDatabaseError("database error", err))
		}
		return nil, false
	}
	return &theme, true
}

func deactivateOthers(tx *gorm.DB, tenantID, excludeThemeID string) error {
	query := tx.Model(&model.Theme{}).Where("tenant_id = ?", tenantID)
	if excludeThemeID != "" {
		query = query.Where("theme_id <> ?", excludeThemeID)
	}
	return query.Update("is_active", false).Error
}
