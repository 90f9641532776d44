package pages

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tenantcfg/internal/httpx"
	"tenantcfg/internal/model"
)

// CreateRequest represents create page request
type CreateRequest struct {
	TenantID      string         `json:"tenantId" binding:"required"`
	ApplicationID string         `json:"applicationId" binding:"required"`
	PageID        string         `json:"pageId" binding:"required"`
	Name          string         `json:"name" binding:"required"`
	Route         string         `json:"route" binding:"required"`
	PageType      model.PageType `json:"pageType" binding:"omitempty,oneof=list form dashboard custom"`
	Header        datatypes.JSON `json:"header"`
	Layout        datatypes.JSON `json:"layout"`
}

// UpdateRequest represents update page request
type UpdateRequest struct {
	Name     *string         `json:"name"`
	Route    *string         `json:"route"`
	PageType *model.PageType `json:"pageType" binding:"omitempty,oneof=list form dashboard custom"`
	Header   datatypes.JSON  `json:"header"`
	Layout   datatypes.JSON  `json:"layout"`
}

// Handler handles pages API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new pages handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/pages
func (h *Handler) List(c *gin.Context) {
	query := h.db.Model(&model.Page{})
	if tenantID := c.Query("tenantId"); tenantID != "" {
		query = query.Where("tenant_id = ?", tenantID)
	}
	if appID := c.Query("applicationId"); appID != "" {
		query = query.Where("application_id = ?", appID)
	}

	var pages []model.Page
	if err := query.Find(&pages).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to list pages", err))
		return
	}
	httpx.OK(c, pages)
}

// Create handles POST /api/v1/pages
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	pageType := req.PageType
	if pageType == "" {
		pageType = model.PageTypeCustom
	}

	page := model.Page{
		TenantID:      req.TenantID,
		ApplicationID: req.ApplicationID,
		PageID:        req.PageID,
		Name:          req.Name,
		Route:         req.Route,
		PageType:      pageType,
		Header:        emptyJSONIfNil(req.Header),
		Layout:        emptyJSONIfNil(req.Layout),
	}

	if err := h.db.Create(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("page already exists for tenant"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create page", err))
		return
	}
	httpx.OK(c, page)
}

// Get handles GET /api/v1/pages/:tenantId/:pageId
func (h *Handler) Get(c *gin.Context) {
	page, ok := h.fetch(c)
	if !ok {
		return
	}
	httpx.OK(c, page)
}

// Update handles PATCH /api/v1/pages/:tenantId/:pageId
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	page, ok := h.fetch(c)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Route != nil {
		updates["route"] = *req.Route
	}
	if req.PageType != nil {
		updates["page_type"] = *req.PageType
	}
	if req.Header != nil {
		updates["header"] = req.Header
	}
	if req.Layout != nil {
		updates["layout"] = req.Layout
	}

	if len(updates) > 0 {
		if err := h.db.Model(page).Updates(updates).Error; err != nil {
			httpx.FailErr(c, httpx.ErrDatabaseError("failed to update page", err))
			return
		}
	}
	httpx.OK(c, page)
}

// Delete handles DELETE /api/v1/pages/:tenantId/:pageId
func (h *Handler) Delete(c *gin.Context) {
	res := h.db.
		Where("tenant_id = ? AND page_id = ?", c.Param("tenantId"), c.Param("pageId")).
		Delete(&model.Page{})
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete page", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("page not found"))
		return
	}
	httpx.NoContent(c)
}

func (h *Handler) fetch(c *gin.Context) (*model.Page, bool) {
	var page model.Page
	err := h.db.
		Where("tenant_id = ? AND page_id = ?", c.Param("tenantId"), c.Param("pageId")).
		First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("page not found"))
		} else {
			httpx.FailErr(c, httpx.ErrDatabaseError("database error", err))
		}
		return nil, false
	}
	return &page, true
}

func emptyJSONIfNil(j datatypes.JSON) datatypes.JSON {
	if j == nil {
		return datatypes.JSON([]byte(`{}`))
	}
	return j
}
