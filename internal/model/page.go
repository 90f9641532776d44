package model

import "gorm.io/datatypes"

// PageType drives per-page rendering behavior
type PageType string

const (
	PageTypeList      PageType = "list"
	PageTypeForm      PageType = "form"
	PageTypeDashboard PageType = "dashboard"
	PageTypeCustom    PageType = "custom"
)

// Page represents a UI page configuration within an application
type Page struct {
	BaseModel
	TenantID      string         `gorm:"type:varchar(64);index;uniqueIndex:uk_page_tenant_page;not null" json:"tenantId"`
	ApplicationID string         `gorm:"type:varchar(64);index;not null" json:"applicationId"`
	PageID        string         `gorm:"type:varchar(64);uniqueIndex:uk_page_tenant_page;not null" json:"pageId"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Route         string         `gorm:"type:varchar(255);not null" json:"route"`
	PageType      PageType       `gorm:"type:enum('list','form','dashboard','custom');default:'custom'" json:"pageType"`
	Header        datatypes.JSON `gorm:"type:json" json:"header"` // title / breadcrumb / actions
	Layout        datatypes.JSON `gorm:"type:json" json:"layout"`
}

// TableName specifies the table name for Page model
func (Page) TableName() string {
	return "pages"
}
