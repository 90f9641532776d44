package model

import "gorm.io/datatypes"

// Theme represents a tenant-scoped styling theme
type Theme struct {
	BaseModel
	TenantID string         `gorm:"type:varchar(64);index;uniqueIndex:uk_theme_tenant_theme;not null" json:"tenantId"`
	ThemeID  string         `gorm:"type:varchar(64);uniqueIndex:uk_theme_tenant_theme;not null" json:"themeId"`
	Name     string         `gorm:"type:varchar(255);not null" json:"name"`
	IsActive bool           `gorm:"type:tinyint;default:0" json:"isActive"`
	Version  string         `gorm:"type:varchar(32);default:'1.0.0'" json:"version"`
	Styles   datatypes.JSON `gorm:"type:json" json:"styles"` // compiledCSS / scssSource / cssVariables
}

// TableName specifies the table name for Theme model
func (Theme) TableName() string {
	return "themes"
}
