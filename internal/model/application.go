package model

import "gorm.io/datatypes"

// ApplicationStatus represents application status
type ApplicationStatus string

const (
	ApplicationStatusActive      ApplicationStatus = "active"
	ApplicationStatusInactive    ApplicationStatus = "inactive"
	ApplicationStatusMaintenance ApplicationStatus = "maintenance"
)

// Application represents a tenant-scoped UI application
type Application struct {
	BaseModel
	TenantID      string            `gorm:"type:varchar(64);index;uniqueIndex:uk_app_tenant_app;not null" json:"tenantId"`
	ApplicationID string            `gorm:"type:varchar(64);uniqueIndex:uk_app_tenant_app;not null" json:"applicationId"`
	Name          string            `gorm:"type:varchar(255);not null" json:"name"`
	Description   string            `gorm:"type:varchar(1024)" json:"description,omitempty"`
	Version       string            `gorm:"type:varchar(32);default:'1.0.0'" json:"version"`
	Status        ApplicationStatus `gorm:"type:enum('active','inactive','maintenance');default:'active'" json:"status"`
	Config        datatypes.JSON    `gorm:"type:json" json:"config"` // permissions / features / integrations
}

// TableName specifies the table name for Application model
func (Application) TableName() string {
	return "applications"
}
