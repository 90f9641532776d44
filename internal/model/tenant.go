package model

// TenantStatus represents tenant status
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusInactive  TenantStatus = "inactive"
	TenantStatusSuspended TenantStatus = "suspended"
)

// TenantPlan represents the subscription plan of a tenant
type TenantPlan string

const (
	TenantPlanBasic      TenantPlan = "basic"
	TenantPlanPremium    TenantPlan = "premium"
	TenantPlanEnterprise TenantPlan = "enterprise"
)

// TenantSettings holds per-tenant locale defaults
type TenantSettings struct {
	Timezone   string `json:"timezone"`
	DateFormat string `json:"dateFormat"`
	Currency   string `json:"currency"`
	Language   string `json:"language"`
}

// Tenant represents an isolated customer account
type Tenant struct {
	BaseModel
	TenantID     string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"tenantId"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Subdomain    string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"subdomain"`
	CustomDomain string         `gorm:"type:varchar(255)" json:"customDomain,omitempty"`
	Status       TenantStatus   `gorm:"type:enum('active','inactive','suspended');default:'active'" json:"status"`
	Plan         TenantPlan     `gorm:"type:enum('basic','premium','enterprise');default:'basic'" json:"plan"`
	Settings     TenantSettings `gorm:"serializer:json" json:"settings"`
}

// TableName specifies the table name for Tenant model
func (Tenant) TableName() string {
	return "tenants"
}
