package tenantdomains

import (
	"gorm.io/datatypes"

	"tenantcfg/internal/model"
)

// RegisterRequest represents domain registration request
type RegisterRequest struct {
	TenantID   string               `json:"tenantId" binding:"required"`
	Domain     string               `json:"domain" binding:"required"`
	DomainType model.DomainType     `json:"domainType" binding:"required,oneof=subdomain custom both"`
	Protocol   model.DomainProtocol `json:"protocol" binding:"omitempty,oneof=http https both"`
	IsDefault  bool                 `json:"isDefault"`
	IsPrimary  bool                 `json:"isPrimary"`
	RedirectTo string               `json:"redirectTo"`
	SSLConfig  *model.SSLConfig     `json:"sslConfig"`
	CORSConfig *model.CORSConfig    `json:"corsConfig"`
	Notes      string               `json:"notes"`
}

// UpdateRequest represents a partial domain update; omitted fields are
// left untouched. Verification state cannot be patched here.
type UpdateRequest struct {
	DomainType        *model.DomainType     `json:"domainType" binding:"omitempty,oneof=subdomain custom both"`
	Status            *model.DomainStatus   `json:"status" binding:"omitempty,oneof=active inactive pending suspended"`
	Protocol          *model.DomainProtocol `json:"protocol" binding:"omitempty,oneof=http https both"`
	IsDefault         *bool                 `json:"isDefault"`
	IsPrimary         *bool                 `json:"isPrimary"`
	RedirectTo        *string               `json:"redirectTo"`
	SSLConfig         *model.SSLConfig      `json:"sslConfig"`
	CORSConfig        *model.CORSConfig     `json:"corsConfig"`
	PerformanceConfig datatypes.JSON        `json:"performanceConfig"`
	DNSProvider       datatypes.JSON        `json:"dnsProvider"`
	Notes             *string               `json:"notes"`
}

// VerifyRequest represents a verification attempt
type VerifyRequest struct {
	Method     model.VerificationMethod `json:"verificationMethod" binding:"required,oneof=dns file email"`
	DNSRecords model.DNSRecordList      `json:"dnsRecords"`
}

// EmailConfirmationRequest represents the email challenge callback
type EmailConfirmationRequest struct {
	Domain string `json:"domain" binding:"required"`
	Token  string `json:"token" binding:"required"`
}
