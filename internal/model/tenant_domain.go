package model

import (
	"time"

	"gorm.io/datatypes"
)

// DomainType represents how a domain is attached to a tenant
type DomainType string

const (
	DomainTypeSubdomain DomainType = "subdomain"
	DomainTypeCustom    DomainType = "custom"
	DomainTypeBoth      DomainType = "both"
)

// DomainStatus represents domain status
type DomainStatus string

const (
	DomainStatusActive    DomainStatus = "active"
	DomainStatusInactive  DomainStatus = "inactive"
	DomainStatusPending   DomainStatus = "pending"
	DomainStatusSuspended DomainStatus = "suspended"
)

// DomainProtocol represents the protocols served on a domain
type DomainProtocol string

const (
	ProtocolHTTP  DomainProtocol = "http"
	ProtocolHTTPS DomainProtocol = "https"
	ProtocolBoth  DomainProtocol = "both"
)

// VerificationMethod represents a domain ownership verification method
type VerificationMethod string

const (
	VerifyMethodDNS   VerificationMethod = "dns"
	VerifyMethodFile  VerificationMethod = "file"
	VerifyMethodEmail VerificationMethod = "email"
)

// DNSRecord is a single DNS record supplied for verification
type DNSRecord struct {
	Type  string `json:"type"` // A / CNAME / TXT / MX
	Name  string `json:"name"`
	Value string `json:"value"`
	TTL   int    `json:"ttl"`
}

// DNSRecordList is stored as a JSON column
type DNSRecordList []DNSRecord

// SSLConfig holds per-domain TLS settings
type SSLConfig struct {
	Enabled     bool       `json:"enabled"`
	Certificate string     `json:"certificate,omitempty"` // PEM bundle
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	AutoRenew   bool       `json:"autoRenew"`
}

// CORSConfig holds per-domain CORS settings
type CORSConfig struct {
	AllowedOrigins []string `json:"allowedOrigins"`
	AllowedMethods []string `json:"allowedMethods"`
	AllowedHeaders []string `json:"allowedHeaders"`
	Credentials    bool     `json:"credentials"`
}

// TenantDomain maps a hostname to its owning tenant.
// The domain column is globally unique: the database constraint is the
// authority, application-level pre-checks only improve error messages.
type TenantDomain struct {
	BaseModel
	TenantID   string       `gorm:"type:varchar(64);index;index:idx_td_tenant_type;index:idx_td_tenant_default;index:idx_td_tenant_primary;not null" json:"tenantId"`
	Domain     string       `gorm:"type:varchar(255);uniqueIndex;index:idx_td_search,class:FULLTEXT;not null" json:"domain"`
	DomainType DomainType   `gorm:"type:enum('subdomain','custom','both');index:idx_td_tenant_type;not null" json:"domainType"`
	Status     DomainStatus `gorm:"type:enum('active','inactive','pending','suspended');default:'active';index" json:"status"`

	// At most one default and one primary per tenant; every write that sets
	// one of these flags sweeps the tenant's other rows first.
	IsDefault bool `gorm:"type:tinyint;default:0;index:idx_td_tenant_default" json:"isDefault"`
	IsPrimary bool `gorm:"type:tinyint;default:0;index:idx_td_tenant_primary" json:"isPrimary"`

	Protocol   DomainProtocol `gorm:"type:enum('http','https','both');default:'https'" json:"protocol"`
	RedirectTo string         `gorm:"type:varchar(255)" json:"redirectTo,omitempty"`

	SSLConfig  SSLConfig  `gorm:"serializer:json" json:"sslConfig"`
	CORSConfig CORSConfig `gorm:"serializer:json" json:"corsConfig"`

	// Verification state. verified=true is terminal and implies status=active.
	Verified           bool               `gorm:"type:tinyint;default:0;index" json:"verified"`
	VerificationMethod VerificationMethod `gorm:"type:enum('dns','file','email');default:'dns'" json:"verificationMethod"`
	VerificationToken  string             `gorm:"type:varchar(128)" json:"verificationToken"`
	VerifiedAt         *time.Time         `json:"verifiedAt,omitempty"`
	DNSRecords         DNSRecordList      `gorm:"serializer:json" json:"dnsRecords"`

	// Opaque configuration blobs, never inspected by the registry
	PerformanceConfig datatypes.JSON `gorm:"type:json" json:"performanceConfig"`
	DNSProvider       datatypes.JSON `gorm:"type:json" json:"dnsProvider"`

	AccessCount    int64      `gorm:"default:0" json:"accessCount"`
	LastAccessDate *time.Time `json:"lastAccessDate,omitempty"`
	Notes          string     `gorm:"type:varchar(1024);index:idx_td_search,class:FULLTEXT" json:"notes,omitempty"`
}

// TableName specifies the table name for TenantDomain model
func (TenantDomain) TableName() string {
	return "tenant_domains"
}
