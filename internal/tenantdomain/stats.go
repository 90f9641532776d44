package tenantdomain

import (
	"time"

	"tenantcfg/internal/model"
)

// TypeCounts breaks domain counts down by domain type
type TypeCounts struct {
	Subdomain int `json:"subdomain"`
	Custom    int `json:"custom"`
	Both      int `json:"both"`
}

// Stats aggregates a tenant's domains
type Stats struct {
	Total       int        `json:"total"`
	Active      int        `json:"active"`
	Verified    int        `json:"verified"`
	ByType      TypeCounts `json:"byType"`
	TotalAccess int64      `json:"totalAccess"`
	LastAccess  *time.Time `json:"lastAccess"`
}

// ComputeStats aggregates domain records into per-tenant statistics
func ComputeStats(domains []model.TenantDomain) Stats {
	var stats Stats
	stats.Total = len(domains)

	for i := range domains {
		d := &domains[i]
		if d.Status == model.DomainStatusActive {
			stats.Active++
		}
		if d.Verified {
			stats.Verified++
		}
		switch d.DomainType {
		case model.DomainTypeSubdomain:
			stats.ByType.Subdomain++
		case model.DomainTypeCustom:
			stats.ByType.Custom++
		case model.DomainTypeBoth:
			stats.ByType.Both++
		}
		stats.TotalAccess += d.AccessCount
		if d.LastAccessDate != nil && (stats.LastAccess == nil || d.LastAccessDate.After(*stats.LastAccess)) {
			stats.LastAccess = d.LastAccessDate
		}
	}
	return stats
}
