package tenantdomain

import (
	"testing"
	"time"

	"tenantcfg/internal/model"
)

func TestComputeStats(t *testing.T) {
	older := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	domains := []model.TenantDomain{
		{
			Domain:         "a.example.com",
			Status:         model.DomainStatusActive,
			DomainType:     model.DomainTypeSubdomain,
			Verified:       true,
			AccessCount:    10,
			LastAccessDate: &older,
		},
		{
			Domain:         "b.example.com",
			Status:         model.DomainStatusActive,
			DomainType:     model.DomainTypeCustom,
			AccessCount:    5,
			LastAccessDate: &newer,
		},
		{
			Domain:     "c.example.com",
			Status:     model.DomainStatusPending,
			DomainType: model.DomainTypeCustom,
		},
	}

	stats := ComputeStats(domains)

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.Active != 2 {
		t.Errorf("Active = %d, want 2", stats.Active)
	}
	if stats.Verified != 1 {
		t.Errorf("Verified = %d, want 1", stats.Verified)
	}
	if stats.ByType.Subdomain != 1 || stats.ByType.Custom != 2 || stats.ByType.Both != 0 {
		t.Errorf("ByType = %+v, want {1 2 0}", stats.ByType)
	}
	if stats.TotalAccess != 15 {
		t.Errorf("TotalAccess = %d, want 15", stats.TotalAccess)
	}
	if stats.LastAccess == nil || !stats.LastAccess.Equal(newer) {
		t.Errorf("LastAccess = %v, want %v", stats.LastAccess, newer)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.Total != 0 || stats.TotalAccess != 0 {
		t.Errorf("stats = %+v, want zero value", stats)
	}
	if stats.LastAccess != nil {
		t.Errorf("LastAccess = %v, want nil", stats.LastAccess)
	}
}
