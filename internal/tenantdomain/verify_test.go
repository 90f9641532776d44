package tenantdomain

import (
	"testing"
	"time"

	"tenantcfg/internal/model"
)

func TestBuildVerifyUpdatesFailedCheck(t *testing.T) {
	rec := &model.TenantDomain{
		Domain:            "shop.example.com",
		VerificationToken: "tok",
	}
	now := time.Now()

	updates := buildVerifyUpdates(rec, model.VerifyMethodDNS, nil, "tok", false, now)

	if updates["verification_method"] != model.VerifyMethodDNS {
		t.Errorf("verification_method = %v, want dns", updates["verification_method"])
	}
	if _, ok := updates["verified"]; ok {
		t.Error("failed check must not set verified")
	}
	if _, ok := updates["status"]; ok {
		t.Error("failed check must not change status")
	}
	if _, ok := updates["verification_token"]; ok {
		t.Error("unchanged token must not be rewritten")
	}
	records, ok := updates["dns_records"].(model.DNSRecordList)
	if !ok || records == nil {
		t.Errorf("dns_records = %v, want empty list", updates["dns_records"])
	}
}

func TestBuildVerifyUpdatesPassedCheck(t *testing.T) {
	rec := &model.TenantDomain{
		Domain: "shop.example.com",
		Status: model.DomainStatusPending,
	}
	now := time.Now()
	records := model.DNSRecordList{{Type: "TXT", Name: "_verification.shop.example.com", Value: "tok", TTL: 300}}

	updates := buildVerifyUpdates(rec, model.VerifyMethodDNS, records, "tok", true, now)

	if updates["verified"] != true {
		t.Error("passed check must set verified")
	}
	if updates["verified_at"] != now {
		t.Errorf("verified_at = %v, want %v", updates["verified_at"], now)
	}
	if updates["status"] != model.DomainStatusActive {
		t.Errorf("status = %v, want active", updates["status"])
	}
	if updates["verification_token"] != "tok" {
		t.Error("backfilled token must be persisted")
	}
	got, _ := updates["dns_records"].(model.DNSRecordList)
	if len(got) != 1 || got[0].Name != "_verification.shop.example.com" {
		t.Errorf("dns_records = %v, want supplied records", got)
	}
}

func TestBuildVerifyUpdatesTerminal(t *testing.T) {
	verifiedAt := time.Now().Add(-time.Hour)
	rec := &model.TenantDomain{
		Domain:            "shop.example.com",
		Verified:          true,
		VerifiedAt:        &verifiedAt,
		VerificationToken: "tok",
		Status:            model.DomainStatusActive,
	}

	// Re-verify with a failing check: verified state never regresses.
	updates := buildVerifyUpdates(rec, model.VerifyMethodFile, nil, "tok", false, time.Now())

	if updates["verified"] != true {
		t.Error("verified domain regressed on failed re-check")
	}
	if updates["status"] != model.DomainStatusActive {
		t.Error("verified domain must stay active")
	}
	if updates["verification_method"] != model.VerifyMethodFile {
		t.Error("re-check must still record the requested method")
	}
}
