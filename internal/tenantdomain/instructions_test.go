package tenantdomain

import (
	"testing"

	"tenantcfg/internal/model"
)

func TestBuildInstructions(t *testing.T) {
	ins := BuildInstructions("shop.example.com", "abc123", model.VerifyMethodFile)

	if ins.Domain != "shop.example.com" || ins.Token != "abc123" {
		t.Fatalf("unexpected identity fields: %+v", ins)
	}
	if ins.Method != model.VerifyMethodFile {
		t.Errorf("Method = %v, want file", ins.Method)
	}

	if ins.DNS.RecordType != "TXT" {
		t.Errorf("DNS.RecordType = %q, want TXT", ins.DNS.RecordType)
	}
	if ins.DNS.Name != "_verification.shop.example.com" {
		t.Errorf("DNS.Name = %q", ins.DNS.Name)
	}
	if ins.DNS.Value != "abc123" || ins.DNS.TTL != 300 {
		t.Errorf("DNS record = %+v", ins.DNS)
	}

	if ins.File.Path != "https://shop.example.com/.well-known/domain-verification.txt" {
		t.Errorf("File.Path = %q", ins.File.Path)
	}
	if ins.File.Content != "abc123" {
		t.Errorf("File.Content = %q", ins.File.Content)
	}

	want := []string{"admin@shop.example.com", "webmaster@shop.example.com", "postmaster@shop.example.com"}
	if len(ins.Email.Recipients) != len(want) {
		t.Fatalf("Email.Recipients = %v", ins.Email.Recipients)
	}
	for i, r := range want {
		if ins.Email.Recipients[i] != r {
			t.Errorf("Recipients[%d] = %q, want %q", i, ins.Email.Recipients[i], r)
		}
	}
	if ins.Email.ConfirmationPath != "/api/v1/tenant-domains/email-confirmation" {
		t.Errorf("ConfirmationPath = %q", ins.Email.ConfirmationPath)
	}
}
