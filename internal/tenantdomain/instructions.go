package tenantdomain

import (
	"fmt"

	"tenantcfg/internal/model"
)

// DNSInstruction describes the TXT record a tenant must publish
type DNSInstruction struct {
	RecordType string `json:"recordType"`
	Name       string `json:"name"`
	Value      string `json:"value"`
	TTL        int    `json:"ttl"`
}

// FileInstruction describes the well-known file a tenant must host
type FileInstruction struct {
	FileName string `json:"fileName"`
	Content  string `json:"content"`
	Path     string `json:"path"`
}

// EmailInstruction describes the email round-trip challenge
type EmailInstruction struct {
	Recipients       []string `json:"recipients"`
	Subject          string   `json:"subject"`
	ConfirmationPath string   `json:"confirmationPath"`
}

// Instructions carries the challenge artifacts for every method, derived
// from the stored verification token. Building them never mutates state.
type Instructions struct {
	Domain string                   `json:"domain"`
	Token  string                   `json:"verificationToken"`
	Method model.VerificationMethod `json:"verificationMethod"`
	DNS    DNSInstruction           `json:"dns"`
	File   FileInstruction          `json:"file"`
	Email  EmailInstruction         `json:"email"`
}

// WellKnownFileName is the file checked by the file verification method
const WellKnownFileName = "domain-verification.txt"

// BuildInstructions derives verification instructions for a domain
func BuildInstructions(domain, token string, method model.VerificationMethod) *Instructions {
	return &Instructions{
		Domain: domain,
		Token:  token,
		Method: method,
		DNS: DNSInstruction{
			RecordType: "TXT",
			Name:       fmt.Sprintf("_verification.%s", domain),
			Value:      token,
			TTL:        300,
		},
		File: FileInstruction{
			FileName: WellKnownFileName,
			Content:  token,
			Path:     fmt.Sprintf("https://%s/.well-known/%s", domain, WellKnownFileName),
		},
		Email: EmailInstruction{
			Recipients: []string{
				fmt.Sprintf("admin@%s", domain),
				fmt.Sprintf("webmaster@%s", domain),
				fmt.Sprintf("postmaster@%s", domain),
			},
			Subject:          "Domain Verification Required",
			ConfirmationPath: "/api/v1/tenant-domains/email-confirmation",
		},
	}
}
