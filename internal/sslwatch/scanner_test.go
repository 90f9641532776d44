package sslwatch

import (
	"testing"
	"time"
)

func TestRenewalDue(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		expiresAt    time.Time
		expiringDays int
		autoRenew    bool
		want         bool
	}{
		{"far from expiry", now.AddDate(0, 0, 90), 30, true, false},
		{"inside renewal window", now.AddDate(0, 0, 10), 30, true, true},
		{"window boundary", now.AddDate(0, 0, 30), 30, true, true},
		{"just outside window", now.AddDate(0, 0, 31), 30, true, false},
		{"inside window, no auto renew", now.AddDate(0, 0, 10), 30, false, false},
		{"already expired", now.AddDate(0, 0, -1), 30, true, true},
		{"expired without auto renew", now.AddDate(0, 0, -1), 30, false, true},
		{"expires this instant", now, 30, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renewalDue(tt.expiresAt, now, tt.expiringDays, tt.autoRenew)
			if got != tt.want {
				t.Errorf("renewalDue() = %v, want %v", got, tt.want)
			}
		})
	}
}
