package sslwatch

import (
	"context"
	"time"

	"github.com/go-acme/lego/v4/certcrypto"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tenantcfg/internal/model"
)

// Worker periodically scans SSL-enabled domains, keeps the stored expiry in
// sync with the certificate actually on record, and flags certificates that
// are due for renewal.
type Worker struct {
	ctx          context.Context
	cancel       context.CancelFunc
	db           *gorm.DB
	logger       *logrus.Entry
	interval     time.Duration
	expiringDays int
}

// Config holds the configuration for the SSL watch worker
type Config struct {
	DB           *gorm.DB
	Logger       *logrus.Entry
	IntervalSec  int
	ExpiringDays int
}

// NewWorker creates a new SSL watch worker
func NewWorker(cfg *Config) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		ctx:          ctx,
		cancel:       cancel,
		db:           cfg.DB,
		logger:       cfg.Logger.WithField("component", "ssl-watch-worker"),
		interval:     time.Duration(cfg.IntervalSec) * time.Second,
		expiringDays: cfg.ExpiringDays,
	}
}

// Start begins the periodic scans
func (w *Worker) Start() {
	w.logger.Info("Starting SSL watch worker...")
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.scan()
			case <-w.ctx.Done():
				w.logger.Info("Stopping SSL watch worker...")
				return
			}
		}
	}()
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	w.cancel()
}

func (w *Worker) scan() {
	var domains []model.TenantDomain
	err := w.db.WithContext(w.ctx).
		Where("status = ?", model.DomainStatusActive).
		Find(&domains).Error
	if err != nil {
		w.logger.Errorf("Failed to fetch domains for SSL scan: %v", err)
		return
	}

	now := time.Now()
	for i := range domains {
		w.scanDomain(&domains[i], now)
	}
}

func (w *Worker) scanDomain(d *model.TenantDomain, now time.Time) {
	if !d.SSLConfig.Enabled || d.SSLConfig.Certificate == "" {
		return
	}

	expiresAt, err := certExpiry([]byte(d.SSLConfig.Certificate))
	if err != nil {
		w.logger.WithField("domain", d.Domain).Warnf("Failed to parse certificate: %v", err)
		return
	}

	// Keep the stored expiry honest; the certificate is the authority.
	if d.SSLConfig.ExpiresAt == nil || !d.SSLConfig.ExpiresAt.Equal(expiresAt) {
		ssl := d.SSLConfig
		ssl.ExpiresAt = &expiresAt
		err := w.db.WithContext(w.ctx).Model(&model.TenantDomain{}).
			Where("id = ?", d.ID).
			Update("ssl_config", ssl).Error
		if err != nil {
			w.logger.WithField("domain", d.Domain).Errorf("Failed to update certificate expiry: %v", err)
			return
		}
	}

	if renewalDue(expiresAt, now, w.expiringDays, d.SSLConfig.AutoRenew) {
		w.logger.WithFields(logrus.Fields{
			"domain":    d.Domain,
			"expiresAt": expiresAt.Format(time.RFC3339),
		}).Warn("Certificate is due for renewal")
	}
}

// certExpiry extracts the leaf certificate's NotAfter from a PEM bundle
func certExpiry(bundle []byte) (time.Time, error) {
	certs, err := certcrypto.ParsePEMBundle(bundle)
	if err != nil {
		return time.Time{}, err
	}
	return certs[0].NotAfter, nil
}

// renewalDue reports whether a certificate expiring at expiresAt should be
// renewed now. Expired certificates are always due regardless of autoRenew,
// so the operator still gets the warning.
func renewalDue(expiresAt, now time.Time, expiringDays int, autoRenew bool) bool {
	if !now.Before(expiresAt) {
		return true
	}
	if !autoRenew {
		return false
	}
	threshold := expiresAt.AddDate(0, 0, -expiringDays)
	return !now.Before(threshold)
}
