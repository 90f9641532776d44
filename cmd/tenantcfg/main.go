package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	v1 "tenantcfg/api/v1"
	"tenantcfg/internal/auth"
	"tenantcfg/internal/cache"
	"tenantcfg/internal/config"
	"tenantcfg/internal/db"
	"tenantcfg/internal/events"
	"tenantcfg/internal/model"
	"tenantcfg/internal/sslwatch"
	"tenantcfg/internal/tenantdomain"
	"tenantcfg/internal/verification"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("✓ Configuration loaded")

	auth.InitJWT(cfg.JWT.Secret, cfg.JWT.Issuer)

	baseLogger := logrus.New()
	baseLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger := logrus.NewEntry(baseLogger)

	// 2. Initialize MySQL
	if err := db.InitMySQL(cfg.MySQL.DSN); err != nil {
		log.Fatalf("Failed to initialize MySQL: %v", err)
	}
	defer db.Close()

	if cfg.Migrate {
		if err := db.Migrate(db.GetDB()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("✓ Migrations applied")
	}

	// 3. Initialize Redis
	if err := cache.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer cache.Close()

	// 4. Wire domain services
	confirms := verification.NewConfirmStore(cache.Client,
		time.Duration(cfg.Verification.EmailConfirmTTLSec)*time.Second)

	checkers := tenantdomain.Checkers{
		model.VerifyMethodDNS:   verification.NewDNSChecker(time.Duration(cfg.Verification.DNSTimeoutSec) * time.Second),
		model.VerifyMethodFile:  verification.NewFileChecker(time.Duration(cfg.Verification.HTTPTimeoutSec) * time.Second),
		model.VerifyMethodEmail: verification.NewEmailChecker(confirms),
	}

	registry := tenantdomain.NewService(db.GetDB(), checkers, logger)

	publisher := events.NewPublisher(&events.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		Logger:  logger,
	})
	defer publisher.Close()

	// 5. Start the certificate expiry scanner
	if cfg.SSLWatch.Enabled {
		watcher := sslwatch.NewWorker(&sslwatch.Config{
			DB:           db.GetDB(),
			Logger:       logger,
			IntervalSec:  cfg.SSLWatch.IntervalSec,
			ExpiringDays: cfg.SSLWatch.ExpiringDays,
		})
		watcher.Start()
		defer watcher.Stop()
	}

	// 6. Initialize Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	v1.SetupRouter(r, &v1.Deps{
		DB:       db.GetDB(),
		Config:   cfg,
		Registry: registry,
		Confirms: confirms,
		Events:   publisher,
	})

	log.Printf("✓ Server starting on %s", cfg.HTTPAddr)

	go func() {
		if err := r.Run(cfg.HTTPAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")
}
