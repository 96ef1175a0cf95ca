package main

import (
	"context"

	authsvc "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/auth/service"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// InitDefaultData seeds the bootstrap admin account when missing.
func InitDefaultData() {
	log := logger.GetAppLogger()

	cfg := global.ServerConfig
	if cfg.AdminPassword == "" {
		log.Warn("ADMIN_PASSWORD not set, skipping admin account seeding")
		return
	}

	service, err := authsvc.NewAuthService()
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	if err := service.EnsureAdminUser(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	log.Infof("Admin account ensured for %s", cfg.AdminEmail)
}
