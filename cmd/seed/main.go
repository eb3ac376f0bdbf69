package main

import (
	"fmt"

	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/config"
	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/logger"
)

// Seeds demo data and prints a session token per demo user, usable as
// "authorization: Bearer <token>" or as the session cookie.
func main() {
	// Load configuration
	cfg := config.New()
	logger.InitFromConfig(cfg)

	database, err := db.NewDB(cfg)
	if err != nil {
		logger.Error("failed to init db", "err", err)
		return
	}
	if database == nil {
		logger.Error("DATABASE_URL is required for seeding")
		return
	}

	users, err := db.SeedTestData(database)
	if err != nil {
		logger.Error("failed to seed", "err", err)
		return
	}

	sessions := auth.NewSessionManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, cfg.Auth.SessionTTL)
	for _, u := range users {
		name := ""
		if u.Name != nil {
			name = *u.Name
		}
		token, _, err := sessions.Issue(u.OpenID, name)
		if err != nil {
			logger.Error("failed to issue session", "open_id", u.OpenID, "err", err)
			return
		}
		fmt.Printf("%d\t%s\t%s\n", u.ID, u.OpenID, token)
	}

	logger.Info("seeding completed", "users", len(users))
}
