package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gamenighthq/gamenight-api/internal/api"
	"github.com/gamenighthq/gamenight-api/internal/config"
	"github.com/gamenighthq/gamenight-api/internal/db"
	"github.com/gamenighthq/gamenight-api/internal/logger"
	"github.com/gamenighthq/gamenight-api/internal/ratelimit"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	// The limiter is fail-open: a nil client disables rate limiting.
	limiter := ratelimit.NewLimiter(ratelimit.OpenRedis(conf.Redis), conf.RateLimit)
	defer limiter.Close()

	s := api.NewServer(conf, postgresDB, limiter)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
