// Command cmd creates or updates the database schema and exits.
package main

import (
	"installations_api/internal/config"
	"installations_api/internal/logging"
	"installations_api/internal/storage"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		logging.Warn().Err(err).Msg("no .env file loaded")
	}
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := storage.Open(cfg.DB)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("storage unavailable")
	}
	if err := storage.NewStore(db).Migrate(); err != nil {
		logging.Fatal().Err(err).Msg("migration failed")
	}
	logging.Info().Str("driver", cfg.DB.Driver).Msg("schema migrated")
}
