package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"pawshop/internal/adapters/storage/postgres"
	"pawshop/internal/platform/logger"
	"pawshop/migrations"
)

const (
	storagePathFlag   = "storage-path"
	migrationPathFlag = "migrations-path"
)

func main() {
	_ = godotenv.Load()

	storagePath := pflag.StringP(storagePathFlag, "s", os.Getenv("DB_DSN"), "postgres DSN (default $DB_DSN)")
	migrationsPath := pflag.StringP(migrationPathFlag, "m", "", "migrations dir (default: embedded)")
	pflag.Parse()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
		Format: logger.FormatText,
		App:    "pawshop-migrator",
	})

	if *storagePath == "" {
		log.Error("too few args", map[string]any{"err": fmt.Sprintf("--%s flag: required", storagePathFlag)})
		os.Exit(2)
	}

	if err := postgres.Migrate(*storagePath, migrations.FS, *migrationsPath, log); err != nil {
		log.Error("migration failed", map[string]any{"err": err})
		os.Exit(2)
	}
}
