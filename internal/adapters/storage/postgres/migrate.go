package postgres

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pawshop/internal/platform/logger"
)

// migrationLogger adapta logger.Logger a migrate.Logger.
type migrationLogger struct {
	log     logger.Logger
	verbose bool
}

func (ml migrationLogger) Printf(format string, v ...any) {
	ml.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), nil)
}

func (ml migrationLogger) Verbose() bool {
	return ml.verbose
}

// MigrateDSN convierte un DSN postgres:// al esquema pgx5:// que espera
// el driver de golang-migrate.
func MigrateDSN(dsn string) string {
	for _, p := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, p) {
			return "pgx5://" + strings.TrimPrefix(dsn, p)
		}
	}
	return dsn
}

// Migrate aplica las migraciones pendientes. Con dir vacío usa las
// embebidas (src); si no, lee de disco (file://dir).
func Migrate(dsn string, src fs.FS, dir string, log logger.Logger) error {
	var (
		m   *migrate.Migrate
		err error
	)
	if dir != "" {
		m, err = migrate.New("file://"+dir, MigrateDSN(dsn))
	} else {
		d, derr := iofs.New(src, ".")
		if derr != nil {
			return fmt.Errorf("migrations source: %w", derr)
		}
		m, err = migrate.NewWithSourceInstance("iofs", d, MigrateDSN(dsn))
	}
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	defer m.Close()

	m.Log = migrationLogger{log: log, verbose: true}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("no migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to migrate: %w", err)
	}
	m.Log.Printf("migrations applied")
	return nil
}
