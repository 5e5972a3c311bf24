package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawshop/migrations"
)

func TestMigrateDSN(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/pawshop?sslmode=disable", MigrateDSN("postgres://u:p@db:5432/pawshop?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/pawshop", MigrateDSN("postgresql://u@db/pawshop"))
	assert.Equal(t, "pgx5://already", MigrateDSN("pgx5://already"))
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations.FS, "*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
