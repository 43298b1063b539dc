package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_Embedded(t *testing.T) {
	migrations, err := LoadMigrations(migrationFS, "migrations")

	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "init", migrations[0].Name)
	assert.Contains(t, migrations[0].UpScript, "ON DELETE CASCADE")
	assert.Contains(t, migrations[0].DownScript, "DROP TABLE IF EXISTS events")
}

func TestLoadMigrations_SortsByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"m/000010_later.up.sql":   {Data: []byte("SELECT 10")},
		"m/000010_later.down.sql": {Data: []byte("SELECT -10")},
		"m/000002_first.up.sql":   {Data: []byte("SELECT 2")},
		"m/000002_first.down.sql": {Data: []byte("SELECT -2")},
		"m/README.md":             {Data: []byte("ignored")},
	}

	migrations, err := LoadMigrations(fsys, "m")

	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "000002_first", migrations[0].String())
	assert.Equal(t, "000010_later", migrations[1].String())
	assert.Equal(t, "SELECT -10", migrations[1].DownScript)
}

func TestLoadMigrations_Errors(t *testing.T) {
	t.Run("MissingDown", func(t *testing.T) {
		fsys := fstest.MapFS{"m/000001_x.up.sql": {Data: []byte("SELECT 1")}}

		_, err := LoadMigrations(fsys, "m")

		assert.Error(t, err)
	})

	t.Run("BadVersion", func(t *testing.T) {
		fsys := fstest.MapFS{
			"m/abc_x.up.sql":   {Data: []byte("SELECT 1")},
			"m/abc_x.down.sql": {Data: []byte("SELECT 1")},
		}

		_, err := LoadMigrations(fsys, "m")

		assert.Error(t, err)
	})

	t.Run("MissingDir", func(t *testing.T) {
		_, err := LoadMigrations(fstest.MapFS{}, "nope")

		assert.Error(t, err)
	})
}
