package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	for _, entry := range entries {
		data, err := migrationFiles.ReadFile("migrations/" + entry.Name())
		require.NoError(t, err)
		assert.NotEmpty(t, data, entry.Name())
	}
}

func TestMigrations_CheckInDailyUniqueIndex(t *testing.T) {
	data, err := migrationFiles.ReadFile("migrations/000001_init.up.sql")
	require.NoError(t, err)

	ddl := string(data)
	assert.Contains(t, ddl, "CREATE UNIQUE INDEX IF NOT EXISTS uq_check_ins_user_day")
	assert.Contains(t, ddl, "ON check_ins (user_id, ((created_at AT TIME ZONE 'UTC')::date))")
}
