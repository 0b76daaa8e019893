package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DJB-ScheduleService/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
dbname = "djb_schedule"

[compensation]
base_quota = 8
extra_rate = 150
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, minimalConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 3, cfg.Booking.MaxDJsPerDay)
	assert.Equal(t, 8, cfg.Compensation.BaseQuota)
	assert.Equal(t, int64(150), cfg.Compensation.ExtraRate)
}

func TestLoad_EnvOverridesExtraRate(t *testing.T) {
	t.Setenv("COMP_EXTRA_RATE", "200")

	cfg, err := config.Load(writeConfig(t, minimalConfig))

	require.NoError(t, err)
	assert.Equal(t, int64(200), cfg.Compensation.ExtraRate)
}

func TestLoad_InvalidEnvExtraRate(t *testing.T) {
	t.Setenv("COMP_EXTRA_RATE", "not-a-number")

	_, err := config.Load(writeConfig(t, minimalConfig))

	assert.Error(t, err)
}

func TestLoad_MissingDatabaseHost(t *testing.T) {
	_, err := config.Load(writeConfig(t, `
[database]
dbname = "djb_schedule"
`))

	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	cfg.Database.Port = 5432
	cfg.Database.User = "djb"
	cfg.Database.Password = "secret"

	assert.Equal(t,
		"host=localhost port=5432 user=djb password=secret dbname=djb_schedule sslmode=disable",
		cfg.Database.DSN(),
	)
}
