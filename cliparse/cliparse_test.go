package cliparse

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
	assert.Equal(t, DefaultBcryptCost, cfg.BcryptCost)
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("SECRET_KEY", "env-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "env-secret", cfg.SecretKey)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://env")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "postgres://cli"})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://cli", cfg.DatabaseURL)
}

func TestParseFlags_SQLiteDefaultPath(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-t", "sqlite"})
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, DefaultSQLitePath, cfg.DatabaseURL)
}

func TestParseFlags_InvalidPort(t *testing.T) {
	os.Setenv("PORT", "not-a-number")
	defer os.Clearenv()

	_, err := ParseFlags([]string{})
	assert.Error(t, err)
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-t", "mysql"})
	assert.Error(t, err)
}
