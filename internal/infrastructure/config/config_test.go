package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_LocalDefaults(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("LOCAL_DB_DRIVER", "sqlite")
	t.Setenv("LOCAL_SQLITE_PATH", "test.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "test.db", cfg.GetDSN())
	assert.Equal(t, 6, cfg.OTPLength)
	assert.Equal(t, "8080", cfg.ServerPort)
}

func TestLoadConfig_ServerPrefix(t *testing.T) {
	t.Setenv("ENV_TYPE", "server")
	t.Setenv("SERVER_DB_DRIVER", "mysql")
	t.Setenv("SERVER_DB_USER", "hostel")
	t.Setenv("SERVER_DB_PASSWORD", "secret")
	t.Setenv("SERVER_DB_HOST", "db")
	t.Setenv("SERVER_DB_PORT", "3307")
	t.Setenv("SERVER_DB_NAME", "complaints")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "SERVER", cfg.EnvType)
	assert.Equal(t, "hostel:secret@tcp(db:3307)/complaints?charset=utf8mb4&parseTime=True&loc=Local", cfg.GetDSN())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"LOCAL_DB_DRIVER": "mongo"}},
		{name: "mysql without user", env: map[string]string{"LOCAL_DB_DRIVER": "mysql", "LOCAL_DB_USER": ""}},
		{name: "otp too short", env: map[string]string{"LOCAL_DB_DRIVER": "sqlite", "OTP_LENGTH": "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_TYPE", "LOCAL")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
