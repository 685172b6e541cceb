package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithPath("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "hrmis", cfg.App.Name)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.SessionTTL)
	assert.Contains(t, cfg.Admin.Emails, "memona@hrmis.com")
	assert.False(t, cfg.OTel.Enabled)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("ADMIN_EMAILS", "boss@corp.com, ceo@corp.com")

	cfg, err := LoadWithPath("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, []string{"boss@corp.com", "ceo@corp.com"}, cfg.Admin.Emails)
}

func TestValidate(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "-1")
		_, err := LoadWithPath("does-not-exist.env")
		require.Error(t, err)
	})

	t.Run("session shorter than token", func(t *testing.T) {
		t.Setenv("JWT_SESSION_TTL", "1m")
		_, err := LoadWithPath("does-not-exist.env")
		require.Error(t, err)
	})
}

func TestAddr(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 4000}
	assert.Equal(t, "0.0.0.0:4000", s.Addr())
}
