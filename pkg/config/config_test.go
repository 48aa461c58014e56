package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lajunglaworkout/jungla-iberica-sub006/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "jungla-backoffice", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Redis.Enabled(), "sin REDIS_ADDR el buzón es en memoria")
	assert.Equal(t, "jungla:selected_lead", cfg.Redis.HandoffKey)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db.interno")
	t.Setenv("DB_PASSWORD", "p@ss:word")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Contains(t, cfg.DB.ConnectionString(), "db.interno:5432")
	assert.Contains(t, cfg.DB.ConnectionString(), "p%40ss%3Aword", "la contraseña debe ir codificada")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	c := config.DBConfig{DatabaseURL: "postgresql://u:p@h:6543/x", Host: "otro"}
	assert.Equal(t, "postgresql://u:p@h:6543/x", c.ConnectionString())
}

func TestLoad_PuertoInvalido(t *testing.T) {
	t.Setenv("HTTP_PORT", "no-es-numero")
	_, err := config.Load()
	assert.Error(t, err)
}
