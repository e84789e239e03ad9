package config

import (
	"path/filepath"
	"testing"
	"time"

	"powtool/logger"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "sha256", cfg.Algorithm)
	assert.Equal(t, "be64", cfg.Encoding)
	assert.Equal(t, []int{21, 22, 23, 24, 25, 26}, cfg.Difficulties)
	assert.False(t, cfg.EnableCache)
	assert.Equal(t, logger.INFO, cfg.GetLogLevel())
}

func TestLoadConfigOverrides(t *testing.T) {
	v := viper.New()
	v.Set("algorithm", "BLAKE3")
	v.Set("encoding", "le64")
	v.Set("workers", 3)
	v.Set("timeout", "30s")
	v.Set("difficulties", []int{4, 5})
	v.Set("cache", true)
	v.Set("cache_backend", "memory")
	v.Set("cache_ttl", "0s")

	cfg, err := LoadConfigFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "blake3", cfg.Algorithm)
	assert.Equal(t, "le64", cfg.Encoding)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, []int{4, 5}, cfg.Difficulties)
	assert.Equal(t, DefaultConfig.CacheTTL, cfg.CacheTTL, "invalid ttl falls back to default")

	pc := cfg.PowConfig()
	assert.Equal(t, "blake3", pc.Algorithm)
	assert.Equal(t, 3, pc.Workers)
}

func TestLoadConfigCreatesLevelDBDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	v := viper.New()
	v.Set("cache", true)
	v.Set("cache_dir", dir)

	cfg, err := LoadConfigFrom(v)
	require.NoError(t, err)
	assert.Equal(t, CacheBackendLevelDB, cfg.CacheBackend)
	assert.DirExists(t, dir)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"unknown algorithm", "algorithm", "md5"},
		{"unknown encoding", "encoding", "decimal"},
		{"difficulty too large", "difficulties", []int{21, 300}},
		{"negative difficulty", "difficulties", []int{-1}},
		{"negative timeout", "timeout", "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := LoadConfigFrom(v)
			assert.Error(t, err)
		})
	}

	v := viper.New()
	v.Set("cache", true)
	v.Set("cache_backend", "redis")
	_, err := LoadConfigFrom(v)
	assert.Error(t, err)
}

func TestLoadConfigFixesWorkers(t *testing.T) {
	v := viper.New()
	v.Set("workers", -4)
	cfg, err := LoadConfigFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Workers)
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		level     string
		verbosity int
		want      logger.LogLevel
	}{
		{"debug", 3, logger.DEBUG},
		{"trace", 3, logger.DEBUG},
		{"WARN", 3, logger.WARNING},
		{"error", 3, logger.ERROR},
		{"fatal", 3, logger.FATAL},
		{"bogus", 1, logger.ERROR},
		{"bogus", 2, logger.WARNING},
		{"bogus", 5, logger.DEBUG},
		{"bogus", 42, logger.INFO},
	}
	for _, tt := range tests {
		c := &Config{LogLevel: tt.level, Verbosity: tt.verbosity}
		assert.Equal(t, tt.want, c.GetLogLevel(), "%s/%d", tt.level, tt.verbosity)
	}
}
