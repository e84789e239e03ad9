package core

import (
	"path/filepath"
	"testing"

	"powtool/cache"
	"powtool/config"
	"powtool/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	cfg := config.DefaultConfig
	store, err := OpenStore(&cfg)
	require.NoError(t, err)
	assert.Nil(t, store)

	cfg.EnableCache = true
	cfg.CacheBackend = config.CacheBackendMemory
	store, err = OpenStore(&cfg)
	require.NoError(t, err)
	assert.IsType(t, &cache.Cache{}, store)
	require.NoError(t, store.Close())

	cfg.CacheBackend = config.CacheBackendLevelDB
	cfg.CacheDir = filepath.Join(t.TempDir(), "cache")
	store, err = OpenStore(&cfg)
	require.NoError(t, err)
	assert.IsType(t, &database.LevelDB{}, store)

	require.NoError(t, store.Put([]byte("k"), []byte("9")))
	got, err := store.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("9"), got)
	require.NoError(t, store.Close())

	cfg.CacheBackend = "redis"
	_, err = OpenStore(&cfg)
	assert.Error(t, err)
}
