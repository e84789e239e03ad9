package core

import (
	"powtool/cache"
	"powtool/config"
	"powtool/database"
	"powtool/interfaces"
	"powtool/logger"

	"github.com/pkg/errors"
)

// OpenStore returns the solution store selected by cfg, or nil when the
// cache is disabled.
func OpenStore(cfg *config.Config) (interfaces.SolutionStore, error) {
	if !cfg.EnableCache {
		return nil, nil
	}
	switch cfg.CacheBackend {
	case config.CacheBackendMemory:
		logger.Debugf("Using in-memory solution cache (ttl %s)", cfg.CacheTTL)
		return cache.NewCache(cfg.CacheTTL), nil
	case config.CacheBackendLevelDB:
		logger.Debugf("Using leveldb solution cache at %s", cfg.CacheDir)
		db, err := database.NewLevelDB(cfg.CacheDir)
		if err != nil {
			return nil, errors.Wrapf(err, "open solution cache %s", cfg.CacheDir)
		}
		return db, nil
	default:
		return nil, errors.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
