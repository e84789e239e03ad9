package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"powtool/logger"
	"powtool/pow"

	"github.com/spf13/viper"
)

// Config struct holds all configuration for the application.
// Tags are used by viper to map ENV variables and config file keys.
type Config struct {
	// Puzzle configuration
	Algorithm string `mapstructure:"algorithm"`
	Encoding  string `mapstructure:"encoding"`
	Workers   int    `mapstructure:"workers"` // 0 = one per CPU

	// Search control
	Timeout          time.Duration `mapstructure:"timeout"` // 0 = search until found
	ProgressInterval uint64        `mapstructure:"progress_interval"`

	// Output configuration
	Quiet bool `mapstructure:"quiet"` // Suppress per-result chatter on stdout

	// Logging configuration
	LogLevel  string `mapstructure:"log_level"` // e.g., "debug", "info", "warn", "error"
	Verbosity int    `mapstructure:"verbosity"` // Alternative to LogLevel, 0-5

	// Solution cache configuration
	EnableCache  bool          `mapstructure:"cache"`
	CacheBackend string        `mapstructure:"cache_backend"` // "memory" or "leveldb"
	CacheDir     string        `mapstructure:"cache_dir"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"` // memory backend only

	// Performance test configuration
	Difficulties         []int         `mapstructure:"difficulties"`
	PerDifficultyTimeout time.Duration `mapstructure:"per_difficulty_timeout"`
}

const (
	CacheBackendMemory  = "memory"
	CacheBackendLevelDB = "leveldb"
)

// defaultConfig holds the unexported default configuration values.
var defaultConfig = Config{
	Algorithm:            pow.DefaultAlgorithm,
	Encoding:             pow.DefaultEncoding,
	Workers:              0,
	Timeout:              0,
	ProgressInterval:     pow.DefaultProgressInterval,
	Quiet:                false,
	LogLevel:             "info",
	Verbosity:            3,
	EnableCache:          false,
	CacheBackend:         CacheBackendLevelDB,
	CacheDir:             "./powtool_cache",
	CacheTTL:             10 * time.Minute,
	Difficulties:         []int{21, 22, 23, 24, 25, 26},
	PerDifficultyTimeout: 10 * time.Minute,
}

// DefaultConfig is an exported version of defaultConfig, allowing other packages
// to access the default values, for example, when setting up CLI flags.
var DefaultConfig = defaultConfig

// LoadConfig loads configuration from file, environment variables, and flags
// through the global viper instance.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(viper.GetViper())
}

// LoadConfigFrom starts from DefaultConfig and lets v override it.
func LoadConfigFrom(v *viper.Viper) (*Config, error) {
	currentConfig := DefaultConfig
	currentConfig.Difficulties = append([]int(nil), DefaultConfig.Difficulties...)

	if err := v.Unmarshal(&currentConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config from Viper: %v", err)
	}

	logger.Debugf("Effective config: Algorithm='%s', Encoding='%s', Workers=%d, Timeout=%s, Quiet=%t, LogLevel='%s', Cache=%t, CacheBackend='%s', CacheDir='%s', Difficulties=%v",
		currentConfig.Algorithm, currentConfig.Encoding, currentConfig.Workers, currentConfig.Timeout, currentConfig.Quiet,
		currentConfig.LogLevel, currentConfig.EnableCache, currentConfig.CacheBackend, currentConfig.CacheDir, currentConfig.Difficulties)

	if err := validateConfig(&currentConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	return &currentConfig, nil
}

func validateConfig(config *Config) error {
	config.Algorithm = strings.ToLower(strings.TrimSpace(config.Algorithm))
	if _, err := pow.LookupAlgorithm(config.Algorithm); err != nil {
		return err
	}
	config.Encoding = strings.ToLower(strings.TrimSpace(config.Encoding))
	if _, err := pow.LookupEncoding(config.Encoding); err != nil {
		return err
	}

	if config.Workers < 0 {
		logger.Warningf("Workers is invalid (%d), using one worker per CPU", config.Workers)
		config.Workers = 0
	}
	if config.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %s", config.Timeout)
	}
	if config.ProgressInterval == 0 {
		logger.Warningf("ProgressInterval is 0, using default: %d", DefaultConfig.ProgressInterval)
		config.ProgressInterval = DefaultConfig.ProgressInterval
	}

	for _, d := range config.Difficulties {
		if d < 0 || d > pow.DigestBits {
			return fmt.Errorf("performance test difficulty %d is outside [0, %d]", d, pow.DigestBits)
		}
	}
	if len(config.Difficulties) == 0 {
		logger.Warningf("No performance test difficulties configured, using default: %v", DefaultConfig.Difficulties)
		config.Difficulties = append([]int(nil), DefaultConfig.Difficulties...)
	}
	if config.PerDifficultyTimeout < 0 {
		return fmt.Errorf("per_difficulty_timeout cannot be negative: %s", config.PerDifficultyTimeout)
	}

	if !config.EnableCache {
		return nil
	}
	config.CacheBackend = strings.ToLower(strings.TrimSpace(config.CacheBackend))
	switch config.CacheBackend {
	case CacheBackendMemory:
		if config.CacheTTL <= 0 {
			logger.Warningf("CacheTTL is invalid (%s), using default: %s", config.CacheTTL, DefaultConfig.CacheTTL)
			config.CacheTTL = DefaultConfig.CacheTTL
		}
	case CacheBackendLevelDB:
		config.CacheDir = strings.TrimSpace(config.CacheDir)
		if config.CacheDir == "" {
			return fmt.Errorf("cache_dir cannot be empty when the leveldb cache is enabled")
		}
		if err := os.MkdirAll(config.CacheDir, 0755); err != nil {
			return fmt.Errorf("failed to create cache directory '%s': %v", config.CacheDir, err)
		}
	default:
		return fmt.Errorf("unknown cache_backend '%s' (want %s or %s)", config.CacheBackend, CacheBackendMemory, CacheBackendLevelDB)
	}
	return nil
}

func (c *Config) GetLogLevel() logger.LogLevel {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "trace":
		return logger.DEBUG
	case "info":
		return logger.INFO
	case "warn", "warning":
		return logger.WARNING
	case "error":
		return logger.ERROR
	case "fatal":
		return logger.FATAL
	default:
		logger.Warningf("Unknown log_level '%s', falling back to verbosity %d", c.LogLevel, c.Verbosity)
		switch c.Verbosity {
		case 0, 1:
			return logger.ERROR
		case 2:
			return logger.WARNING
		case 3:
			return logger.INFO
		case 4, 5:
			return logger.DEBUG
		default:
			logger.Warningf("Unknown verbosity level %d, defaulting to INFO", c.Verbosity)
			return logger.INFO
		}
	}
}

// PowConfig maps the puzzle settings onto an engine configuration.
func (c *Config) PowConfig() pow.Config {
	return pow.Config{
		Algorithm:        c.Algorithm,
		Encoding:         c.Encoding,
		Workers:          c.Workers,
		ProgressInterval: c.ProgressInterval,
	}
}
