package cmd

import (
	"fmt"
	"strings"

	"powtool/config"
	"powtool/database"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the leveldb solution cache",
}

var cacheCountCmd = &cobra.Command{
	Use:   "count [prefix]",
	Short: "Count cached solutions, optionally only keys starting with prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCacheDB(func(db *database.LevelDB) error {
			n, err := db.Count(prefixArg(args))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		})
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [prefix]",
	Short: "Delete cached solutions, optionally only keys starting with prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCacheDB(func(db *database.LevelDB) error {
			n, err := db.DeletePrefix(prefixArg(args))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d cached solutions\n", n)
			return nil
		})
	},
}

func init() {
	cacheCmd.AddCommand(cacheCountCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

// Keys look like algorithm/encoding/inputhash/target, so "sha256/" selects
// every sha256 solution.
func prefixArg(args []string) []byte {
	if len(args) == 0 {
		return nil
	}
	return []byte(args[0])
}

func withCacheDB(fn func(db *database.LevelDB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if backend := strings.ToLower(strings.TrimSpace(cfg.CacheBackend)); backend != config.CacheBackendLevelDB {
		return errors.Errorf("cache commands need the %s backend, cache_backend is %q", config.CacheBackendLevelDB, cfg.CacheBackend)
	}
	db, err := database.NewLevelDB(cfg.CacheDir)
	if err != nil {
		return errors.Wrapf(err, "open solution cache %s", cfg.CacheDir)
	}
	defer db.Close()
	return fn(db)
}
