package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"powtool/config"
	"powtool/pow"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "powtool",
	Short: "Hash puzzle proof-of-work tool",
	Long: `powtool generates difficulty targets, searches for the smallest nonce
whose hash of input || nonce does not exceed a target, and verifies
claimed solutions.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
// It is called by main.main() and only needs to happen once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(targetgenCmd)
	rootCmd.AddCommand(solutiongenCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(performancetestCmd)
	rootCmd.AddCommand(cacheCmd)

	// Flag defaults are only used for help text; config.DefaultConfig is the
	// source of truth when no flag, env or file value is set.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.powtool/config.yaml or ./config.yaml)")
	flags.String("log_level", config.DefaultConfig.LogLevel, "Logging level (debug, info, warn, error, fatal)")
	flags.String("algorithm", config.DefaultConfig.Algorithm, "Hash algorithm ("+strings.Join(pow.AlgorithmNames(), ", ")+")")
	flags.String("encoding", config.DefaultConfig.Encoding, "Nonce encoding ("+strings.Join(pow.EncodingNames(), ", ")+")")
	flags.Int("workers", config.DefaultConfig.Workers, "Search workers (0 = one per CPU)")
	flags.Bool("quiet", config.DefaultConfig.Quiet, "Only print verdicts and performance results")
	flags.Bool("cache", config.DefaultConfig.EnableCache, "Reuse previously found solutions")
	flags.String("cache_backend", config.DefaultConfig.CacheBackend, "Solution cache backend (memory, leveldb)")
	flags.String("cache_dir", config.DefaultConfig.CacheDir, "Directory of the leveldb solution cache")
	flags.Duration("timeout", config.DefaultConfig.Timeout, "Give up the search after this long (0 = never)")
	flags.Uint64("progress_interval", config.DefaultConfig.ProgressInterval, "Attempts between debug progress reports")

	for _, name := range []string{
		"log_level", "algorithm", "encoding", "workers", "quiet",
		"cache", "cache_backend", "cache_dir", "timeout", "progress_interval",
	} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".powtool"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("POWTOOL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(os.Stderr, "Error reading config file '%s': %s\n", viper.ConfigFileUsed(), err)
	}
}
