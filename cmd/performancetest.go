package cmd

import (
	"powtool/config"
	"powtool/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var performancetestCmd = &cobra.Command{
	Use:   "performancetest <input-file>",
	Short: "Solve the input at a range of difficulties and report timings",
	Args:  cobra.ExactArgs(1),
	RunE:  runPerformancetest,
}

func init() {
	performancetestCmd.Flags().IntSlice("difficulties", config.DefaultConfig.Difficulties, "Difficulties to solve, in order")
	performancetestCmd.Flags().Duration("per_difficulty_timeout", config.DefaultConfig.PerDifficultyTimeout, "Time limit for each difficulty (0 = none)")
	viper.BindPFlag("difficulties", performancetestCmd.Flags().Lookup("difficulties"))
	viper.BindPFlag("per_difficulty_timeout", performancetestCmd.Flags().Lookup("per_difficulty_timeout"))
}

func runPerformancetest(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := s.searchContext(cmd.Context())
	defer cancel()

	logger.Infof("Running performance test over difficulties %v", s.cfg.Difficulties)
	_, err = s.puzzle.PerformanceTest(ctx, args[0], s.cfg.Difficulties, s.cfg.PerDifficultyTimeout)
	return err
}
