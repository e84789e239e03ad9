package cmd

import (
	"github.com/spf13/cobra"
)

var solutiongenCmd = &cobra.Command{
	Use:   "solutiongen <target-file> <input-file> <solution-file>",
	Short: "Find the smallest nonce that solves the puzzle",
	Args:  cobra.ExactArgs(3),
	RunE:  runSolutiongen,
}

func runSolutiongen(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := s.searchContext(cmd.Context())
	defer cancel()

	_, err = s.puzzle.SolutionGen(ctx, args[0], args[1], args[2])
	return err
}
