package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"powtool/pow"

	"github.com/spf13/cobra"
)

var targetgenCmd = &cobra.Command{
	Use:   "targetgen <difficulty> <target-file>",
	Short: "Write the target for a difficulty",
	Long: `targetgen writes 2^(256-difficulty)-1 in decimal to the target file and
prints it as a 256-bit string.`,
	Args: cobra.ExactArgs(2),
	RunE: runTargetgen,
}

func runTargetgen(cmd *cobra.Command, args []string) error {
	difficulty, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", pow.ErrInvalidDifficulty, args[0])
	}

	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.puzzle.TargetGen(difficulty, args[1])
	return err
}
