package cmd

import (
	"github.com/spf13/cobra"
)

// An invalid solution is a verdict, not an error: the command still exits 0.
var verifyCmd = &cobra.Command{
	Use:   "verify <input-file> <solution-file> <target-file>",
	Short: "Check a nonce against an input and target",
	Args:  cobra.ExactArgs(3),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.puzzle.Verify(args[0], args[1], args[2])
	return err
}
