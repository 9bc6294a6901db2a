package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keytap/internal/keypad"
)

// decode [presses...]: decode key presses given as arguments, or stdin
// lines when no argument is supplied. Separate arguments are joined with a
// pause, matching how the shell split them.
func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [presses...]",
		Short: "Decode key presses into text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				input := strings.Join(args, string(keypad.Pause))
				out := keypad.Decode(input)
				logger.Debug("decoded",
					zap.Int("presses", len(input)),
					zap.Int("chars", len(out)))
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				fmt.Fprintln(cmd.OutOrStdout(), keypad.Decode(sc.Text()))
			}
			return sc.Err()
		},
	}
}
