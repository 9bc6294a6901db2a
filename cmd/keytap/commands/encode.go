package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keytap/internal/keypad"
)

// encode <text>: print the key presses that decode back to <text>.
func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text into key presses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			out := keypad.Encode(text)
			logger.Debug("encoded",
				zap.Int("chars", len(text)),
				zap.Int("presses", len(out)))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
