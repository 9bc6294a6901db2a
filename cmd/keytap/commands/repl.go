package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keytap/internal/keypad"
)

// repl: prompt loop decoding one line of key presses at a time until the
// exit sentinel.
func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Decode key presses interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, `Enter key presses per line. "keys" shows the layout, "exit" quits.`)

			sc := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !sc.Scan() {
					return sc.Err()
				}
				switch strings.TrimSpace(strings.ToLower(sc.Text())) {
				case "exit", "quit":
					return nil
				case "keys", "help":
					fmt.Fprint(out, keypadHelp())
				default:
					fmt.Fprintln(out, keypad.Decode(sc.Text()))
				}
			}
		},
	}
}
