package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"keytap/internal/keypad"
)

var (
	digitStyle = lipgloss.NewStyle().Bold(true).Width(4)
	noteStyle  = lipgloss.NewStyle().Faint(true)
)

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the keypad layout and special keys",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), keypadHelp())
		},
	}
}

// keypadHelp renders the fixed layout plus the special keys.
func keypadHelp() string {
	var b strings.Builder
	for _, k := range keypad.Keys() {
		chars := k.Chars
		if chars == " " {
			chars = "space"
		}
		b.WriteString(digitStyle.Render(string(k.Digit)))
		b.WriteString(chars)
		b.WriteByte('\n')
	}
	b.WriteString(noteStyle.Render("space=pause  *=backspace  #=send"))
	b.WriteByte('\n')
	return b.String()
}
