package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keytap/internal/keypad"
	"keytap/internal/suite"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// check: run the built-in scenarios and any extra cases from --suite,
// printing one line per case. A non-zero exit signals at least one failure.
func checkCmd() *cobra.Command {
	var suitePath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the self-check scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := suite.Builtin()
			if suitePath != "" {
				extra, err := suite.Load(suitePath)
				if err != nil {
					return err
				}
				logger.Debug("loaded suite",
					zap.String("path", suitePath),
					zap.Int("cases", len(extra)))
				cases = append(cases, extra...)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range suite.Run(keypad.Decode, cases) {
				if r.Pass {
					fmt.Fprintf(out, "%s %s\n", passStyle.Render("PASS"), r.Case.Name)
					continue
				}
				failed++
				fmt.Fprintf(out, "%s %s: Decode(%q) = %q, want %q\n",
					failStyle.Render("FAIL"), r.Case.Name, r.Case.Input, r.Got, r.Case.Want)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(cases))
			}
			fmt.Fprintf(out, "%d cases passed\n", len(cases))
			return nil
		},
	}
	cmd.Flags().StringVar(&suitePath, "suite", "", "YAML file with extra cases")
	return cmd
}
