package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "keytap",
		Short: "Multi-tap phone keypad codec",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopmentConfig().Build()
				if err != nil {
					return err
				}
				logger = l
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(decodeCmd(), encodeCmd(), keysCmd(), checkCmd(), replCmd())
	return root
}
