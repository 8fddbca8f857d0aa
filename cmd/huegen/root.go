package main

import (
	"github.com/spf13/cobra"

	"github.com/lmarchand/huegen/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "huegen",
		Short:         "Huegen derives accessible semantic color tokens from a single seed",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(flags, log))
	cmd.AddCommand(newInspectCmd(flags, log))
	cmd.AddCommand(newPreviewCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
