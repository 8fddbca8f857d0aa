package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lmarchand/huegen/internal/logger"
	"github.com/lmarchand/huegen/internal/semantic"
	"github.com/lmarchand/huegen/internal/tui/preview"
)

func newPreviewCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively explore derived tokens in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview requires an interactive terminal")
			}
			return runPreview(opts, commandLogger(log, root))
		},
	}

	cmd.Flags().StringVarP(&opts.Seed, "seed", "s", "#3366FF", "Initial seed color")
	cmd.Flags().Float64Var(&opts.Saturation, "saturation", 0.14, "Neutral scale saturation (0-0.30)")
	cmd.Flags().StringVar(&opts.Compliance, "compliance", "AA", "Initial WCAG compliance target")

	return cmd
}

func runPreview(opts generateOptions, log *logger.Logger) error {
	mode, ok := semantic.ParseCompliance(opts.Compliance)
	if !ok {
		return fmt.Errorf("unknown compliance target %q (expected AA or AAA)", opts.Compliance)
	}

	log.Info("launching preview")

	m := preview.NewModel(opts.Seed, opts.Saturation, mode)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "preview failed")
		return fmt.Errorf("run preview: %w", err)
	}

	log.Info("preview closed")
	return nil
}
