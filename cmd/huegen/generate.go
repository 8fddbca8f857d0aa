package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmarchand/huegen/internal/config"
	"github.com/lmarchand/huegen/internal/generate"
	"github.com/lmarchand/huegen/internal/logger"
	"github.com/lmarchand/huegen/internal/semantic"
	"github.com/lmarchand/huegen/internal/tokens"
)

type generateOptions struct {
	ConfigPath string
	Seed       string
	Saturation float64
	Compliance string
	Tint       float64
	Prefix     string
	Format     string
	OutPath    string
}

func newGenerateCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a semantic token tree from a seed color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGenerateOptions(opts); err != nil {
				return err
			}
			return runGenerate(cmd, opts, commandLogger(log, root))
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a generation config file")
	cmd.Flags().StringVarP(&opts.Seed, "seed", "s", "", "Seed color, e.g. '#3366FF'")
	cmd.Flags().Float64Var(&opts.Saturation, "saturation", 0.14, "Neutral scale saturation (0-0.30)")
	cmd.Flags().StringVar(&opts.Compliance, "compliance", "AA", "WCAG compliance target (AA or AAA)")
	cmd.Flags().Float64Var(&opts.Tint, "tint", 0, "Hue shift in degrees for harmony variants")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Namespace prefix replacing the default 'color' root")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format: json or css")
	cmd.Flags().StringVarP(&opts.OutPath, "out", "o", "", "Write output to a file instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions, log *logger.Logger) error {
	request, err := buildRequest(opts)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"seed":       request.Seed,
		"compliance": request.Compliance.String(),
		"format":     opts.Format,
	}).Debug("starting generation pass")

	result, err := generate.Run(request)
	if err != nil {
		return err
	}

	var output []byte
	switch opts.Format {
	case formatCSS:
		css, err := tokens.ToCSS(result.Tree, result.Prefix)
		if err != nil {
			return err
		}
		output = []byte(css)
	default:
		output, err = tokens.ToJSON(result.Tree, result.Prefix)
		if err != nil {
			return err
		}
		output = append(output, '\n')
	}

	if opts.OutPath != "" {
		if err := os.WriteFile(opts.OutPath, output, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.WithFields(map[string]any{"path": opts.OutPath, "tokens": result.Tree.Len()}).Info("token tree written")
		return nil
	}

	_, err = cmd.OutOrStdout().Write(output)
	return err
}

// buildRequest merges config-file values with flag values; explicit flags
// win where both are present.
func buildRequest(opts generateOptions) (generate.Request, error) {
	request := generate.Request{
		Seed:       opts.Seed,
		Saturation: opts.Saturation,
		Tint:       opts.Tint,
		Prefix:     opts.Prefix,
	}

	mode, ok := semantic.ParseCompliance(opts.Compliance)
	if !ok {
		return generate.Request{}, fmt.Errorf("unknown compliance target %q (expected AA or AAA)", opts.Compliance)
	}
	request.Compliance = mode

	if opts.ConfigPath == "" {
		return request, nil
	}

	cfg, err := config.ParseConfig(opts.ConfigPath)
	if err != nil {
		return generate.Request{}, err
	}

	request = generate.FromConfig(cfg)
	if opts.Seed != "" {
		request.Seed = opts.Seed
	}
	if opts.Prefix != "" {
		request.Prefix = opts.Prefix
	}
	return request, nil
}

func commandLogger(log *logger.Logger, root *rootFlags) *logger.Logger {
	if log == nil || root == nil || !root.verbose {
		return log
	}
	verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
	if err != nil {
		return log
	}
	return verbose
}
