package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lmarchand/huegen/internal/contrast"
	"github.com/lmarchand/huegen/internal/generate"
	"github.com/lmarchand/huegen/internal/logger"
	"github.com/lmarchand/huegen/internal/scale"
	"github.com/lmarchand/huegen/internal/semantic"
)

type inspectOptions struct {
	generateOptions
}

func newInspectCmd(root *rootFlags, log *logger.Logger) *cobra.Command {
	opts := inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Render the derived scales and a contrast report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Format = formatJSON // unused by inspect, keep validation happy
			if err := validateGenerateOptions(opts.generateOptions); err != nil {
				return err
			}
			return runInspect(cmd, opts, commandLogger(log, root))
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a generation config file")
	cmd.Flags().StringVarP(&opts.Seed, "seed", "s", "", "Seed color, e.g. '#3366FF'")
	cmd.Flags().Float64Var(&opts.Saturation, "saturation", 0.14, "Neutral scale saturation (0-0.30)")
	cmd.Flags().StringVar(&opts.Compliance, "compliance", "AA", "WCAG compliance target (AA or AAA)")
	cmd.Flags().Float64Var(&opts.Tint, "tint", 0, "Hue shift in degrees for harmony variants")

	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions, log *logger.Logger) error {
	request, err := buildRequest(opts.generateOptions)
	if err != nil {
		return err
	}

	result, err := generate.Run(request)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{"seed": request.Seed}).Debug("rendering inspection report")

	out := cmd.OutOrStdout()
	useUnicode := supportsUnicode(out)

	fmt.Fprintf(out, "Seed:       %s\n", result.Primary.Seed().Sample.Hex)
	fmt.Fprintf(out, "Compliance: %s (text %.1f:1, outline %.1f:1)\n\n",
		result.Mode, result.Mode.TextThreshold(), result.Mode.OutlineThreshold())

	fmt.Fprintln(out, "Neutral scale:")
	fmt.Fprintln(out, renderScale(result.Neutral))
	fmt.Fprintln(out, "Primary scale:")
	fmt.Fprintln(out, renderScale(result.Primary))

	return renderContrastReport(out, result, useUnicode)
}

// renderScale draws one swatch per entry, labeled with its step name. The
// label color flips between black and white to stay readable on the
// swatch itself.
func renderScale(s *scale.Scale) string {
	row := make([]string, 0, s.Len())
	for _, entry := range s.Entries {
		label := entry.Label
		if entry.IsSeed {
			label = "*" + label
		}

		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(entry.Sample.Hex)).
			Foreground(lipgloss.Color(labelColorFor(entry.Sample.Hex))).
			Padding(0, 1).
			Render(label)
		row = append(row, swatch)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

// labelColorFor picks whichever of black or white reads better on the
// swatch.
func labelColorFor(hex string) string {
	whiteRatio, okWhite := contrast.Ratio(hex, "#FFFFFF")
	blackRatio, okBlack := contrast.Ratio(hex, "#000000")
	if okWhite && okBlack && blackRatio > whiteRatio {
		return "#000000"
	}
	return "#FFFFFF"
}

type contrastRow struct {
	role       semantic.Role
	background semantic.Role
	threshold  float64
}

// renderContrastReport tabulates each checked role against its actual
// background with the ratio and a pass/fail mark. Offset-derived roles
// (subtle/intense neighbors) are listed for information but were never
// threshold-validated by the resolver.
func renderContrastReport(out io.Writer, result *generate.Result, useUnicode bool) error {
	mode := result.Mode
	rows := []contrastRow{
		{semantic.RoleTextPrimary, semantic.RoleSurfaceVariant, mode.TextThreshold()},
		{semantic.RoleTextSecondary, semantic.RoleSurfaceVariant, mode.TextThreshold()},
		{semantic.RoleTextTertiary, semantic.RoleSurfaceVariant, mode.TextThreshold()},
		{semantic.RoleTextPrimaryInverse, semantic.RoleSurfaceInvertedVariant, mode.TextThreshold()},
		{semantic.RoleTextSecondaryInverse, semantic.RoleSurfaceInvertedVariant, mode.TextThreshold()},
		{semantic.RoleTextTertiaryInverse, semantic.RoleSurfaceInvertedVariant, mode.TextThreshold()},
		{semantic.RoleOutlineDefault, semantic.RoleSurfaceVariant, mode.OutlineThreshold()},
		{semantic.RoleOutlineDefaultInverse, semantic.RoleSurfaceInvertedVariant, mode.OutlineThreshold()},
		{semantic.RoleOutlinePrimary, semantic.RoleSurfaceVariant, mode.OutlineThreshold()},
		{semantic.RoleTextOnPrimary, semantic.RoleSurfacePrimary, 4.5},
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "\nROLE\tVALUE\tBACKGROUND\tRATIO\tSTATUS")

	for _, row := range rows {
		assigned := result.Light[row.role]
		background := result.Light[row.background]

		ratio, ok := contrast.Ratio(assigned.Entry.Sample.Hex, background.Entry.Sample.Hex)
		if !ok {
			continue
		}

		fmt.Fprintf(writer, "%s\t%s\t%s\t%.2f:1\t%s\n",
			row.role.Path(),
			assigned.Entry.Sample.Hex,
			background.Entry.Sample.Hex,
			ratio,
			passMark(ratio >= row.threshold, useUnicode),
		)
	}

	return writer.Flush()
}

func passMark(pass, useUnicode bool) string {
	switch {
	case pass && useUnicode:
		return "✓ pass"
	case pass:
		return "pass"
	case useUnicode:
		return "✗ fail"
	default:
		return "fail"
	}
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
