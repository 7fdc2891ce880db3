package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocombo/internal/config"
	"github.com/alexiusacademia/gocombo/internal/diagram"
	"github.com/alexiusacademia/gocombo/internal/export"
	"github.com/alexiusacademia/gocombo/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	generateInput  inputFlags
	generateOutput string
	generateFormat string
	generateChart  string
	generateShow   bool
	generateBlank  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Expand factor recipes into load case combinations",
	Long: `Expand every recipe of a factor document over a load group hierarchy.

Each combination lists the factor of every load case. Alternative groups
produce one combination per active subgroup, and the combination is named
after the recipe and the subgroups chosen (LRFD4-Perm-North).

Recipes that cannot be expanded are reported and skipped.

Examples:
  # Write combinations as csv to stdout
  gocombo generate -g groups.yaml -f factors.yaml

  # Write an Excel workbook and show the factor matrix
  gocombo generate -g groups.yaml -f factors.yaml -o combos.xlsx --show

  # Use the built-in NSCP 2015 combinations
  gocombo generate -g groups.yaml --code nscp2015 --names Earthquake=Seismic

  # Plot the factors of each combination
  gocombo generate -g groups.yaml -f factors.yaml --chart factors.png`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateInput.register(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file; stdout when empty (env GOCOMBO_OUTPUT)")
	generateCmd.Flags().StringVar(&generateFormat, "format", "", "Output format: csv or xlsx; taken from the output extension when empty (env GOCOMBO_FORMAT)")
	generateCmd.Flags().StringVar(&generateChart, "chart", "", "Export a bar chart of the factors (png, svg, pdf)")
	generateCmd.Flags().BoolVar(&generateShow, "show", false, "Print the factor matrix")
	generateCmd.Flags().BoolVar(&generateBlank, "blank", false, "Leave absent load cases blank instead of 0")
}

func generateOptions() (config.Options, error) {
	opts, err := generateInput.options()
	if err != nil {
		return opts, err
	}
	if generateOutput != "" {
		opts.Output = generateOutput
	}
	if generateFormat != "" {
		opts.Format = generateFormat
	}
	opts.Chart = generateChart
	opts.Blank = generateBlank
	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := generateOptions()
	if err != nil {
		return err
	}
	names, err := groupNames(generateInput.names)
	if err != nil {
		return err
	}
	return generate(cmd, opts, names, generateShow)
}

// generate runs one expansion and writes every requested output
func generate(cmd *cobra.Command, opts config.Options, names nscp.GroupNames, show bool) error {
	format, err := export.ParseFormat(opts.Format, opts.Output)
	if err != nil {
		return err
	}

	exp, err := expand(cmd.Context(), opts, names, logger)
	if err != nil {
		return err
	}
	table := export.NewTable(exp.model, exp.result.Rows, export.Options{Blank: opts.Blank})

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for _, f := range exp.result.Failures {
		fmt.Fprintf(errOut, "Skipped: %v\n", f)
	}

	switch {
	case opts.Output != "":
		if err := export.Write(opts.Output, format, table); err != nil {
			return fmt.Errorf("writing combinations: %w", err)
		}
		fmt.Fprintf(errOut, "Combinations written to: %s\n", opts.Output)
	case !show:
		if err := export.WriteTo(out, format, table); err != nil {
			return fmt.Errorf("writing combinations: %w", err)
		}
	}

	if show {
		fmt.Fprintln(out, diagram.DrawASCIIFactorMatrix(table))
	}

	if opts.Chart != "" {
		if err := diagram.ExportFactorChart(table, opts.Chart); err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Fprintf(errOut, "Chart exported to: %s\n", opts.Chart)
	}
	return nil
}
