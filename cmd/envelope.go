package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gocombo/internal/combo"
	"github.com/alexiusacademia/gocombo/internal/diagram"
	"github.com/alexiusacademia/gocombo/internal/loadgroup"
	"github.com/spf13/cobra"
)

var (
	envelopeInput   inputFlags
	envelopeEffects []string
	envelopeAll     bool
)

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Find the governing combination for unfactored load effects",
	Long: `Apply every combination to unfactored load effects and report the
governing (largest and smallest) factored effect.

Effects are given per load case as name=value and may be any quantity
that combines linearly: moments, shears, axial forces, reactions.
Load cases without an effect contribute nothing.

Examples:
  # Governing moment from the example documents
  gocombo envelope -g groups.yaml -f factors.yaml --effect DL=50 --effect LL=30

  # Show every combination, using the built-in NSCP 2015 recipes
  gocombo envelope -g groups.yaml --code nscp2015 -e DL=50 -e WL_Frame_North=20 --all`,
	RunE: runEnvelope,
}

func init() {
	rootCmd.AddCommand(envelopeCmd)

	envelopeInput.register(envelopeCmd)
	envelopeCmd.Flags().StringArrayVarP(&envelopeEffects, "effect", "e", nil, "Unfactored effect of a load case as name=value (repeatable)")
	envelopeCmd.Flags().BoolVarP(&envelopeAll, "all", "a", false, "Show the factored effect of every combination")
}

// parseEffects reads name=value pairs into unfactored effects per load case
func parseEffects(pairs []string) (map[loadgroup.LoadCase]float64, error) {
	effects := make(map[loadgroup.LoadCase]float64, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("effect %q: expected name=value", p)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("effect %q: %w", p, err)
		}
		effects[loadgroup.LoadCase(name)] += v
	}
	return effects, nil
}

func runEnvelope(cmd *cobra.Command, args []string) error {
	effects, err := parseEffects(envelopeEffects)
	if err != nil {
		return err
	}
	if len(effects) == 0 {
		return fmt.Errorf("please provide at least one unfactored effect (use 'gocombo envelope --help' for usage)")
	}

	opts, err := envelopeInput.options()
	if err != nil {
		return err
	}
	names, err := groupNames(envelopeInput.names)
	if err != nil {
		return err
	}
	exp, err := expand(cmd.Context(), opts, names, logger)
	if err != nil {
		return err
	}

	for c := range effects {
		if !exp.model.Contains(c) {
			logger.Warn("effect given for unknown load case", "load_case", string(c))
		}
	}

	env, ok := combo.Governing(exp.result.Rows, effects)
	if !ok {
		return fmt.Errorf("no combinations to evaluate")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "              FACTORED EFFECT ENVELOPE")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "UNFACTORED EFFECTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range exp.model.LoadCases() {
		if v, ok := effects[c]; ok {
			fmt.Fprintf(w, "  %s:\t%.2f\n", c, v)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	if envelopeAll {
		fmt.Fprintln(out, "COMBINATIONS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Combination\tFactored\t\n")
		fmt.Fprintf(w, "  ───────────\t────────\t\n")
		for i, row := range exp.result.Rows {
			marker := ""
			switch {
			case i == env.MaxIndex && i == env.MinIndex:
				marker = "← MAX, MIN"
			case i == env.MaxIndex:
				marker = "← MAX"
			case i == env.MinIndex:
				marker = "← MIN"
			}
			fmt.Fprintf(w, "  %s\t%.2f\t%s\n", row.Name, env.Values[i], marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("GOVERNING", []string{
		fmt.Sprintf("Max = %.2f  (%s)", env.Max, env.MaxRow.Name),
		fmt.Sprintf("Min = %.2f  (%s)", env.Min, env.MinRow.Name),
	}))
	fmt.Fprintln(out)
	return nil
}
