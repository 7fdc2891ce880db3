package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gocombo/internal/export"
	"github.com/alexiusacademia/gocombo/internal/nscp"
	"github.com/spf13/cobra"
)

var codesNames map[string]string

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the built-in load combination recipe sets",
	Long: `List the built-in recipe sets usable with --code, and the group
factors of each recipe.

Load types are mapped onto group names; the defaults match the example
group document and can be changed with --names.`,
	RunE: runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)
	codesCmd.Flags().StringToStringVar(&codesNames, "names", nil, "Map NSCP load types to group names, e.g. Earthquake=Seismic")
}

func runCodes(cmd *cobra.Command, args []string) error {
	names, err := groupNames(codesNames)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, set := range nscp.SetNames() {
		recipes, err := nscp.Recipes(set, names)
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s\n", set)
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for i, lc := range nscp.Sets[set] {
			r := recipes[i]
			factors := make([]string, 0, len(r.Assignments))
			for _, a := range r.Assignments {
				factors = append(factors, a.Path.String()+" "+export.FormatFactor(a.Factor))
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", r.Name, lc.Description, strings.Join(factors, ", "))
		}
		w.Flush()
	}
	fmt.Fprintln(out)
	return nil
}
