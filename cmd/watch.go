package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexiusacademia/gocombo/internal/watch"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate combinations whenever the input documents change",
	Long: `Run generate once, then again each time the group or factor
document is saved. Errors are reported and watching continues.
Stop with Ctrl+C.

Examples:
  gocombo watch -g groups.yaml -f factors.yaml -o combos.xlsx`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	generateInput.register(watchCmd)
	watchCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file; stdout when empty (env GOCOMBO_OUTPUT)")
	watchCmd.Flags().StringVar(&generateFormat, "format", "", "Output format: csv or xlsx (env GOCOMBO_FORMAT)")
	watchCmd.Flags().StringVar(&generateChart, "chart", "", "Export a bar chart of the factors (png, svg, pdf)")
	watchCmd.Flags().BoolVar(&generateBlank, "blank", false, "Leave absent load cases blank instead of 0")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Wait this long after the last change before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := generateOptions()
	if err != nil {
		return err
	}
	names, err := groupNames(generateInput.names)
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	files := []string{opts.GroupsFile}
	if opts.FactorsFile != "" {
		files = append(files, opts.FactorsFile)
	}
	w, err := watch.New(files, watchDebounce, logger)
	if err != nil {
		return err
	}

	rerun := func() error {
		return generate(cmd, opts, names, false)
	}
	if err := rerun(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for changes", "files", files)
	return w.Run(ctx, rerun)
}
