package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gocombo/internal/config"
	"github.com/alexiusacademia/gocombo/internal/logging"
	"github.com/alexiusacademia/gocombo/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logJSON  bool

	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gocombo",
	Short: "Structural Load Combination Generator",
	Long: `gocombo - Go Load Combination Generator

A CLI tool that expands factored load combination recipes over a
hierarchy of load groups into the full list of load case combinations.

Load groups are either additive (all subgroups act together) or
alternative (exactly one subgroup acts at a time). Recipes assign
factors to groups; every combination of alternatives is generated.

Combinations are written as csv or xlsx, and built-in recipes
follow NSCP 2015 (Volume 1) Section 203.3.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocombo v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Load Combination Generator                           ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool that expands load combination recipes over")
		fmt.Println("  additive and alternative load groups.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Load group hierarchies with shared references")
		fmt.Println("    • Every branch of alternative groups enumerated")
		fmt.Println("    • Built-in NSCP 2015 load combinations")
		fmt.Println("    • Governing combination for unfactored effects")
		fmt.Println("    • csv, xlsx and bar chart output")
		fmt.Println()
		fmt.Println("  Use 'gocombo --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (env GOCOMBO_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
}

// setup loads .env and configures the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	name := logLevel
	if name == "" {
		name = os.Getenv(config.EnvLogLevel)
	}
	level, err := logging.ParseLevel(name)
	if err != nil {
		return err
	}

	logger = logging.New(logging.Config{Level: level, JSON: logJSON, Output: cmd.ErrOrStderr()})
	slog.SetDefault(logger)
	return nil
}
