package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golam/internal/logging"
	"github.com/alexiusacademia/golam/internal/version"
)

var (
	// Global options
	verbose       bool
	logFormat     string
	materialsPath string
)

var rootCmd = &cobra.Command{
	Use:   "golam",
	Short: "Composite Laminate and Tubular Member Analysis Tool",
	Long: `golam - Go Composite Laminate Analyzer

A CLI tool for classical laminate analysis of composite tubular
members such as bicycle fork blades.

This tool helps composite engineers perform:
  - Effective laminate constants from a ply stack (CLT)
  - Per-ply stress recovery under membrane and bending loads
  - Cantilever stress profiles under riding load cases
  - Bending natural frequencies and modal damping
  - Hybrid layup trade sweeps (stiffness, mass, cost, damping)

Section properties, load cases and ply angles follow the usual
composites sign conventions; see each subcommand's help for units.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env next to the binary may set GOLAM_MATERIALS and friends.
		godotenv.Load()
		logging.Setup(verbose, logFormat, os.Stderr)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   golam v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Composite Laminate Analyzer                          ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for classical laminate analysis of composite")
		fmt.Println("  tubular members such as bicycle fork blades.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Effective laminate constants from a ply stack (CLT)")
		fmt.Println("    • Per-ply stresses under membrane and bending resultants")
		fmt.Println("    • Cantilever stress profiles for the riding load cases")
		fmt.Println("    • Bending natural frequencies and modal damping")
		fmt.Println("    • Hybrid layup sweeps over skin fraction and angle")
		fmt.Println()
		fmt.Println("  Use 'golam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().StringVar(&materialsPath, "materials", "", "Extra material library YAML (also via GOLAM_MATERIALS)")
}
