package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golam/internal/mech"
	"github.com/alexiusacademia/golam/internal/report"
	"github.com/alexiusacademia/golam/internal/section"
)

var (
	// Report inputs
	reportCase    string
	reportSupport string
	reportTitle   string
	reportOut     string
	reportXLSX    string
)

var forkReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a full blade evaluation as a PDF report",
	Long: `Run the complete evaluation (stress profile, natural frequencies,
damping, mass and cost) and write it as a single-page PDF. The
stress profile can additionally be exported as an XLSX table.

Examples:
  golam fork report --case braking --out blade.pdf

  golam fork report --file layup.yaml --case impact \
    --out blade.pdf --xlsx profile.xlsx`,
	Run: runForkReport,
}

func init() {
	forkCmd.AddCommand(forkReportCmd)

	forkReportCmd.Flags().StringVar(&reportCase, "case", "static", "Named riding load case")
	forkReportCmd.Flags().StringVar(&reportSupport, "support", "fixed-free", "Support condition")
	forkReportCmd.Flags().StringVar(&reportTitle, "title", "Composite Fork Blade Evaluation", "Report title")
	forkReportCmd.Flags().StringVar(&reportOut, "out", "fork_report.pdf", "PDF file to write")
	forkReportCmd.Flags().StringVar(&reportXLSX, "xlsx", "", "Also write the profile table to this XLSX file")
}

func runForkReport(cmd *cobra.Command, args []string) {
	lib, lam, tube, label, err := forkBlade()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	lc, err := mech.Case(reportCase)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	bc, err := mech.ParseBoundary(reportSupport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := mech.Evaluate(lam, tube, lc, mech.Options{
		Boundary:    bc,
		LossFactors: lib.LossFactors(),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	summary := report.Summary{
		Title:    reportTitle,
		Layup:    label,
		Section:  section.Describe(tube),
		Case:     lc,
		Boundary: bc,
		Laminate: lam,
		Result:   res,
	}
	if err := report.WritePDF(summary, reportOut); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Report written to %s\n", reportOut)

	if reportXLSX != "" {
		if err := report.WriteProfileXLSX(res.Profile, reportXLSX); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Profile table written to %s\n", reportXLSX)
	}
}
