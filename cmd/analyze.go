package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/internal/sheet"
	"github.com/sells-group/directory-cli/internal/validator"
)

var (
	analyzeFile         string
	analyzeCompleteOnly bool
	analyzeSave         bool
	analyzeJSON         bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a directory completeness analysis",
	Long:  "Validates every business in the directory spreadsheet against the listing requirements. Reads from Drive by default; --file analyzes a local CSV or XLSX export instead (no images).",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		report, source, err := buildAnalysis(ctx, analyzeFile)
		if err != nil {
			return err
		}

		if analyzeSave {
			if err := saveAnalysis(ctx, source, report); err != nil {
				return err
			}
		}

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		printAnalysis(report)
		return nil
	},
}

// buildAnalysis runs the report pipeline, from a local file when one is
// given, otherwise from Drive.
func buildAnalysis(ctx context.Context, file string) (validator.Report, string, error) {
	if file != "" {
		grid, err := sheet.GridFromFile(file)
		if err != nil {
			return validator.Report{}, "", err
		}
		records := sheet.Extract(grid)

		businesses := make([]model.Business, 0, len(records))
		for _, r := range records {
			businesses = append(businesses, model.Business{BusinessRecord: r})
		}
		return validator.BuildReport(businesses), "file", nil
	}

	svc, err := initDirectory(ctx)
	if err != nil {
		return validator.Report{}, "", err
	}
	report, err := svc.Analyze(ctx)
	if err != nil {
		return validator.Report{}, "", err
	}
	return report, "drive", nil
}

func saveAnalysis(ctx context.Context, source string, report validator.Report) error {
	st, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	summary, err := json.Marshal(struct {
		MissingFields []validator.FieldCount  `json:"missing_fields"`
		Images        validator.ImageAnalysis `json:"images"`
	}{report.MissingFields, report.Images})
	if err != nil {
		return eris.Wrap(err, "marshal analysis summary")
	}

	run := &model.AnalysisRun{
		Source:         source,
		Total:          report.Statistics.Total,
		Complete:       report.Statistics.Complete,
		Incomplete:     report.Statistics.Incomplete,
		CompletionRate: report.Statistics.CompletionRate,
		Summary:        summary,
	}
	if err := st.SaveAnalysis(ctx, run); err != nil {
		return eris.Wrap(err, "save analysis")
	}

	zap.L().Info("analysis saved", zap.String("id", run.ID))
	return nil
}

func printAnalysis(report validator.Report) {
	stats := report.Statistics
	fmt.Printf("Analyzed %d businesses: %d complete, %d incomplete (%d%%)\n\n",
		stats.Total, stats.Complete, stats.Incomplete, stats.CompletionRate)

	for _, v := range report.Complete {
		fmt.Printf("  READY    %s\n", v.Name)
	}
	if !analyzeCompleteOnly {
		for _, v := range report.Incomplete {
			fmt.Printf("  MISSING  %s (%d%%): %s\n",
				v.Name,
				v.Validation.CompletionPercentage,
				strings.Join(v.Validation.Missing, ", "))
		}
	}

	if report.CanProceedToAutomation {
		fmt.Printf("\n%d businesses ready for submission.\n", stats.Complete)
	} else {
		fmt.Println("\nNo businesses are ready for submission yet.")
	}
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "analyze a local CSV/XLSX file instead of Drive")
	analyzeCmd.Flags().BoolVar(&analyzeCompleteOnly, "complete-only", false, "only list complete businesses")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "persist the analysis summary to the store")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}
