package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/directory-cli/internal/validator"
)

var reportFile string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show missing-field and image coverage tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, _, err := buildAnalysis(cmd.Context(), reportFile)
		if err != nil {
			return err
		}

		formatMissingFields(os.Stdout, report.MissingFields)
		fmt.Fprintln(os.Stdout)
		formatImageAnalysis(os.Stdout, report.Images)
		return nil
	},
}

func formatMissingFields(w io.Writer, fields []validator.FieldCount) {
	if len(fields) == 0 {
		fmt.Fprintln(w, "No missing fields. Every business is complete.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tMISSING\tPCT")
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%d\t%d%%\n", f.Field, f.Count, f.Percentage)
	}
	tw.Flush() //nolint:errcheck
}

func formatImageAnalysis(w io.Writer, images validator.ImageAnalysis) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IMAGES\tCOUNT")
	fmt.Fprintf(tw, "businesses with any image\t%d/%d\n", images.BusinessesWithImages, images.TotalBusinesses)
	fmt.Fprintf(tw, "with logo\t%d\n", images.BusinessesWithLogo)
	fmt.Fprintf(tw, "with banner\t%d\n", images.BusinessesWithBanner)
	fmt.Fprintf(tw, "with logo and banner\t%d\n", images.BusinessesWithBoth)
	fmt.Fprintf(tw, "with all required images\t%d\n", images.BusinessesWithAllRequired)
	fmt.Fprintf(tw, "average images per business\t%.1f\n", images.AverageImagesPerBusiness)
	tw.Flush() //nolint:errcheck
}

func init() {
	reportCmd.Flags().StringVar(&reportFile, "file", "", "report on a local CSV/XLSX file instead of Drive")
	rootCmd.AddCommand(reportCmd)
}
