package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/directory-cli/pkg/bot"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Show automation bot status and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client := bot.NewClient(bot.WithBaseURL(cfg.Bot.BaseURL))

		status, err := client.Status(ctx)
		if err != nil {
			return eris.Wrap(err, "bot status")
		}
		fmt.Printf("Phase: %s  running: %t  uptime: %ds\n\n",
			status.Phase, status.IsRunning, status.ServerUptime)

		summary, err := client.Summary(ctx)
		if err != nil {
			return eris.Wrap(err, "bot summary")
		}
		fmt.Printf("Submissions: %d total, %d completed, %d failed, %d in progress, %d pending\n\n",
			summary.Total, summary.Completed, summary.Failed, summary.InProgress, summary.Pending)

		progress, err := client.Progress(ctx)
		if err != nil {
			return eris.Wrap(err, "bot progress")
		}
		if len(progress) == 0 {
			fmt.Println("No businesses in the current run.")
			return nil
		}

		formatBotProgress(os.Stdout, progress)
		return nil
	},
}

func formatBotProgress(w io.Writer, progress []bot.BusinessProgress) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BUSINESS\tSTEP\tPROGRESS\tGMAIL\tMESSAGE")
	for _, p := range progress {
		fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\t%s\n",
			p.BusinessName, p.CurrentStep, p.Progress, p.GmailStatus, p.StepMessage)
	}
	tw.Flush() //nolint:errcheck
}

func init() {
	rootCmd.AddCommand(botCmd)
}
