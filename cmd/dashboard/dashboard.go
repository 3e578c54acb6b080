package dashboard

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

var (
	dashboardFrom string
	dashboardTo   string
	dashboardJSON bool
)

// DashboardCmd shows the aggregate feedback dashboard.
var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the feedback dashboard summary",
	Long: `Show the backend's aggregate view over analyzed calls: sentiment
distribution, top pain points, high-interest quotes, and revenue
opportunities.

Examples:
  voicewise dashboard
  voicewise dashboard --from 2026-08-01 --to 2026-08-21
  voicewise dashboard --json | jq .sentiment`,
	Run: runDashboard,
}

func init() {
	cmdutil.AddClientFlags(DashboardCmd)
	DashboardCmd.Flags().StringVar(&dashboardFrom, "from", "", "Start date (YYYY-MM-DD)")
	DashboardCmd.Flags().StringVar(&dashboardTo, "to", "", "End date (YYYY-MM-DD)")
	DashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Output JSON")
}

func runDashboard(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	summary, err := client.DashboardSummary(cmd.Context(), api.SummaryQuery{
		StartDate: dashboardFrom,
		EndDate:   dashboardTo,
	})
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	if dashboardJSON {
		if err := cmdutil.OutputJSON(summary); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	fmt.Println("=== VoiceWise Dashboard ===")
	fmt.Println()
	fmt.Printf("Total calls analyzed:  %d\n", summary.TotalCalls)
	if summary.AvgDurationSeconds != nil {
		fmt.Printf("Average duration:      %s\n", types.FormatSeconds(int(*summary.AvgDurationSeconds)))
	}
	if summary.AvgConfidence != nil {
		fmt.Printf("Average confidence:    %.2f\n", *summary.AvgConfidence)
	}
	fmt.Printf("Revenue opportunities: %d\n", summary.RevenueOpportunities)

	fmt.Println()
	fmt.Println("Sentiment:")
	total := summary.Sentiment.Total()
	printSentimentRow("positive", summary.Sentiment.Positive, total)
	printSentimentRow("neutral", summary.Sentiment.Neutral, total)
	printSentimentRow("negative", summary.Sentiment.Negative, total)

	if len(summary.TopPainPoints) > 0 {
		fmt.Println()
		fmt.Println("Top pain points:")
		for i, pp := range summary.TopPainPoints {
			fmt.Printf("  %d. %s (%d)\n", i+1, pp.Name, pp.Count)
		}
	}

	if len(summary.HighInterestQuotes) > 0 {
		fmt.Println()
		fmt.Println("High-interest quotes:")
		for _, q := range summary.HighInterestQuotes {
			fmt.Printf("  %q\n", q.Quote)
			fmt.Printf("      - %s (%s)\n", q.PhoneNumber, q.CallID)
		}
	}
}

func printSentimentRow(label string, count, total int) {
	pct := 0.0
	if total > 0 {
		pct = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-8s %4d  (%.1f%%)\n", label, count, pct)
}
