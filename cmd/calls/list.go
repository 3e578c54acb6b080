package calls

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/logger"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/paging"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

var (
	listPage            int
	listPageSize        int
	listStatus          string
	listSentiment       string
	listPainPoint       string
	listRevenueInterest bool
	listFrom            string
	listTo              string
	listWithInsights    bool
	listJSON            bool
)

// listCmd lists one page of calls
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List calls page by page",
	Long: `List feedback calls one page at a time.

Pages are fetched from the backend with skip/limit derived from --page and
--page-size. When the backend does not report a total, the footer shows an
estimate that settles as later pages load.

Examples:
  # First page of calls
  voicewise calls list

  # Second page, completed calls only
  voicewise calls list --page 2 --status completed

  # Negative calls in a date range, with their insights
  voicewise calls list --sentiment negative --from 2026-08-01 --to 2026-08-21 --with-insights

  # Machine-readable output
  voicewise calls list --json | jq '.calls[].phone_number'`,
	Run: runList,
}

func init() {
	cmdutil.AddClientFlags(listCmd)
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number (1-based)")
	listCmd.Flags().IntVar(&listPageSize, "page-size", paging.DefaultPageSize, "Calls per page")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (initiated|completed|failed)")
	listCmd.Flags().StringVar(&listSentiment, "sentiment", "", "Filter by sentiment (positive|neutral|negative)")
	listCmd.Flags().StringVar(&listPainPoint, "pain-point", "", "Filter by pain point")
	listCmd.Flags().BoolVar(&listRevenueInterest, "revenue-interest", false, "Only calls flagged as revenue interest")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "End date (YYYY-MM-DD)")
	listCmd.Flags().BoolVar(&listWithInsights, "with-insights", false, "Fetch insights for each call on the page")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output JSON")
}

func runList(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	pager := paging.New(listPage, listPageSize)
	filter := api.ListFilter{
		Status:    listStatus,
		Sentiment: listSentiment,
		PainPoint: listPainPoint,
		StartDate: listFrom,
		EndDate:   listTo,
		Limit:     pager.Limit(),
		Skip:      pager.Skip(),
	}
	if cmd.Flags().Changed("revenue-interest") {
		filter.RevenueInterest = &listRevenueInterest
	}

	ctx := cmd.Context()
	page, err := client.ListCalls(ctx, filter)
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	if listWithInsights {
		attachInsights(ctx, client, page.Calls)
	}

	total := paging.EstimateTotal(pager.Skip(), len(page.Calls), pager.Limit(), page.Total, page.TotalKnown)
	totalPages := paging.TotalPages(total, pager.PageSize)

	if listJSON {
		out := struct {
			Calls      []types.Call `json:"calls"`
			Page       int          `json:"page"`
			PageSize   int          `json:"page_size"`
			Total      int          `json:"total"`
			TotalExact bool         `json:"total_exact"`
		}{page.Calls, pager.Page, pager.PageSize, total, page.TotalKnown || len(page.Calls) < pager.Limit()}
		if err := cmdutil.OutputJSON(out); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	printCallTable(page.Calls, listWithInsights)

	marker := "total"
	if !page.TotalKnown {
		marker = "total~"
	}
	fmt.Printf("\npage %d of %d (%s %d)\n", pager.Page, totalPages, marker, total)
}

// attachInsights merges per-call insights into the page. Calls without
// insights stay as they are; only unexpected failures are logged.
func attachInsights(ctx context.Context, client *api.Client, calls []types.Call) {
	for i := range calls {
		if calls[i].Insights != nil {
			continue
		}
		insights, err := client.GetCallInsights(ctx, calls[i].CallID)
		if err != nil {
			if !api.IsNotFound(err) {
				logger.Warn("Failed to fetch insights", "call_id", calls[i].CallID, "error", err)
			}
			continue
		}
		calls[i].Insights = insights
	}
}

func printCallTable(calls []types.Call, withInsights bool) {
	if len(calls) == 0 {
		fmt.Println("No calls found.")
		return
	}

	if withInsights {
		fmt.Printf("%-26s %-16s %-10s %-9s %-17s %-9s %-6s\n",
			"CALL ID", "PHONE", "STATUS", "DURATION", "CREATED", "SENTIMENT", "CHURN")
	} else {
		fmt.Printf("%-26s %-16s %-10s %-9s %-17s\n",
			"CALL ID", "PHONE", "STATUS", "DURATION", "CREATED")
	}

	for _, call := range calls {
		if withInsights {
			sentiment, churn := "n/a", "n/a"
			if call.Insights != nil {
				sentiment = types.FormatSentiment(call.Insights.Sentiment)
				churn = types.FormatScore(call.Insights.ChurnScore)
			}
			fmt.Printf("%-26s %-16s %-10s %-9s %-17s %-9s %-6s\n",
				call.CallID, call.PhoneNumber, call.Status,
				call.FormatDuration(), call.CreatedAt.Display(), sentiment, churn)
		} else {
			fmt.Printf("%-26s %-16s %-10s %-9s %-17s\n",
				call.CallID, call.PhoneNumber, call.Status,
				call.FormatDuration(), call.CreatedAt.Display())
		}
	}
}
