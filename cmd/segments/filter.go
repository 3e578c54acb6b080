package segments

import (
	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
)

var (
	filterMetric string
	filterOp     string
	filterValue  float64
	filterLimit  int
	filterJSON   bool
)

// filterCmd selects members by comparing a metric to a value
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Members matching a metric comparison",
	Long: `Select members by comparing an insight metric to a value.

Metrics are insight fields such as gym_rating, churn_score,
revenue_interest_score, or confidence. Operators: lt, lte, gt, gte, eq.

Examples:
  # Members who rated the gym 4 or lower
  voicewise segments filter --metric gym_rating --op lte --value 4

  # High-confidence churn risks
  voicewise segments filter --metric churn_score --op gte --value 0.8`,
	Run: runFilter,
}

func init() {
	cmdutil.AddClientFlags(filterCmd)
	filterCmd.Flags().StringVar(&filterMetric, "metric", "", "Insight metric to compare")
	filterCmd.Flags().StringVar(&filterOp, "op", "", "Comparison operator (lt|lte|gt|gte|eq)")
	filterCmd.Flags().Float64Var(&filterValue, "value", 0, "Value to compare against")
	filterCmd.Flags().IntVar(&filterLimit, "limit", 0, "Maximum members (default from config, 100)")
	filterCmd.Flags().BoolVar(&filterJSON, "json", false, "Output JSON")
	_ = filterCmd.MarkFlagRequired("metric")
	_ = filterCmd.MarkFlagRequired("op")
	_ = filterCmd.MarkFlagRequired("value")
}

func runFilter(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	segment, err := client.FilterSegment(cmd.Context(), api.FilterSegmentParams{
		Metric: filterMetric,
		Op:     filterOp,
		Value:  filterValue,
		Limit:  effectiveLimit(filterLimit),
	})
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	printSegment(segment, filterJSON)
}
