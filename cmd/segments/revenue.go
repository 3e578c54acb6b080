package segments

import (
	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
)

var (
	revenueThreshold float64
	revenueLimit     int
	revenueJSON      bool
)

// revenueCmd selects members showing upsell interest
var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Members whose revenue interest crosses a threshold",
	Long: `Select members whose calls showed interest in paid extras such as
personal training or class packages.

Without --threshold the segments.revenue_threshold config key applies, and
without that the backend's default cutoff.

Examples:
  voicewise segments revenue
  voicewise segments revenue --threshold 0.6`,
	Run: runRevenue,
}

func init() {
	cmdutil.AddClientFlags(revenueCmd)
	revenueCmd.Flags().Float64Var(&revenueThreshold, "threshold", 0, "Minimum revenue interest in [0, 1] (default: backend cutoff)")
	revenueCmd.Flags().IntVar(&revenueLimit, "limit", 0, "Maximum members (default from config, 100)")
	revenueCmd.Flags().BoolVar(&revenueJSON, "json", false, "Output JSON")
}

func runRevenue(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	params := api.ScoreSegmentParams{Limit: effectiveLimit(revenueLimit)}
	if cmd.Flags().Changed("threshold") {
		params.Threshold = &revenueThreshold
	} else if v := cmdutil.GetFloat64Config("segments.revenue_threshold", 0); v > 0 {
		params.Threshold = &v
	}

	segment, err := client.RevenueSegment(cmd.Context(), params)
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	printSegment(segment, revenueJSON)
}
