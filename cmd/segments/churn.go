package segments

import (
	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
)

var (
	churnThreshold float64
	churnLimit     int
	churnJSON      bool
)

// churnCmd selects members at risk of leaving
var churnCmd = &cobra.Command{
	Use:   "churn",
	Short: "Members whose churn score crosses a threshold",
	Long: `Select members whose calls scored high on churn risk.

Without --threshold the segments.churn_threshold config key applies, and
without that the backend's default cutoff.

Examples:
  voicewise segments churn
  voicewise segments churn --threshold 0.8 --limit 25`,
	Run: runChurn,
}

func init() {
	cmdutil.AddClientFlags(churnCmd)
	churnCmd.Flags().Float64Var(&churnThreshold, "threshold", 0, "Minimum churn score in [0, 1] (default: backend cutoff)")
	churnCmd.Flags().IntVar(&churnLimit, "limit", 0, "Maximum members (default from config, 100)")
	churnCmd.Flags().BoolVar(&churnJSON, "json", false, "Output JSON")
}

func runChurn(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	params := api.ScoreSegmentParams{Limit: effectiveLimit(churnLimit)}
	if cmd.Flags().Changed("threshold") {
		params.Threshold = &churnThreshold
	} else if v := cmdutil.GetFloat64Config("segments.churn_threshold", 0); v > 0 {
		params.Threshold = &v
	}

	segment, err := client.ChurnSegment(cmd.Context(), params)
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	printSegment(segment, churnJSON)
}
