package calls

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

var (
	analyzeWait        bool
	analyzeWaitTimeout time.Duration
	analyzeJSON        bool
)

// analyzeCmd triggers transcript analysis for a call
var analyzeCmd = &cobra.Command{
	Use:   "analyze <call-id>",
	Short: "Trigger transcript analysis for a call",
	Long: `Ask the backend to (re)run transcript analysis for a call.

The backend may analyze synchronously and return insights right away, or queue
the work. With --wait the command polls for insights with exponential backoff
until they appear or --wait-timeout elapses.

Examples:
  # Fire and forget
  voicewise calls analyze call_abc123

  # Block until insights are available
  voicewise calls analyze call_abc123 --wait --wait-timeout 5m`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	cmdutil.AddClientFlags(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeWait, "wait", false, "Poll until insights are available")
	analyzeCmd.Flags().DurationVar(&analyzeWaitTimeout, "wait-timeout", 2*time.Minute, "Give up waiting after this long")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	ctx := cmd.Context()
	result, err := client.AnalyzeCall(ctx, args[0])
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	insights := result.Insights
	if insights == nil && analyzeWait {
		insights, err = waitForInsights(ctx, client, result.CallID, analyzeWaitTimeout)
		if err != nil {
			cmdutil.OutputError(err, cmdutil.MapAPIError(err))
			return
		}
	}

	if analyzeJSON {
		out := struct {
			CallID   string          `json:"call_id"`
			Status   string          `json:"status"`
			Insights *types.Insights `json:"insights,omitempty"`
		}{result.CallID, result.Status, insights}
		if err := cmdutil.OutputJSON(out); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	fmt.Printf("Analysis triggered for call %s (status: %s)\n", result.CallID, result.Status)
	if insights != nil {
		fmt.Println()
		printInsights(insights)
	} else if !analyzeWait {
		fmt.Printf("Run 'voicewise calls show %s' later to see the results, or use --wait.\n", result.CallID)
	}
}

// waitForInsights polls until the call's insights exist. A 404 means the
// analysis has not landed yet and is retried; any other failure stops the
// wait immediately.
func waitForInsights(ctx context.Context, client *api.Client, callID string, timeout time.Duration) (*types.Insights, error) {
	var insights *types.Insights

	op := func() error {
		result, err := client.GetCallInsights(ctx, callID)
		if err != nil {
			if api.IsNotFound(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		insights = result
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = timeout

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		if api.IsNotFound(err) {
			return nil, fmt.Errorf("no insights after %s: %w", timeout, err)
		}
		return nil, err
	}
	return insights, nil
}
