package segments

import (
	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
)

var (
	promptLimit int
	promptJSON  bool
)

// promptCmd selects members matching a free-form condition
var promptCmd = &cobra.Command{
	Use:   "prompt <condition>",
	Short: "Members matching a free-form condition",
	Long: `Select members with a natural-language condition the backend evaluates
against stored insights.

Examples:
  voicewise segments prompt "complained about billing"
  voicewise segments prompt "asked about personal training" --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runPrompt,
}

func init() {
	cmdutil.AddClientFlags(promptCmd)
	promptCmd.Flags().IntVar(&promptLimit, "limit", 0, "Maximum members (default from config, 100)")
	promptCmd.Flags().BoolVar(&promptJSON, "json", false, "Output JSON")
}

func runPrompt(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	segment, err := client.PromptSegment(cmd.Context(), api.PromptSegmentParams{
		Prompt: args[0],
		Limit:  effectiveLimit(promptLimit),
	})
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	printSegment(segment, promptJSON)
}
