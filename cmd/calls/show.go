package calls

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/output"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

var (
	showMarkdown bool
	showJSON     bool
)

// showCmd shows one call with its insights
var showCmd = &cobra.Command{
	Use:   "show <call-id>",
	Short: "Show one call with its insights",
	Long: `Show a call's details, transcript, and analysis insights.

A call that has not been analyzed yet simply has no insights section; that is
not an error.

Examples:
  # Plain detail view
  voicewise calls show call_abc123

  # Markdown report rendered in the terminal
  voicewise calls show call_abc123 --md

  # Raw JSON
  voicewise calls show call_abc123 --json`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	cmdutil.AddClientFlags(showCmd)
	showCmd.Flags().BoolVar(&showMarkdown, "md", false, "Render a markdown report")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output JSON")
}

func runShow(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	ctx := cmd.Context()
	call, err := client.GetCall(ctx, args[0])
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	insights, err := client.GetCallInsights(ctx, call.CallID)
	if err != nil && !api.IsNotFound(err) {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	if showJSON {
		out := struct {
			Call     *types.Call     `json:"call"`
			Insights *types.Insights `json:"insights,omitempty"`
		}{call, insights}
		if err := cmdutil.OutputJSON(out); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	if showMarkdown {
		printMarkdownReport(call, insights)
		return
	}

	printCallDetail(call, insights)
}

func printCallDetail(call *types.Call, insights *types.Insights) {
	fmt.Printf("=== Call %s ===\n", call.CallID)
	fmt.Println()
	fmt.Printf("Phone:    %s\n", call.PhoneNumber)
	fmt.Printf("Status:   %s\n", call.Status)
	fmt.Printf("Duration: %s\n", call.FormatDuration())
	fmt.Printf("Created:  %s\n", call.CreatedAt.Display())

	if len(call.CustomInstructions) > 0 {
		fmt.Println()
		fmt.Println("Custom instructions:")
		for i, instruction := range call.CustomInstructions {
			fmt.Printf("  %d. %s\n", i+1, instruction)
		}
	}

	fmt.Println()
	if insights == nil {
		fmt.Println("No insights yet.")
		fmt.Printf("Run 'voicewise calls analyze %s' once the call has a transcript.\n", call.CallID)
	} else {
		printInsights(insights)
		if len(insights.CustomInstructionAnswers) > 0 {
			fmt.Println()
			fmt.Println("Instruction answers:")
			for _, instruction := range call.CustomInstructions {
				if answer, ok := insights.CustomInstructionAnswers[instruction]; ok {
					fmt.Printf("  %s: %s\n", instruction, answer)
				}
			}
		}
	}

	if transcript := call.Transcript(); transcript != "" {
		fmt.Println()
		fmt.Println("--- Transcript ---")
		fmt.Println(transcript)
	}
}

func printInsights(insights *types.Insights) {
	fmt.Println("--- Insights ---")
	fmt.Printf("Sentiment:        %s\n", types.FormatSentiment(insights.Sentiment))
	fmt.Printf("Gym rating:       %s\n", types.FormatRating(insights.GymRating))
	fmt.Printf("Churn score:      %s\n", types.FormatScore(insights.ChurnScore))
	fmt.Printf("Revenue interest: %s\n", types.FormatScore(insights.RevenueInterestScore))
	fmt.Printf("Confidence:       %s\n", types.FormatScore(insights.Confidence))
	if len(insights.Topics) > 0 {
		fmt.Printf("Topics:           %s\n", strings.Join(insights.Topics, ", "))
	}
	if len(insights.PainPoints) > 0 {
		fmt.Printf("Pain points:      %s\n", strings.Join(insights.PainPoints, ", "))
	}
	if len(insights.Opportunities) > 0 {
		fmt.Printf("Opportunities:    %s\n", strings.Join(insights.Opportunities, ", "))
	}
	if insights.ChurnInterestQuote != nil && *insights.ChurnInterestQuote != "" {
		fmt.Printf("Churn quote:      %q\n", *insights.ChurnInterestQuote)
	}
	if insights.RevenueInterestQuote != nil && *insights.RevenueInterestQuote != "" {
		fmt.Printf("Revenue quote:    %q\n", *insights.RevenueInterestQuote)
	}
}

// printMarkdownReport renders the call as a markdown report, styled when
// stdout is a terminal and raw otherwise.
func printMarkdownReport(call *types.Call, insights *types.Insights) {
	md := buildMarkdownReport(call, insights)

	if !output.IsTTY() {
		fmt.Println(md)
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(rendered)
}

func buildMarkdownReport(call *types.Call, insights *types.Insights) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Call %s\n\n", call.CallID)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Phone | %s |\n", call.PhoneNumber)
	fmt.Fprintf(&b, "| Status | %s |\n", call.Status)
	fmt.Fprintf(&b, "| Duration | %s |\n", call.FormatDuration())
	fmt.Fprintf(&b, "| Created | %s |\n", call.CreatedAt.Display())

	if insights == nil {
		fmt.Fprintf(&b, "\n_No insights yet._\n")
	} else {
		fmt.Fprintf(&b, "\n## Insights\n\n")
		fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| Sentiment | %s |\n", types.FormatSentiment(insights.Sentiment))
		fmt.Fprintf(&b, "| Gym rating | %s |\n", types.FormatRating(insights.GymRating))
		fmt.Fprintf(&b, "| Churn score | %s |\n", types.FormatScore(insights.ChurnScore))
		fmt.Fprintf(&b, "| Revenue interest | %s |\n", types.FormatScore(insights.RevenueInterestScore))
		fmt.Fprintf(&b, "| Confidence | %s |\n", types.FormatScore(insights.Confidence))

		if len(insights.Topics) > 0 {
			fmt.Fprintf(&b, "\n**Topics:** %s\n", strings.Join(insights.Topics, ", "))
		}
		if len(insights.PainPoints) > 0 {
			fmt.Fprintf(&b, "\n**Pain points:** %s\n", strings.Join(insights.PainPoints, ", "))
		}
		if len(insights.Opportunities) > 0 {
			fmt.Fprintf(&b, "\n**Opportunities:** %s\n", strings.Join(insights.Opportunities, ", "))
		}
		if insights.RevenueInterestQuote != nil && *insights.RevenueInterestQuote != "" {
			fmt.Fprintf(&b, "\n> %s\n", *insights.RevenueInterestQuote)
		}
	}

	if transcript := call.Transcript(); transcript != "" {
		fmt.Fprintf(&b, "\n## Transcript\n\n```\n%s\n```\n", transcript)
	}

	return b.String()
}
