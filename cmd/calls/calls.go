package calls

import (
	"github.com/spf13/cobra"
)

// CallsCmd is the base command for working with feedback calls.
var CallsCmd = &cobra.Command{
	Use:   "calls",
	Short: "Work with feedback calls",
	Long: `Initiate, inspect, and analyze outbound feedback calls.

Subcommands:
  list      - List calls page by page
  show      - Show one call with its insights
  initiate  - Dispatch feedback calls to phone numbers
  analyze   - Trigger transcript analysis for a call
  delete    - Delete a call and its insights
  search    - Search calls by phone, status, sentiment, or free text
  export    - Export calls and insights to an xlsx workbook

Examples:
  voicewise calls list --page 2
  voicewise calls show call_abc123
  voicewise calls initiate +15550100 +15550101
  voicewise calls search "cancel membership" --type nlp`,
	// No Run function - requires a subcommand
}

func init() {
	// Add subcommands
	CallsCmd.AddCommand(listCmd)
	CallsCmd.AddCommand(showCmd)
	CallsCmd.AddCommand(initiateCmd)
	CallsCmd.AddCommand(analyzeCmd)
	CallsCmd.AddCommand(deleteCmd)
	CallsCmd.AddCommand(searchCmd)
	CallsCmd.AddCommand(exportCmd)
}
