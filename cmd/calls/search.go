package calls

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
)

var (
	searchType  string
	searchLimit int
	searchJSON  bool
)

// searchCmd searches calls
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search calls by phone, status, sentiment, or free text",
	Long: `Search calls. The search type picks the matching strategy:

  phone      - substring match on the phone number
  status     - exact status match (initiated|completed|failed)
  sentiment  - exact sentiment match (positive|neutral|negative)
  nlp        - free-text search over transcripts and insights (default)

Examples:
  voicewise calls search +15550100 --type phone
  voicewise calls search completed --type status
  voicewise calls search "wants to cancel because of price"`,
	Args: cobra.ExactArgs(1),
	Run:  runSearch,
}

func init() {
	cmdutil.AddClientFlags(searchCmd)
	searchCmd.Flags().StringVarP(&searchType, "type", "t", api.SearchTypeNLP, "Search type (phone|status|sentiment|nlp)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 50, "Maximum results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output JSON")
}

func runSearch(cmd *cobra.Command, args []string) {
	if !api.ValidSearchType(searchType) {
		cmdutil.OutputError(fmt.Errorf("invalid search type %q: want phone, status, sentiment, or nlp", searchType), cmdutil.ExitValidationError)
		return
	}

	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	result, err := client.SearchCalls(cmd.Context(), api.SearchQuery{
		Query:      args[0],
		SearchType: searchType,
		Limit:      searchLimit,
	})
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	if searchJSON {
		if err := cmdutil.OutputJSON(result); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	fmt.Printf("%d result(s) for %q (%s search)\n", result.TotalResults, result.Query, result.SearchType)
	if len(result.Calls) == 0 {
		return
	}
	fmt.Println()
	printCallTable(result.Calls, true)
}
