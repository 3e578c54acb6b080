package calls

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
)

var (
	initiateFile         string
	initiateInstructions []string
	initiateJSON         bool
)

// initiateCmd dispatches feedback calls
var initiateCmd = &cobra.Command{
	Use:   "initiate [numbers...]",
	Short: "Dispatch feedback calls to phone numbers",
	Long: `Dispatch outbound feedback calls to one or more phone numbers.

Numbers come from positional arguments, a newline-delimited file (--file), or
stdin when the argument is "-". Lines are trimmed and blank lines dropped;
order is preserved and duplicates are sent as given.

Custom instructions are extra questions the agent works into the call. Repeat
--instruction to ask several.

Examples:
  # Two numbers inline
  voicewise calls initiate +15550100 +15550101

  # From a file, with an extra question
  voicewise calls initiate --file members.txt --instruction "Ask about the new sauna"

  # From a pipeline
  voicewise segments churn | voicewise calls initiate -`,
	Run: runInitiate,
}

func init() {
	cmdutil.AddClientFlags(initiateCmd)
	initiateCmd.Flags().StringVarP(&initiateFile, "file", "f", "", "File with one phone number per line")
	initiateCmd.Flags().StringArrayVarP(&initiateInstructions, "instruction", "i", nil, "Custom instruction for the call (repeatable)")
	initiateCmd.Flags().BoolVar(&initiateJSON, "json", false, "Output JSON")
}

func runInitiate(cmd *cobra.Command, args []string) {
	numbers, err := collectNumbers(args, initiateFile, cmd.InOrStdin())
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitValidationError)
		return
	}
	if len(numbers) == 0 {
		cmdutil.OutputError(fmt.Errorf("no phone numbers given: pass them as arguments, --file, or '-' for stdin"), cmdutil.ExitValidationError)
		return
	}

	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	result, err := client.InitiateCalls(cmd.Context(), api.InitiateRequest{
		PhoneNumbers:       numbers,
		CustomInstructions: initiateInstructions,
	})
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	if initiateJSON {
		if err := cmdutil.OutputJSON(result); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	fmt.Printf("Initiated %d call(s):\n", result.Total)
	for _, call := range result.CallsInitiated {
		fmt.Printf("  %-16s %-10s %s\n", call.PhoneNumber, call.Status, call.CallID)
	}
}

// collectNumbers gathers numbers from args, an optional file, and stdin
// (when an arg is "-"), in that order. Every source is parsed with the same
// trim/drop-empty rules and nothing is deduplicated.
func collectNumbers(args []string, filePath string, stdin io.Reader) ([]string, error) {
	var numbers []string

	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("failed to read stdin: %w", err)
			}
			numbers = append(numbers, api.SplitNumbers(string(data))...)
			continue
		}
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			numbers = append(numbers, trimmed)
		}
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read numbers file: %w", err)
		}
		numbers = append(numbers, api.SplitNumbers(string(data))...)
	}

	return numbers, nil
}
