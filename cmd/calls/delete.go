package calls

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/output"
)

var (
	deleteYes  bool
	deleteJSON bool
)

// deleteCmd deletes a call and its insights
var deleteCmd = &cobra.Command{
	Use:   "delete <call-id>",
	Short: "Delete a call and its insights",
	Long: `Delete a call record and any insights extracted from it.

On a terminal the command asks for confirmation; in scripts pass --yes.

Examples:
  voicewise calls delete call_abc123
  voicewise calls delete call_abc123 --yes`,
	Args: cobra.ExactArgs(1),
	Run:  runDelete,
}

func init() {
	cmdutil.AddClientFlags(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	deleteCmd.Flags().BoolVar(&deleteJSON, "json", false, "Output JSON")
}

func runDelete(cmd *cobra.Command, args []string) {
	callID := args[0]

	if !deleteYes {
		if !output.IsTTY() {
			cmdutil.OutputError(fmt.Errorf("refusing to delete without --yes when not on a terminal"), cmdutil.ExitValidationError)
			return
		}
		if !output.Confirm(cmd.InOrStdin(), os.Stderr, fmt.Sprintf("Delete call %s and its insights?", callID)) {
			fmt.Println("Aborted.")
			return
		}
	}

	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	result, err := client.DeleteCall(cmd.Context(), callID)
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	if deleteJSON {
		if err := cmdutil.OutputJSON(result); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	fmt.Println(result.Message)
}
