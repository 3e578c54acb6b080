package health

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
)

var healthJSON bool

// HealthCmd probes the backend health endpoint.
var HealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend health",
	Long: `Probe the backend's health endpoint.

Exits 0 when the backend responds and 2 when it is unreachable, which makes
the command usable in scripts and readiness checks.

Examples:
  voicewise health
  voicewise health --api-url http://voicewise.internal:8000 --json`,
	Run: runHealth,
}

func init() {
	cmdutil.AddClientFlags(HealthCmd)
	HealthCmd.Flags().BoolVar(&healthJSON, "json", false, "Output JSON")
}

func runHealth(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	status, err := client.Health(cmd.Context())
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	if healthJSON {
		if err := cmdutil.OutputJSON(status); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	fmt.Printf("Backend:     %s\n", client.BaseURL())
	fmt.Printf("Status:      %s\n", status.Status)
	fmt.Printf("Environment: %s\n", status.Environment)
	fmt.Printf("Database:    %s\n", status.Database)
	fmt.Printf("Checked at:  %s\n", status.Timestamp.Display())
}
