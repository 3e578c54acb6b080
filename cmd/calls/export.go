package calls

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/export"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// exportBatchSize is the page size used when walking the full listing.
const exportBatchSize = 50

var (
	exportOut          string
	exportStatus       string
	exportFrom         string
	exportTo           string
	exportWithInsights bool
	exportJSON         bool
)

// exportCmd exports calls to an xlsx workbook
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export calls and insights to an xlsx workbook",
	Long: `Export calls to an xlsx workbook with a Calls sheet and an Insights sheet.

The command pages through the full listing until a short page marks the end.
With --with-insights every call's analysis is fetched as well; calls without
insights simply have no row on the Insights sheet.

Examples:
  voicewise calls export --out calls.xlsx
  voicewise calls export --status completed --with-insights
  voicewise calls export --from 2026-08-01 --to 2026-08-21 --out august.xlsx`,
	Run: runExport,
}

func init() {
	cmdutil.AddClientFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "voicewise-calls.xlsx", "Output file path")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "Filter by status (initiated|completed|failed)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "End date (YYYY-MM-DD)")
	exportCmd.Flags().BoolVar(&exportWithInsights, "with-insights", false, "Fetch insights for every exported call")
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Output JSON")
}

func runExport(cmd *cobra.Command, args []string) {
	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	ctx := cmd.Context()
	var all []types.Call
	skip := 0
	for {
		page, err := client.ListCalls(ctx, api.ListFilter{
			Status:    exportStatus,
			StartDate: exportFrom,
			EndDate:   exportTo,
			Limit:     exportBatchSize,
			Skip:      skip,
		})
		if err != nil {
			cmdutil.OutputError(err, cmdutil.MapAPIError(err))
			return
		}
		all = append(all, page.Calls...)
		if len(page.Calls) < exportBatchSize {
			break
		}
		skip += exportBatchSize
	}

	if exportWithInsights {
		attachInsights(ctx, client, all)
	}

	if err := export.Write(exportOut, all, nil); err != nil {
		cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		return
	}

	if exportJSON {
		out := struct {
			Path  string `json:"path"`
			Calls int    `json:"calls"`
		}{exportOut, len(all)}
		if err := cmdutil.OutputJSON(out); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	fmt.Printf("Wrote %d call(s) to %s\n", len(all), exportOut)
}
