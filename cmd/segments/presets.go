package segments

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
	presets "github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
)

var presetsJSON bool

// presetsCmd lists the named presets
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List named presets from the presets file",
	Long: `List the segment presets defined in the presets file.

Run one with 'voicewise segments --preset <name>'.`,
	Run: runPresetsList,
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "Output JSON")
}

func runPresetsList(cmd *cobra.Command, args []string) {
	file, err := loadPresets()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		return
	}

	if presetsJSON {
		if err := cmdutil.OutputJSON(file.Presets); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}

	if len(file.Presets) == 0 {
		fmt.Println("No presets defined.")
		fmt.Printf("Create %s with a 'presets:' list to add some.\n", presets.DefaultPath())
		return
	}

	fmt.Printf("%-20s %-8s %s\n", "NAME", "KIND", "QUERY")
	for _, p := range file.Presets {
		fmt.Printf("%-20s %-8s %s\n", p.Name, p.Kind, describePreset(p))
	}
}

func describePreset(p presets.Preset) string {
	switch p.Kind {
	case presets.KindChurn, presets.KindRevenue:
		if p.Threshold != nil {
			return fmt.Sprintf("threshold %.2f", *p.Threshold)
		}
		return "backend default threshold"
	case presets.KindFilter:
		return fmt.Sprintf("%s %s %v", p.Metric, p.Op, *p.Value)
	default:
		return fmt.Sprintf("%q", p.Prompt)
	}
}
