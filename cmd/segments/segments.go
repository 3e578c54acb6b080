package segments

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/cmdutil"
	presets "github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/segments"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

var (
	presetName   string
	presetsFile  string
	segmentsJSON bool
)

// SegmentsCmd is the base command for building phone-number segments.
var SegmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Build phone-number segments from call insights",
	Long: `Build phone-number segments from analyzed calls.

Segments print one number per line so they pipe straight into
'calls initiate -'.

Subcommands:
  churn    - Members whose churn score crosses a threshold
  revenue  - Members whose revenue interest crosses a threshold
  filter   - Members matching a metric comparison
  prompt   - Members matching a free-form condition
  presets  - List named presets from the presets file

Examples:
  voicewise segments churn --threshold 0.7
  voicewise segments filter --metric gym_rating --op lte --value 4
  voicewise segments prompt "mentioned the sauna"
  voicewise segments --preset at-risk | voicewise calls initiate -`,
	Run: runSegments,
}

func init() {
	cmdutil.AddClientFlags(SegmentsCmd)
	SegmentsCmd.PersistentFlags().StringVar(&presetsFile, "presets-file", "", "Preset file (default ~/.config/voicewise/segments.yaml)")
	SegmentsCmd.Flags().StringVar(&presetName, "preset", "", "Run a named preset from the presets file")
	SegmentsCmd.Flags().BoolVar(&segmentsJSON, "json", false, "Output JSON")

	// Add subcommands
	SegmentsCmd.AddCommand(churnCmd)
	SegmentsCmd.AddCommand(revenueCmd)
	SegmentsCmd.AddCommand(filterCmd)
	SegmentsCmd.AddCommand(promptCmd)
	SegmentsCmd.AddCommand(presetsCmd)
}

func runSegments(cmd *cobra.Command, args []string) {
	if presetName == "" {
		_ = cmd.Help()
		return
	}

	file, err := loadPresets()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitValidationError)
		return
	}
	preset, ok := file.Get(presetName)
	if !ok {
		names := strings.Join(file.Names(), ", ")
		if names == "" {
			names = "none defined"
		}
		cmdutil.OutputError(fmt.Errorf("unknown preset %q (available: %s)", presetName, names), cmdutil.ExitValidationError)
		return
	}

	client, err := cmdutil.NewClient()
	if err != nil {
		cmdutil.OutputError(err, cmdutil.ExitConnectionError)
		return
	}

	segment, err := preset.Fetch(cmd.Context(), client)
	if err != nil {
		cmdutil.OutputError(err, cmdutil.MapAPIError(err))
		return
	}

	printSegment(segment, segmentsJSON)
}

func loadPresets() (*presets.File, error) {
	path := presetsFile
	if path == "" {
		path = cmdutil.GetStringConfig("segments.file", "")
	}
	if path == "" {
		path = presets.DefaultPath()
	}
	return presets.Load(path)
}

func printSegment(segment *types.Segment, asJSON bool) {
	if asJSON {
		if err := cmdutil.OutputJSON(segment); err != nil {
			cmdutil.OutputError(err, cmdutil.ExitGeneralError)
		}
		return
	}
	for _, number := range segment.Numbers() {
		fmt.Println(number)
	}
}

// effectiveLimit resolves the member cap: a changed flag wins, then the
// segments.limit config key, then the client default.
func effectiveLimit(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return cmdutil.GetIntConfig("segments.limit", api.DefaultSegmentLimit)
}
