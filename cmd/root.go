package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thesixpathguy/VoiceWise-sub001/cmd/calls"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/dashboard"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/health"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/segments"
	"github.com/thesixpathguy/VoiceWise-sub001/cmd/tui"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/logger"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/paging"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/signals"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "voicewise",
	Short:   "voicewise talks to your members",
	Long:    fmt.Sprintf("voicewise %s - Operator console for AI voice feedback calls\n\nList calls, inspect insights, build member segments, and kick off new feedback call batches.", version.GetVersion()),
	Version: version.GetFullVersion(),
}

func Execute() {
	// Ctrl-C cancels the command context so polling commands such as
	// `calls analyze --wait` stop cleanly instead of being killed mid-write.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cleanup := signals.SetupHandler(ctx, cancel)
	defer cleanup()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func addSubCommandPalattes() {
	rootCmd.AddCommand(calls.CallsCmd)
	rootCmd.AddCommand(segments.SegmentsCmd)
	rootCmd.AddCommand(dashboard.DashboardCmd)
	rootCmd.AddCommand(health.HealthCmd)
	rootCmd.AddCommand(tui.TuiCmd)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Initialize structured logging
	logger.Initialize()

	addSubCommandPalattes()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/voicewise/config.yaml)")
}

func initConfig() {
	// A .env in the working directory supplies backend settings during
	// development, same convention as the backend itself.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Priority order for config files:
		// 1. ~/.config/voicewise/config.yaml (preferred, with directory for other files)
		// 2. ~/.config/voicewise.yaml (XDG standard)
		// 3. ~/.voicewise.yaml (legacy)
		viper.AddConfigPath(home + "/.config/voicewise")
		viper.AddConfigPath(home + "/.config")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")

		// Try "config" name first (in ~/.config/voicewise/config.yaml)
		viper.SetConfigName("config")
		if err := viper.ReadInConfig(); err != nil {
			// Fall back to "voicewise" name
			viper.SetConfigName("voicewise")
		}
	}

	// VOICEWISE_API_URL overrides api.url, and so on.
	viper.SetEnvPrefix("voicewise")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("api.url", api.DefaultBaseURL)
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("gym.id", api.DefaultGymID)
	viper.SetDefault("tui.page_size", paging.DefaultPageSize)
	viper.SetDefault("tui.refresh_interval", "2s")
	viper.SetDefault("tui.theme", "default")
	viper.SetDefault("segments.limit", api.DefaultSegmentLimit)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
