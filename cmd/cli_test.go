package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		contains []string
	}{
		{
			name:     "No arguments shows help",
			args:     []string{},
			contains: []string{"Operator console for AI voice feedback calls"},
		},
		{
			name:     "Help flag",
			args:     []string{"--help"},
			contains: []string{"Operator console for AI voice feedback calls"},
		},
		{
			name:    "Unknown subcommand fails",
			args:    []string{"does-not-exist"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A fresh command per test keeps Execute from touching the
			// package-level root and its OnInitialize hooks.
			cmd := &cobra.Command{
				Use:   "voicewise",
				Short: "voicewise talks to your members",
				Long:  "Operator console for AI voice feedback calls",
			}
			cmd.AddCommand(&cobra.Command{Use: "health", Run: func(*cobra.Command, []string) {}})
			cmd.PersistentFlags().String("config", "", "config file")

			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetErr(&buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestCommandStructure(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "voicewise", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "voicewise talks to your members")

	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, strings.Fields(cmd.Use)[0])
	}

	for _, want := range []string{"calls", "segments", "dashboard", "health", "tui"} {
		assert.Contains(t, names, want, "root should expose the %s palette", want)
	}
}

func TestCallsSubcommands(t *testing.T) {
	var callsCmd *cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "calls" {
			callsCmd = cmd
			break
		}
	}
	require.NotNil(t, callsCmd)

	names := make([]string, 0)
	for _, cmd := range callsCmd.Commands() {
		names = append(names, strings.Fields(cmd.Use)[0])
	}

	for _, want := range []string{"list", "show", "search", "initiate", "analyze", "delete", "export"} {
		assert.Contains(t, names, want)
	}
}

func TestConfigFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "string", flag.Value.Type())
}

func TestEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	t.Setenv("VOICEWISE_API_URL", "http://backend.test:8000")
	t.Setenv("VOICEWISE_GYM_ID", "gym_042")

	// Mirror the env wiring initConfig installs
	viper.SetEnvPrefix("voicewise")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	assert.Equal(t, "http://backend.test:8000", viper.GetString("api.url"))
	assert.Equal(t, "gym_042", viper.GetString("gym.id"))
}

func TestConfigFileFormats(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		content     string
		expectValid bool
	}{
		{
			name:        "YAML config",
			fileName:    "config.yaml",
			content:     "api:\n  url: http://backend.test:8000\ngym:\n  id: gym_042\n",
			expectValid: true,
		},
		{
			name:        "JSON config",
			fileName:    "config.json",
			content:     `{"api": {"url": "http://backend.test:8000"}}`,
			expectValid: true,
		},
		{
			name:        "Invalid YAML",
			fileName:    "config.yaml",
			content:     "api: [unclosed",
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()

			configFile := filepath.Join(t.TempDir(), tt.fileName)
			require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0644))

			viper.SetConfigFile(configFile)
			err := viper.ReadInConfig()

			if tt.expectValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// TestConfigPrecedence verifies an explicit --config file beats the
// default search path locations.
func TestConfigPrecedence(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	tmpDir := t.TempDir()

	explicit := filepath.Join(tmpDir, "explicit.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("gym:\n  id: explicit_gym\n"), 0644))

	fallback := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(fallback, []byte("gym:\n  id: fallback_gym\n"), 0644))
	viper.AddConfigPath(tmpDir)
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	viper.SetConfigFile(explicit)
	require.NoError(t, viper.ReadInConfig())

	assert.Equal(t, "explicit_gym", viper.GetString("gym.id"))
}
