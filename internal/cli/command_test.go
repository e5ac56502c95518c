package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tolgee-merge-namespaces/internal"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != AppName {
		t.Errorf("Expected Use to be %q, got %s", AppName, cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Merge translations across namespaces") {
		t.Errorf("Unexpected Short description: %s", cmd.Short)
	}

	if cmd.Version != internal.Version {
		t.Errorf("Expected Version %s, got %s", internal.Version, cmd.Version)
	}

	flagTests := []struct {
		name      string
		shorthand string
	}{
		{"dir", "d"},
		{"verbose", ""},
		{"log-format", ""},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("Expected flag %s to exist", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("Flag %s shorthand = %q, want %q", tt.name, flag.Shorthand, tt.shorthand)
			}
		})
	}

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Expected persistent flag config to exist")
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	dirFlag := cmd.Flags().Lookup("dir")
	if dirFlag == nil {
		t.Fatal("dir flag not found")
	}
	if dirFlag.DefValue != "i18n" {
		t.Errorf("Expected default dir to be i18n, got %s", dirFlag.DefValue)
	}

	formatFlag := cmd.Flags().Lookup("log-format")
	if formatFlag == nil {
		t.Fatal("log-format flag not found")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("Expected default log format to be text, got %s", formatFlag.DefValue)
	}
}

// executeRoot runs the root command with args and fails the test if RunE is reached
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := CreateRootCommand(NewFlags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		t.Error("RunE must not run")
		return nil
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	for _, arg := range []string{"--version", "-v"} {
		t.Run(arg, func(t *testing.T) {
			out, err := executeRoot(t, arg)
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			want := AppName + " v" + internal.Version + "\n"
			if out != want {
				t.Errorf("Version output = %q, want %q", out, want)
			}
		})
	}
}

func TestRootCommand_Help(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		t.Run(arg, func(t *testing.T) {
			out, err := executeRoot(t, arg)
			if err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if !strings.Contains(out, "--dir") {
				t.Errorf("Expected help to document --dir, got:\n%s", out)
			}
		})
	}
}

func TestRootCommand_RejectsPositionalArgs(t *testing.T) {
	cmd := CreateRootCommand(NewFlags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return nil }
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error for positional argument")
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantDir   string
	}{
		{
			name: "with yaml config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "config.yaml")
				content := `i18n:
  directory: locales
log:
  verbose: true`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			wantDir: "locales",
		},
		{
			name: "with toml config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "config.toml")
				content := "[i18n]\ndirectory = \"translations\"\n"
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			wantDir: "translations",
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				t.Setenv("HOME", t.TempDir())
				return ""
			},
			wantDir: DefaultDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			InitConfig(tt.setupFunc(t))

			if got := GetDir(); got != tt.wantDir {
				t.Errorf("GetDir() = %q, want %q", got, tt.wantDir)
			}
		})
	}
}

func TestInitConfig_Environment(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TOLGEE_MERGE_I18N_DIRECTORY", "from-env")
	t.Setenv("TOLGEE_MERGE_LOG_VERBOSE", "true")

	InitConfig("")

	if got := GetDir(); got != "from-env" {
		t.Errorf("GetDir() = %q, want from-env", got)
	}
	if !GetVerbose() {
		t.Error("Expected verbose from environment")
	}
}

func TestBindFlagsToViper(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	cmd.Flags().Set("dir", "/srv/app/i18n")
	cmd.Flags().Set("verbose", "true")
	cmd.Flags().Set("log-format", "json")

	if got := GetDir(); got != "/srv/app/i18n" {
		t.Errorf("Expected i18n.directory to be /srv/app/i18n, got %s", got)
	}
	if !GetVerbose() {
		t.Error("Expected log.verbose to be true")
	}
	if got := GetLogFormat(); got != "json" {
		t.Errorf("Expected log.format to be json, got %s", got)
	}
}

func TestResolveDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}

	got, err := ResolveDir("i18n")
	if err != nil {
		t.Fatalf("ResolveDir() unexpected error: %v", err)
	}
	if want := filepath.Join(wd, "i18n"); got != want {
		t.Errorf("ResolveDir(i18n) = %s, want %s", got, want)
	}

	abs := filepath.Join(t.TempDir(), "locales")
	got, err = ResolveDir(abs)
	if err != nil {
		t.Fatalf("ResolveDir() unexpected error: %v", err)
	}
	if got != abs {
		t.Errorf("ResolveDir(%s) = %s, want unchanged", abs, got)
	}
}
