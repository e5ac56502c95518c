package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tolgee-merge-namespaces/internal"
)

// AppName is the command name
const AppName = "tolgee-merge-namespaces"

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Merge translations across namespaces in Tolgee i18n files",
		Long: `tolgee-merge-namespaces merges the per-namespace translation files of a
Tolgee i18n export into one root translation file per language, then removes
the consumed namespace files.

Existing root translations always win over namespace translations. When two
namespaces define the same key, the namespace that sorts later wins.

Layout:
  i18n/en.json           root translations (input and output)
  i18n/common/en.json    namespace translations (merged, then deleted)

Examples:
  tolgee-merge-namespaces                  # Merge ./i18n
  tolgee-merge-namespaces --dir locales    # Merge ./locales`,
		Args:         cobra.NoArgs,
		Version:      internal.Version,
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate(AppName + " v{{.Version}}\n")

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.tolgee-merge-namespaces.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Dir, "dir", "d", flags.Dir, "Specify the i18n directory")
	cmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Enable debug output")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text, json or logfmt")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("i18n.directory", cmd.Flags().Lookup("dir"))
	viper.BindPFlag("log.verbose", cmd.Flags().Lookup("verbose"))
	viper.BindPFlag("log.format", cmd.Flags().Lookup("log-format"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home and working directory with name ".tolgee-merge-namespaces"
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName("." + AppName)
	}

	// Environment variables, e.g. TOLGEE_MERGE_I18N_DIRECTORY
	viper.SetEnvPrefix("TOLGEE_MERGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetDir returns the configured i18n directory, falling back to DefaultDir
func GetDir() string {
	if dir := strings.TrimSpace(viper.GetString("i18n.directory")); dir != "" {
		return dir
	}
	return DefaultDir
}

// GetVerbose returns whether debug output is enabled
func GetVerbose() bool {
	return viper.GetBool("log.verbose")
}

// GetLogFormat returns the configured log format
func GetLogFormat() string {
	return viper.GetString("log.format")
}

// ResolveDir turns dir into an absolute path. Relative paths are resolved
// against the working directory.
func ResolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve i18n directory %q: %w", dir, err)
	}
	return abs, nil
}
