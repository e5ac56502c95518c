package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/tolgee-merge-namespaces/internal"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/cli"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/discovery"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/processor"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/report"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(afero.NewOsFs(), cmd.ErrOrStderr())
	}

	// Execute command; fang overrides rootCmd.Version, so pass it explicitly
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(internal.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// runCommand merges the configured i18n directory. Only fatal root errors are
// returned; everything else is logged and the run still succeeds.
func runCommand(fsys afero.Fs, stderr io.Writer) error {
	logger, err := report.NewLogger(stderr, report.Options{
		Verbose: cli.GetVerbose(),
		Format:  cli.GetLogFormat(),
	})
	if err != nil {
		return err
	}
	reporter := report.NewLogReporter(logger)

	root, err := cli.ResolveDir(cli.GetDir())
	if err != nil {
		return err
	}

	proc := processor.NewProcessor(fsys, root, reporter)
	if _, err := proc.Run(); err != nil {
		reporter.Error("Cannot merge translations", err)
		if errors.Is(err, discovery.ErrRootNotFound) {
			reporter.Info("Use --dir option to specify a different i18n directory.")
		}
		return err
	}

	return nil
}
