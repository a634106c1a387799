package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/modseven/installer/internal/branding"
	"github.com/modseven/installer/internal/config"
	"github.com/modseven/installer/internal/console"
	"github.com/modseven/installer/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags shared by every command.
var (
	noANSI  bool
	quiet   bool
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&noANSI, "no-ansi", false, "Disable ANSI output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not output any message")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace every scaffold step")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates new Modseven applications from the bundled skeleton
or a template of your own, then installs their dependencies with Composer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetQuiet(quiet)
		logging.SetVerbose(verbose)
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the running command.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		console.New(os.Stdout, os.Stderr, noANSI, quiet).Error(err)
	}
	return err
}
