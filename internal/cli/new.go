package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/modseven/installer/internal/config"
	"github.com/modseven/installer/internal/console"
	"github.com/modseven/installer/internal/installer"
	"github.com/modseven/installer/internal/logging"
	"github.com/modseven/installer/internal/scaffold"
	"github.com/modseven/installer/internal/skeleton"
	"github.com/spf13/cobra"
)

var (
	newForce     bool
	newTemplate  string
	newNoInstall bool
)

func init() {
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Forces install even if the directory already exists")
	newCmd.Flags().StringVar(&newTemplate, "template", "", "Template directory or .tar.gz/.tar.zst archive (default: bundled skeleton)")
	newCmd.Flags().BoolVar(&newNoInstall, "no-install", false, "Skip the dependency installation")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new Modseven application",
	Long: `Create a new Modseven application in ./<name>, or in the current directory
when <name> is ".".

Examples:
  modseven new blog
  modseven new . --force
  modseven new shop --template ./my-skeleton.tar.gz --no-install`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		settings := config.Current()
		opts := newOptions{
			Name:      args[0],
			Cwd:       cwd,
			Force:     newForce,
			NoInstall: newNoInstall,
			NoANSI:    noANSI,
			Quiet:     quiet,
			Template:  settings.Template,
			Installer: installerSettings(settings),
		}
		if cmd.Flags().Changed("template") {
			opts.Template = newTemplate
		}

		runner := installer.NewShellRunner(cmd.OutOrStdout(), cmd.ErrOrStderr())
		return runNew(cmd.Context(), opts, runner, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

type newOptions struct {
	Name      string
	Cwd       string
	Force     bool
	NoInstall bool
	NoANSI    bool
	Quiet     bool
	Template  string
	Installer installer.Settings
}

func runNew(ctx context.Context, opts newOptions, runner installer.Runner, out, errOut io.Writer) error {
	tpl, err := skeleton.Open(opts.Template)
	if err != nil {
		return err
	}
	defer func() {
		if err := tpl.Close(); err != nil {
			logging.Warn("removing extracted template", "error", err)
		}
	}()

	o := &scaffold.Orchestrator{
		Installer: opts.Installer,
		Runner:    runner,
		Console:   console.New(out, errOut, opts.NoANSI, opts.Quiet),
	}

	res, err := o.Run(ctx, scaffold.Request{
		Name:      opts.Name,
		Cwd:       opts.Cwd,
		Force:     opts.Force,
		NoInstall: opts.NoInstall,
		Flags:     installer.Flags{NoANSI: opts.NoANSI, Quiet: opts.Quiet},
		Template:  tpl,
		Version:   buildVersion,
	})
	if err != nil {
		return err
	}
	logging.Debug("application created", "destination", res.Destination, "warnings", len(res.Warnings))
	return nil
}

func installerSettings(s config.Settings) installer.Settings {
	return installer.Settings{
		Command:  s.InstallerCommand,
		Vendored: s.InstallerVendored,
		PHP:      s.InstallerPHP,
		Args:     s.InstallerArgs,
	}
}
