package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/modseven/installer/internal/config"
	"github.com/modseven/installer/internal/installer"
	"github.com/modseven/installer/internal/manifest"
	"github.com/modseven/installer/internal/skeleton"
	"github.com/spf13/cobra"
)

var (
	doctorTemplate string
	checkManifest  string
)

func init() {
	doctorCmd.Flags().StringVar(&doctorTemplate, "template", "", "Template to check instead of the configured one")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a skeleton.yaml file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for creating applications",
	Long:  `Run diagnostic checks on the dependency installer and the template used by "new".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		if checkManifest != "" {
			return runManifestCheck(w, checkManifest)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		settings := config.Current()
		source := settings.Template
		if cmd.Flags().Changed("template") {
			source = doctorTemplate
		}

		failed := 0
		if !runInstallerCheck(w, cwd, installerSettings(settings)) {
			failed++
		}
		if !runTemplateCheck(w, source) {
			failed++
		}
		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func runInstallerCheck(w io.Writer, cwd string, s installer.Settings) bool {
	fmt.Fprintln(w, "Installer check:")

	c := installer.Resolve(cwd, s)
	if c.Vendored() {
		fmt.Fprintf(w, "  [ OK ] vendored installer %s\n", c.VendoredPath)
	}
	path, err := c.Available()
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %v\n", err)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", c.Program, path)
	fmt.Fprintf(w, "  [INFO] runs: %s\n", c.Line(installer.Flags{}))
	return true
}

func runTemplateCheck(w io.Writer, source string) bool {
	fmt.Fprintln(w, "Template check:")

	tpl, err := skeleton.Open(source)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	defer tpl.Close()

	m := tpl.Manifest
	if tpl.HasManifest {
		fmt.Fprintf(w, "  [ OK ] %s: %s manifest is valid\n", tpl.Source, manifest.FileName)
	} else {
		fmt.Fprintf(w, "  [INFO] %s: no %s, using the Modseven defaults\n", tpl.Source, manifest.FileName)
	}
	if err := m.CheckRequires(buildVersion); err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}

	ok := true
	for _, f := range m.PlaceholderFiles {
		if _, err := fs.Stat(tpl.FS, f); err != nil {
			fmt.Fprintf(w, "  [FAIL] placeholder file %s: %v\n", f, err)
			ok = false
		}
	}
	for _, d := range m.WritableDirs {
		info, err := fs.Stat(tpl.FS, d)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(w, "  [WARN] writable directory %s is not part of the template\n", d)
		}
	}
	if ok {
		fmt.Fprintf(w, "  [ OK ] %d placeholder file(s), %d writable dir(s), mode %s\n",
			len(m.PlaceholderFiles), len(m.WritableDirs), m.Mode())
	}
	return ok
}

func runManifestCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		m, err := manifest.Parse(path)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			return err
		}
		fmt.Fprintf(w, "  [ OK ] Valid manifest: %s (placeholder %s)\n", m.Name, m.Placeholder)
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
