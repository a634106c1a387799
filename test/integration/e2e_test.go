//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modseven/installer/internal/console"
	"github.com/modseven/installer/internal/installer"
	"github.com/modseven/installer/internal/scaffold"
	"github.com/modseven/installer/internal/skeleton"
)

// TestFullFlowEmbeddedSkeleton runs the whole pipeline against the bundled
// skeleton with a real shell and a fake composer.
func TestFullFlowEmbeddedSkeleton(t *testing.T) {
	env := setupTestEnv(t)
	composer := fakeInstaller(t, env, 0)

	tpl, err := skeleton.Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tpl.Close()

	var out, errOut bytes.Buffer
	o := &scaffold.Orchestrator{
		Installer: installer.Settings{Command: composer, Vendored: "composer.phar", Args: "install --no-scripts"},
		Runner:    installer.NewShellRunner(&out, &errOut),
		Console:   console.New(&out, &errOut, true, false),
	}

	res, err := o.Run(context.Background(), scaffold.Request{
		Name:     "blog",
		Cwd:      env.WorkDir,
		Flags:    installer.Flags{NoANSI: true},
		Template: tpl,
	})
	if err != nil {
		t.Fatalf("Run: %v\nstderr: %s", err, errOut.String())
	}

	app := filepath.Join(env.WorkDir, "blog")
	assertFileExists(t, filepath.Join(app, "composer.json"))
	assertFileExists(t, filepath.Join(app, "public", "index.php"))
	assertDirExists(t, filepath.Join(app, "application", "cache"))
	assertDirExists(t, filepath.Join(app, "application", "logs"))

	if !strings.Contains(readFile(t, filepath.Join(app, "composer.json")), `"blog/app"`) {
		t.Error("composer.json was not customized")
	}
	if !strings.Contains(readFile(t, filepath.Join(app, "application", "classes", "Controller", "Welcome.php")), `blog\Controller`) {
		t.Error("Welcome.php namespace was not customized")
	}

	// The fake installer ran inside the new application.
	if got := strings.TrimSpace(readFile(t, filepath.Join(app, "installed.txt"))); got != "install --no-scripts --no-ansi" {
		t.Errorf("installer args = %q", got)
	}
	if res.InstallCommand == "" {
		t.Error("InstallCommand not recorded")
	}
}

// TestFullFlowArchiveTemplate scaffolds from a .tar.zst template with its own
// manifest and checks the installer status propagates.
func TestFullFlowArchiveTemplate(t *testing.T) {
	env := setupTestEnv(t)
	composer := fakeInstaller(t, env, 7)

	archive := writeTemplateArchive(t, t.TempDir(), map[string]string{
		"tiny/skeleton.yaml": "name: tiny\nplaceholder: \"{{app}}\"\nplaceholder_files: [composer.json]\nwritable_dirs: [var]\n",
		"tiny/composer.json": `{"name":"{{app}}/site"}`,
		"tiny/var/.gitkeep":  "",
	})

	tpl, err := skeleton.Open(archive)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer tpl.Close()

	o := &scaffold.Orchestrator{
		Installer: installer.Settings{Command: composer, Args: "install"},
		Runner:    installer.NewShellRunner(&bytes.Buffer{}, &bytes.Buffer{}),
	}

	_, err = o.Run(context.Background(), scaffold.Request{
		Name:     "site",
		Cwd:      env.WorkDir,
		Template: tpl,
	})

	var ie *scaffold.InstallError
	if !errors.As(err, &ie) || ie.ExitCode != 7 {
		t.Fatalf("error = %v, want *InstallError with exit code 7", err)
	}

	app := filepath.Join(env.WorkDir, "site")
	if got := readFile(t, filepath.Join(app, "composer.json")); got != `{"name":"site/site"}` {
		t.Errorf("composer.json = %q", got)
	}
	assertDirExists(t, filepath.Join(app, "var"))
}
