package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/modseven/installer/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyTemplate          = "template"
	KeyInstallerCommand  = "installer.command"
	KeyInstallerVendored = "installer.vendored"
	KeyInstallerPHP      = "installer.php"
	KeyInstallerArgs     = "installer.args"
)

// Settings is the resolved view of every key the new command consumes.
type Settings struct {
	Template          string
	InstallerCommand  string
	InstallerVendored string
	InstallerPHP      string
	InstallerArgs     string
}

// Dir returns the path to the config directory (~/.modseven/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.modseven/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyTemplate, "")
	viper.SetDefault(KeyInstallerCommand, "composer")
	viper.SetDefault(KeyInstallerVendored, "composer.phar")
	viper.SetDefault(KeyInstallerPHP, "php")
	viper.SetDefault(KeyInstallerArgs, "install --no-scripts")
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to env vars with "_", e.g. installer.command → MODSEVEN_INSTALLER_COMMAND.
func Load() {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every known key with its current value, sorted by key.
func All() [][2]string {
	keys := viper.AllKeys()
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, viper.GetString(k)})
	}
	return out
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		Template:          viper.GetString(KeyTemplate),
		InstallerCommand:  viper.GetString(KeyInstallerCommand),
		InstallerVendored: viper.GetString(KeyInstallerVendored),
		InstallerPHP:      viper.GetString(KeyInstallerPHP),
		InstallerArgs:     viper.GetString(KeyInstallerArgs),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
