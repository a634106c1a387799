package manifest

// FileName is the manifest file looked up at the root of a template. It is
// never copied into a new application.
const FileName = "skeleton.yaml"

// DefaultPlaceholder is the token replaced with the application name.
const DefaultPlaceholder = "<AppName>"

// DefaultWritableMode is applied recursively to the writable directories when
// the manifest does not set writable_mode. It is 0755, the mode the PHP
// modseven installer applied, so group and others keep read and execute.
// Set writable_mode to 0700 for owner-only access.
const DefaultWritableMode = "0755"

// Manifest describes which files of a template carry the placeholder token
// and which directories must be writable once the tree is copied. Paths are
// slash-separated and relative to the application root.
type Manifest struct {
	Name             string   `yaml:"name" json:"name"`
	Version          string   `yaml:"version,omitempty" json:"version,omitempty"`
	Description      string   `yaml:"description,omitempty" json:"description,omitempty"`
	Placeholder      string   `yaml:"placeholder" json:"placeholder"`
	PlaceholderFiles []string `yaml:"placeholder_files,omitempty" json:"placeholder_files,omitempty"`
	WritableDirs     []string `yaml:"writable_dirs,omitempty" json:"writable_dirs,omitempty"`
	WritableMode     string   `yaml:"writable_mode,omitempty" json:"writable_mode,omitempty"`
	Requires         string   `yaml:"requires,omitempty" json:"requires,omitempty"`
}

// Default returns the manifest of the stock Modseven skeleton. Templates
// without a skeleton.yaml are treated as if they carried this one.
func Default() *Manifest {
	return &Manifest{
		Name:        "modseven-skeleton",
		Description: "Modseven application skeleton",
		Placeholder: DefaultPlaceholder,
		PlaceholderFiles: []string{
			"composer.json",
			"application/classes/Controller/Welcome.php",
			"application/routes.php",
		},
		WritableDirs: []string{
			"application/cache",
			"application/logs",
		},
		WritableMode: DefaultWritableMode,
	}
}
