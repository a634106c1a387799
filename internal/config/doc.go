// Package config manages user-level settings stored at ~/.modseven/config.yaml.
// Every key can also be supplied through a MODSEVEN_* environment variable; the
// new command reads the template location and the installer command from here.
package config
