// Package cli defines the Cobra command tree for the modseven CLI. Each file
// in this package registers one top-level command (new, config, doctor,
// version) with the root command. Commands only parse flags and format
// output; the work happens in scaffold, installer and skeleton.
package cli
