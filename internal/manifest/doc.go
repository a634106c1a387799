// Package manifest handles the skeleton.yaml file that sits at the root of a
// template. The manifest names the placeholder token, the files that carry it,
// the directories that must be writable, and an optional semver constraint on
// the installer version. Manifests are validated against an embedded JSON
// Schema before they are parsed.
package manifest
