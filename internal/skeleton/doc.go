// Package skeleton opens the template tree a new application is created from.
// The stock Modseven skeleton is compiled into the binary; a directory or a
// compressed tar archive can be used instead.
package skeleton
