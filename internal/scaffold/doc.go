// Package scaffold creates a new Modseven application from a template tree.
//
// The Orchestrator runs the steps in order: the destination safety check, the
// tree copy, placeholder substitution in the files the template manifest
// names, and permission preparation of the writable directories. It finishes
// by running the dependency installer in the new application. Every step
// except the permission preparation aborts the run on failure; nothing that
// was already written is rolled back.
package scaffold
