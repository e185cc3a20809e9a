// Package app wires application dependencies for the CLI.
//
// It resolves runtime configuration from the environment and exposes the
// verification-history store via the Wire struct for commands to use.
package app
