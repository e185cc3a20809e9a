// Package commands defines the bloomarc CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - verify    Run the integrity checks and print the report
//   - arc       Verify and run the seeded trajectory simulation
//   - render    Write the density field as a PNG
//   - compare   Render several envelopes side by side
//   - gen       Emit a valid sample envelope
//   - history   List recorded verification runs
//
// # Implementation
//
// The root command loads .env, resolves configuration from the environment,
// applies flag overrides and builds the dependency graph before any
// subcommand runs. Envelopes come from a file argument or, when piped, from
// stdin.
package commands
