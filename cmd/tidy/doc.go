// Package main hosts the tidy CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into organize,
// plan, and list runs, category table inspection, operation history queries,
// and configuration scaffolding. It centralizes configuration resolution and
// per-run log setup so subcommands can focus on user experience instead of
// wiring. Bare `tidy` drops into the interactive menu shell.
package main
