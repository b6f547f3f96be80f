// Package config loads, validates, and normalizes the tidy configuration
// file.
//
// The configuration is TOML and lives at ~/.config/tidy/config.toml by
// default, with a project-local tidy.toml fallback. Missing files are not an
// error: Load substitutes repository defaults so the tool works out of the
// box. Path fields are expanded (~ and relative segments) before use.
//
// The category table itself is a separate JSON document handled by the
// categories package; this package only records where to find it.
package config
