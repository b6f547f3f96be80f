// Package organize classifies the files of a directory and moves them into
// category subfolders, or reports the plan without touching anything.
//
// Processing streams: every file produces exactly one operation record which
// is logged and handed to the history sink the moment it is known, and a
// failure on one file never stops the rest of the batch. Dry runs make no
// filesystem mutations at all. Real runs hold an advisory lock so two
// concurrent runs on the same machine do not interleave moves.
package organize
