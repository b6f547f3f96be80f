// Package categories owns the extension-to-category table: loading it from
// the persisted JSON document, synthesizing the built-in defaults, and
// classifying filenames against it.
//
// Order matters. The JSON document is decoded with an order-preserving
// decoder because lookup precedence equals stored order: when an extension
// appears under two categories the first stored category wins. The default
// table intentionally keeps the historical overlaps (.csv under both Data and
// Spreadsheets, for example) rather than deduplicating them.
//
// Load never fails: every failure path degrades to returning the built-in
// default table so callers always have something to classify against.
package categories
