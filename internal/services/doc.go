// Package services defines shared context helpers consumed by the organizer
// and the CLI front ends.
//
// Each invocation of an organize, plan, or list operation is stamped with a
// run identifier and the resolved target directory so log lines and history
// rows from one run can be correlated after the fact.
package services
