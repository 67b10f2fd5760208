// Package remap implements the range-remapping algebra: entries that shift a
// contiguous source interval by a constant offset, stages that group entries
// under a name, and pipelines that apply stages in their declared order.
//
// Highlights:
// - Entry: one offset rule over [source, source+length)
// - Stage: validated at construction, then immutable; Apply maps a scalar,
//   ApplyRange splits an Interval into mapped and passthrough fragments
// - Pipeline: folds scalars or fans intervals out through every stage
//
// Apply and ApplyRange are total. Values not covered by any entry pass through
// unchanged. A Stage never changes after NewStage returns and may be shared by
// any number of goroutines.
package remap
