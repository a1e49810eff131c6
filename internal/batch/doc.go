// Package batch runs the per-image analyses of package imaging over a folder
// of images and turns the results into normalized scores.
//
// A batch goes through up to two parallel phases over the same file list:
//
//  1. EstimatePhase (optional) runs imaging.EstimateHueRange on every file and
//     averages the per-image extrema into a suggested HueRange.
//  2. CountPhase runs imaging.CountInRange on every file using one circle
//     centered on the first image's frame.
//
// Normalize then maps the counts to 0-100 scores and WriteReport writes one
// line per image.
//
// # Ordering
//
// Discover returns files sorted by name, and every phase returns results in
// that same order regardless of which worker finishes first. "Image N" in a
// report is always the Nth discovered file.
//
// # Concurrency
//
// Each phase runs its tasks on a bounded pool of goroutines (RunPool). Tasks
// share nothing: each opens its own file and returns an immutable result.
// All reduction happens on the calling goroutine after the pool drains. The
// first failing task cancels the rest of the phase and its error is
// returned; a failed phase produces no partial results.
package batch
