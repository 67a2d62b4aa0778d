// Package viewmodels holds presentation state for the feed client,
// independent of any UI toolkit.
//
// Each view model keeps its state in an Observable: an immutable snapshot
// that adapters read with Get and watch with Subscribe. Subscribers are
// called synchronously, in commit order, after every committed mutation.
// Snapshots share their slices with later snapshots and must be treated
// as read-only.
//
// Fetches run as Tasks. Starting a fetch cancels the one already running
// on the same view model, and a superseded task never commits its result,
// so overlapping refreshes cannot apply out of order. Close cancels the
// in-flight task and waits for it. Completions are applied through a
// Dispatcher so an adapter can move them onto its UI goroutine.
package viewmodels
