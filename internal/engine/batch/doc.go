// Package batch walks a slice in fixed-size chunks, one chunk at a time.
//
// The aggregator uses it to process the ids of a list page:
//   - Configurable chunk size (default 100 items)
//   - Progress reported to a callback after every chunk
//   - Context cancellation checked between chunks
//
// Chunks are processed strictly in order on the calling goroutine, so item
// order is preserved and callbacks never run concurrently.
package batch
