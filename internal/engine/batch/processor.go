package batch

import (
	"context"
	"errors"
	"fmt"
)

// Chunk size limits.
const (
	// DefaultBatchSize is the default number of items per chunk.
	DefaultBatchSize = 100

	// MinBatchSize is the minimum allowed chunk size.
	MinBatchSize = 1

	// MaxBatchSize is the maximum allowed chunk size.
	MaxBatchSize = 1000
)

// Common batch processing errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 1000")
	ErrNilCallback      = errors.New("batch callback cannot be nil")
)

// BatchCallback processes one chunk. batchIndex is 0-based.
//
//nolint:revive // BatchCallback is the canonical name for this exported type.
type BatchCallback[T any] func(ctx context.Context, batch []T, batchIndex int) error

// ProgressCallback is invoked after each chunk completes.
type ProgressCallback func(ctx context.Context, progress ProgressSnapshot)

// Processor splits items into fixed-size chunks and processes them sequentially.
type Processor[T any] struct {
	batchSize  int
	onProgress ProgressCallback
}

// NewProcessor creates a processor with the given chunk size.
func NewProcessor[T any](batchSize int) (*Processor[T], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}

	return &Processor[T]{batchSize: batchSize}, nil
}

// NewProcessorWithDefaults creates a processor with DefaultBatchSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{batchSize: DefaultBatchSize}
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// BatchSize returns the configured chunk size.
func (p *Processor[T]) BatchSize() int {
	return p.batchSize
}

// Process runs callback over items chunk by chunk and stops on the first error.
// An empty items slice is a no-op.
func (p *Processor[T]) Process(ctx context.Context, items []T, callback BatchCallback[T]) error {
	if callback == nil {
		return ErrNilCallback
	}
	if len(items) == 0 {
		return nil
	}

	bounds := p.CalculateBatches(len(items))
	progress := NewProgress(len(items), len(bounds), p.batchSize)

	for batchIndex, b := range bounds {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch := items[b[0]:b[1]]
		if err := callback(ctx, batch, batchIndex); err != nil {
			return fmt.Errorf("batch %d failed: %w", batchIndex, err)
		}

		progress.AddProcessed(len(batch))
		if p.onProgress != nil {
			p.onProgress(ctx, progress.Snapshot())
		}
	}

	return nil
}

// CalculateBatches returns [start, end) index pairs covering totalItems.
func (p *Processor[T]) CalculateBatches(totalItems int) [][2]int {
	totalBatches := totalItems / p.batchSize
	if totalItems%p.batchSize > 0 {
		totalBatches++
	}

	batches := make([][2]int, totalBatches)
	for i := range totalBatches {
		start := i * p.batchSize
		end := min(start+p.batchSize, totalItems)
		batches[i] = [2]int{start, end}
	}

	return batches
}
