package batch

import "time"

// percentMultiplier is used to convert a ratio to percentage (0-100).
const percentMultiplier = 100

// Progress tracks chunk processing for one Process call.
// It is owned by a single goroutine.
type Progress struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	BatchSize        int
	StartTime        time.Time
}

// NewProgress creates a new progress tracker.
func NewProgress(totalItems, totalBatches, batchSize int) *Progress {
	return &Progress{
		TotalItems:   totalItems,
		TotalBatches: totalBatches,
		BatchSize:    batchSize,
		StartTime:    time.Now(),
	}
}

// AddProcessed records one finished chunk of itemsProcessed items.
func (p *Progress) AddProcessed(itemsProcessed int) {
	p.ProcessedItems += itemsProcessed
	p.ProcessedBatches++
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	if p.TotalItems == 0 {
		return 0
	}
	return (float64(p.ProcessedItems) / float64(p.TotalItems)) * percentMultiplier
}

// IsComplete returns true if all items have been processed.
func (p *Progress) IsComplete() bool {
	return p.ProcessedItems >= p.TotalItems
}

// Snapshot returns a copy of the current progress state.
func (p *Progress) Snapshot() ProgressSnapshot {
	return ProgressSnapshot{
		TotalItems:       p.TotalItems,
		ProcessedItems:   p.ProcessedItems,
		TotalBatches:     p.TotalBatches,
		ProcessedBatches: p.ProcessedBatches,
		PercentComplete:  p.PercentComplete(),
		ElapsedTime:      time.Since(p.StartTime),
	}
}

// ProgressSnapshot is an immutable copy of progress state.
type ProgressSnapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	PercentComplete  float64
	ElapsedTime      time.Duration
}
