package engine

import "context"

// Pipeline runs aggregation and selection for one report.
type Pipeline struct {
	aggregator *Aggregator
	limit      int
}

// NewPipeline creates a pipeline that reports the limit youngest users.
// A limit below 1 falls back to TopCount.
func NewPipeline(aggregator *Aggregator, limit int) *Pipeline {
	if limit < 1 {
		limit = TopCount
	}
	return &Pipeline{aggregator: aggregator, limit: limit}
}

// Run aggregates all pages and selects the report users.
// It always produces a report; pagination failures are carried in Report.Err.
func (p *Pipeline) Run(ctx context.Context) Report {
	result := p.aggregator.Aggregate(ctx)
	return Report{
		Users:     SelectTop(result.Users, p.limit),
		Qualified: len(result.Users),
		Pages:     result.Pages,
		Err:       result.Err,
	}
}
