package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rshade/topfive/internal/engine/batch"
	"github.com/rshade/topfive/internal/logging"
)

// Aggregator walks the paginated id listing and accumulates qualifying users.
//
// Pagination runs Fetching(token) -> ProcessingPage -> Fetching(next) until a
// page carries no continuation token. Detail calls are issued one at a time in
// page order. A failed detail call skips that id; a failed list call stops
// pagination and keeps everything gathered so far.
type Aggregator struct {
	lister    ListFetcher
	details   DetailFetcher
	matcher   PhoneMatcher
	processor *batch.Processor[int]
	maxPages  int
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithBatchSize sets how many ids are processed between progress updates.
// Sizes outside the batch package limits are ignored.
func WithBatchSize(size int) AggregatorOption {
	return func(a *Aggregator) {
		if p, err := batch.NewProcessor[int](size); err == nil {
			a.processor = p
		}
	}
}

// WithMaxPages caps the number of list pages fetched. Zero means no cap.
func WithMaxPages(maxPages int) AggregatorOption {
	return func(a *Aggregator) {
		if maxPages >= 0 {
			a.maxPages = maxPages
		}
	}
}

// NewAggregator creates an Aggregator.
func NewAggregator(lister ListFetcher, details DetailFetcher, matcher PhoneMatcher, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		lister:    lister,
		details:   details,
		matcher:   matcher,
		processor: batch.NewProcessorWithDefaults[int](),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.processor.WithProgressCallback(logProgress)
	return a
}

// Aggregate runs pagination to completion or to the first list failure.
// It never returns an error; a truncating failure is recorded in the result.
func (a *Aggregator) Aggregate(ctx context.Context) AggregateResult {
	log := logging.FromContext(ctx)
	result := AggregateResult{Users: []User{}}
	seen := make(map[string]bool)
	token := ""

	for {
		page, err := a.lister.FetchPage(ctx, token)
		if err != nil {
			log.Warn().
				Ctx(ctx).
				Str("component", "engine").
				Str("operation", "fetch_page").
				Int("pages_read", result.Pages).
				Err(err).
				Msg("list fetch failed, stopping pagination")
			result.Err = err
			break
		}
		result.Pages++

		log.Debug().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "fetch_page").
			Int("page", result.Pages).
			Int("ids", len(page.IDs)).
			Bool("has_next", page.HasNext()).
			Msg("page fetched")

		if err = a.processPage(ctx, page.IDs, &result); err != nil {
			log.Warn().
				Ctx(ctx).
				Str("component", "engine").
				Int("page", result.Pages).
				Err(err).
				Msg("page processing interrupted")
			result.Err = err
			break
		}

		if !page.HasNext() {
			break
		}
		if seen[page.NextToken] {
			result.Err = fmt.Errorf("%w: %q", ErrTokenCycle, page.NextToken)
			log.Warn().Ctx(ctx).Str("component", "engine").Err(result.Err).Msg("stopping pagination")
			break
		}
		if a.maxPages > 0 && result.Pages >= a.maxPages {
			result.Err = fmt.Errorf("%w: %d", ErrPageLimit, a.maxPages)
			log.Warn().Ctx(ctx).Str("component", "engine").Err(result.Err).Msg("stopping pagination")
			break
		}

		seen[page.NextToken] = true
		token = page.NextToken
	}

	log.Info().
		Ctx(ctx).
		Str("component", "engine").
		Int("pages", result.Pages).
		Int("fetched", result.Fetched).
		Int("skipped", result.Skipped).
		Int("rejected", result.Rejected).
		Int("qualified", len(result.Users)).
		Bool("partial", result.Partial()).
		Msg("aggregation complete")

	return result
}

// processPage fetches and filters every id of one page in order.
// Only context cancellation stops it early.
func (a *Aggregator) processPage(ctx context.Context, ids []int, result *AggregateResult) error {
	return a.processor.Process(ctx, ids, func(ctx context.Context, chunk []int, _ int) error {
		for _, id := range chunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			a.collect(ctx, id, result)
		}
		return nil
	})
}

// collect fetches one user and appends it to result when the phone number qualifies.
func (a *Aggregator) collect(ctx context.Context, id int, result *AggregateResult) {
	log := logging.FromContext(ctx)

	user, err := a.details.FetchDetail(ctx, id)
	if err != nil {
		result.Skipped++
		if errors.Is(err, ErrUserAbsent) {
			log.Debug().Ctx(ctx).Str("component", "engine").Int("user_id", id).Msg("user detail absent, skipping")
			return
		}

		kind := "unknown"
		if k, ok := FailureKindOf(err); ok {
			kind = k.String()
		}
		log.Warn().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "fetch_detail").
			Int("user_id", id).
			Str("failure", kind).
			Err(err).
			Msg("user detail fetch failed, skipping")
		return
	}

	result.Fetched++
	if !a.matcher.IsValid(user.PhoneNumber) {
		result.Rejected++
		return
	}
	result.Users = append(result.Users, user)
}

func logProgress(ctx context.Context, progress batch.ProgressSnapshot) {
	logging.FromContext(ctx).Debug().
		Ctx(ctx).
		Str("component", "engine").
		Int("processed", progress.ProcessedItems).
		Int("total", progress.TotalItems).
		Float64("percent", progress.PercentComplete).
		Dur("elapsed", progress.ElapsedTime).
		Msg("page progress")
}
