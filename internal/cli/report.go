package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/topfive/internal/directory"
	"github.com/rshade/topfive/internal/engine"
	"github.com/rshade/topfive/internal/phone"
)

// PartialExitCode is the process exit code used by --fail-on-partial.
const PartialExitCode = 2

// PartialResultError is returned after the report has been printed when
// --fail-on-partial is set and pagination stopped early.
type PartialResultError struct {
	ExitCode int
	Pages    int
	Err      error
}

func (e *PartialResultError) Error() string {
	return fmt.Sprintf("report is partial after %d page(s): %v", e.Pages, e.Err)
}

func (e *PartialResultError) Unwrap() error {
	return e.Err
}

// executeReport runs the pipeline once and renders the report to stdout.
func executeReport(cmd *cobra.Command, state *runState) error {
	ctx := cmd.Context()
	cfg := state.cfg

	reporter, err := NewReporter(cfg.Report.Format, isTerminal(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	client := directory.NewClient(cfg.Endpoints.List, cfg.Endpoints.Detail, cfg.HTTP.Timeout)
	client.UserAgent = userAgent(state.version)

	aggregator := engine.NewAggregator(client, client, phone.NewUSMatcher(),
		engine.WithBatchSize(cfg.Pipeline.BatchSize),
		engine.WithMaxPages(cfg.Pipeline.MaxPages),
	)

	logger.Debug().Ctx(ctx).
		Str("list_endpoint", cfg.Endpoints.List).
		Str("detail_endpoint", cfg.Endpoints.Detail).
		Int("limit", cfg.Report.Limit).
		Msg("running report")

	report := engine.NewPipeline(aggregator, cfg.Report.Limit).Run(ctx)

	if report.Partial() {
		logger.Warn().Ctx(ctx).
			Err(report.Err).
			Int("pages", report.Pages).
			Int("qualified", report.Qualified).
			Msg("pagination stopped early, report is partial")
	}

	if err = reporter.Render(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if report.Partial() && state.flags.failOnPartial {
		return &PartialResultError{ExitCode: PartialExitCode, Pages: report.Pages, Err: report.Err}
	}
	return nil
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var partialErr *PartialResultError
	if errors.As(err, &partialErr) {
		return partialErr.ExitCode
	}
	return 1
}

func userAgent(ver string) string {
	if ver == "" {
		return "topfive"
	}
	return "topfive/" + ver
}
