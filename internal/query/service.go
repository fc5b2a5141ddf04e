// Package query orchestrates one earthquake query: validate the date range,
// fetch the feature collection, parse it, and render the report. The stages
// run strictly in order and every failure is terminal; there are no retries
// and never a partial report.
package query

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/quake-query-service/internal/adapter/usgs"
	"github.com/couchcryptid/quake-query-service/internal/domain"
	"github.com/couchcryptid/quake-query-service/internal/observability"
)

// Fetcher retrieves the raw feature collection body for a validated date
// range. This is the sole network boundary of a query.
type Fetcher interface {
	FetchEvents(ctx context.Context, start, end string) (string, error)
}

// Result is the outcome of one successful query.
type Result struct {
	ID         string        // per-query identifier, used in logs
	Report     string        // rendered report text
	EventCount int           // events in the report
	Skipped    int           // features excluded for a null magnitude
	StartedAt  time.Time     // when the query began, UTC
	Elapsed    time.Duration // wall time for the whole pipeline
}

// Service runs queries against a Fetcher. Each invocation owns its own data;
// nothing is shared between queries.
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewService creates a query Service.
func NewService(fetcher Fetcher, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil when the service can accept queries. The core is
// stateless, so readiness only verifies wiring.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.fetcher == nil {
		return errors.New("no fetcher configured")
	}
	return nil
}

// Run executes one query for the given date strings and returns the rendered
// report. On failure the returned error carries a single descriptive message;
// the zero Result is returned alongside it.
func (s *Service) Run(ctx context.Context, start, end string) (Result, error) {
	id := uuid.NewString()
	began := clock.Now().UTC()

	s.metrics.QueriesInFlight.Inc()
	defer s.metrics.QueriesInFlight.Dec()

	res, err := s.run(ctx, id, start, end)
	if err != nil {
		s.metrics.QueriesTotal.WithLabelValues(outcomeLabel(err)).Inc()
		s.logger.Warn("query failed",
			"query_id", id,
			"starttime", start,
			"endtime", end,
			"error", err,
		)
		return Result{}, err
	}

	res.ID = id
	res.StartedAt = began
	res.Elapsed = clock.Since(began)

	s.metrics.QueriesTotal.WithLabelValues(observability.OutcomeSuccess).Inc()
	s.metrics.QueryDuration.Observe(res.Elapsed.Seconds())
	s.metrics.EventsReturned.Observe(float64(res.EventCount))
	s.metrics.FeaturesSkipped.Add(float64(res.Skipped))

	s.logger.Info("query complete",
		"query_id", id,
		"starttime", start,
		"endtime", end,
		"events", res.EventCount,
		"skipped", res.Skipped,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

func (s *Service) run(ctx context.Context, id, start, end string) (Result, error) {
	dateRange, err := domain.ValidateDateRange(start, end)
	if err != nil {
		return Result{}, err
	}

	body, err := s.fetcher.FetchEvents(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		return Result{}, err
	}

	events, skipped, err := domain.ParseFeatureCollection([]byte(body))
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug("response parsed",
		"query_id", id,
		"events", len(events),
		"skipped", skipped,
	)

	report := domain.FormatReport(domain.SortedByRecency(events))

	return Result{
		Report:     report,
		EventCount: len(events),
		Skipped:    skipped,
	}, nil
}

// outcomeLabel maps a query error to its metrics outcome.
func outcomeLabel(err error) string {
	var statusErr *usgs.StatusError
	switch {
	case errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrDateRange):
		return observability.OutcomeInvalidInput
	case errors.As(err, &statusErr):
		return observability.OutcomeHTTPStatus
	case errors.Is(err, usgs.ErrTransport):
		return observability.OutcomeTransport
	case errors.Is(err, domain.ErrMalformedResponse):
		return observability.OutcomeParse
	default:
		return observability.OutcomeInternal
	}
}
