// Package amendment searches the law registry for laws amended in a period.
package amendment

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"lawsearch/internal/amendment/metrics"
	"lawsearch/internal/egov"
	dErrors "lawsearch/pkg/domain-errors"
	"lawsearch/pkg/requestcontext"
)

const (
	// DefaultPageSize is large enough that one page normally suffices.
	DefaultPageSize = 10000
	// DefaultMaxPages bounds pagination against a misbehaving registry.
	DefaultMaxPages = 50
)

// Registry is the subset of the registry client the service consumes.
type Registry interface {
	ListLaws(ctx context.Context, p egov.ListLawsParams) (*egov.LawsResponse, error)
	ListRevisions(ctx context.Context, lawID string, p egov.RevisionParams) (*egov.LawRevisionsResponse, error)
	GetLawData(ctx context.Context, lawRevisionID string) (*egov.LawDataResponse, error)
}

// Service runs amendment searches and the per-law lookups behind them.
// Searches share no mutable state; each owns its accumulator.
type Service struct {
	registry Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
	pageSize int
	maxPages int
}

// Option customises a Service.
type Option func(*Service)

// WithPageSize sets the registry page size. Non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithMaxPages sets the pagination bound. Non-positive values are ignored.
func WithMaxPages(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxPages = n
		}
	}
}

// NewService creates a Service. m may be nil.
func NewService(registry Registry, logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		registry: registry,
		logger:   logger,
		metrics:  m,
		pageSize: DefaultPageSize,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the non-repealed laws matching c whose promulgation or
// enforcement date falls in [c.DateFrom, c.DateTo], in registry order.
// A failed page aborts the whole search with *UpstreamError.
func (s *Service) Search(ctx context.Context, c Criteria) ([]Record, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	requestID := requestcontext.RequestID(ctx)
	s.logger.InfoContext(ctx, "amendment search started",
		"request_id", requestID,
		"date_from", c.DateFrom,
		"date_to", c.DateTo,
		"categories", strings.Join(c.CategoryCodes, ","),
		"law_title", c.LawTitle,
	)

	accumulated, err := s.collect(ctx, c, start)
	if err != nil {
		s.recordFailure(egov.OpListLaws, err)
		s.logger.ErrorContext(ctx, "amendment search failed",
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	results := make([]Record, 0, len(accumulated))
	for _, r := range accumulated {
		if r.AmendedWithin(c.DateFrom, c.DateTo) {
			results = append(results, r)
		}
	}

	elapsed := time.Since(start)
	s.metrics.ObserveSearch(elapsed, len(accumulated), len(results))
	s.logger.InfoContext(ctx, "amendment search completed",
		"request_id", requestID,
		"accumulated", len(accumulated),
		"returned", len(results),
		"duration_ms", elapsed.Milliseconds(),
	)
	return results, nil
}

// collect pages through the registry listing until it reports no more
// results. Termination trusts the registry's total_count.
func (s *Service) collect(ctx context.Context, c Criteria, start time.Time) ([]Record, error) {
	var accumulated []Record
	offset := 0

	for page := 1; ; page++ {
		if page > s.maxPages {
			return nil, &UpstreamError{Op: egov.OpListLaws, Page: page, Elapsed: time.Since(start), Err: ErrPageLimitExceeded}
		}
		if err := ctx.Err(); err != nil {
			return nil, &UpstreamError{Op: egov.OpListLaws, Page: page, Elapsed: time.Since(start), Err: err}
		}

		pageStart := time.Now()
		resp, err := s.registry.ListLaws(ctx, egov.ListLawsParams{
			Limit:         s.pageSize,
			Offset:        offset,
			CategoryCodes: c.CategoryCodes,
			LawTitle:      c.LawTitle,
		})
		if err != nil {
			return nil, &UpstreamError{Op: egov.OpListLaws, Page: page, Elapsed: time.Since(start), Err: err}
		}
		s.metrics.IncrementPagesFetched()
		s.logger.DebugContext(ctx, "registry page fetched",
			"page", page,
			"offset", offset,
			"records", len(resp.Laws),
			"total_count", resp.TotalCount,
			"duration_ms", time.Since(pageStart).Milliseconds(),
		)

		if len(resp.Laws) == 0 {
			break
		}
		for _, law := range resp.Laws {
			accumulated = append(accumulated, RecordFromLaw(law))
		}

		if offset+s.pageSize >= resp.TotalCount {
			if len(accumulated) != resp.TotalCount {
				s.logger.WarnContext(ctx, "accumulated count differs from registry total_count",
					"accumulated", len(accumulated),
					"total_count", resp.TotalCount,
					"pages", page,
				)
			}
			break
		}
		offset += s.pageSize
	}

	return accumulated, nil
}

// Revisions returns the revision history of lawID.
func (s *Service) Revisions(ctx context.Context, lawID string, f RevisionFilter) (*egov.LawRevisionsResponse, error) {
	if strings.TrimSpace(lawID) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "law_id is required")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := s.registry.ListRevisions(ctx, lawID, egov.RevisionParams{
		PromulgateDateFrom: f.PromulgateFrom,
		PromulgateDateTo:   f.PromulgateTo,
	})
	if err != nil {
		s.recordFailure(egov.OpListRevisions, err)
		return nil, &UpstreamError{Op: egov.OpListRevisions, Elapsed: time.Since(start), Err: err}
	}

	s.logger.InfoContext(ctx, "revision history fetched",
		"request_id", requestcontext.RequestID(ctx),
		"law_id", lawID,
		"revisions", len(resp.Revisions),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

// LawText returns the full text of one revision.
func (s *Service) LawText(ctx context.Context, lawRevisionID string) (*egov.LawDataResponse, error) {
	if strings.TrimSpace(lawRevisionID) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "law_revision_id is required")
	}

	start := time.Now()
	resp, err := s.registry.GetLawData(ctx, lawRevisionID)
	if err != nil {
		s.recordFailure(egov.OpGetLawText, err)
		return nil, &UpstreamError{Op: egov.OpGetLawText, Elapsed: time.Since(start), Err: err}
	}

	s.logger.InfoContext(ctx, "law text fetched",
		"request_id", requestcontext.RequestID(ctx),
		"law_revision_id", lawRevisionID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

// recordFailure counts a registry failure. A caller that went away is not
// one.
func (s *Service) recordFailure(op string, err error) {
	if errors.Is(err, context.Canceled) || egov.GetCategory(err) == egov.ErrorCanceled {
		return
	}
	s.metrics.IncrementUpstreamFailure(op)
}
