package amendment

//go:generate mockgen -source=service.go -destination=mocks/registry_mocks.go -package=mocks Registry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"lawsearch/internal/amendment/metrics"
	"lawsearch/internal/amendment/mocks"
	"lawsearch/internal/egov"
	dErrors "lawsearch/pkg/domain-errors"
)

type SearchSuite struct {
	suite.Suite
	ctx      context.Context
	registry *mocks.MockRegistry
	metrics  *metrics.Metrics
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func (s *SearchSuite) SetupTest() {
	s.ctx = context.Background()
	ctrl := gomock.NewController(s.T())
	s.registry = mocks.NewMockRegistry(ctrl)
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
}

func (s *SearchSuite) service(opts ...Option) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(s.registry, logger, s.metrics, opts...)
}

func law(id, promulgated, enforced string) egov.Law {
	return egov.Law{
		LawInfo: egov.LawInfo{LawID: id, LawNum: "num-" + id},
		RevisionInfo: egov.RevisionInfo{
			LawRevisionID:            id + "_rev",
			LawTitle:                 "title " + id,
			LawType:                  "Act",
			AmendmentPromulgateDate:  promulgated,
			AmendmentEnforcementDate: enforced,
			AmendmentType:            "3",
			Mission:                  "Partial",
			Updated:                  "2025-10-01T00:00:00+09:00",
		},
	}
}

func page(total int, laws ...egov.Law) *egov.LawsResponse {
	return &egov.LawsResponse{Laws: laws, TotalCount: total}
}

func ids(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.LawID)
	}
	return out
}

var april = Criteria{DateFrom: "2025-04-01", DateTo: "2025-09-30"}

func (s *SearchSuite) TestEmptyRegistryYieldsEmptyResult() {
	s.registry.EXPECT().ListLaws(gomock.Any(), gomock.Any()).Return(page(0), nil).Times(1)

	got, err := s.service().Search(s.ctx, april)

	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *SearchSuite) TestPassesFiltersUpstream() {
	c := Criteria{
		DateFrom:      "2025-04-01",
		DateTo:        "2025-09-30",
		CategoryCodes: []string{"014", "020"},
		LawTitle:      "労働",
	}
	s.registry.EXPECT().ListLaws(gomock.Any(), egov.ListLawsParams{
		Limit:         DefaultPageSize,
		Offset:        0,
		CategoryCodes: []string{"014", "020"},
		LawTitle:      "労働",
	}).Return(page(0), nil)

	_, err := s.service().Search(s.ctx, c)
	s.Require().NoError(err)
}

func (s *SearchSuite) TestPaginatesUntilTotalCount() {
	// total_count = 2*limit + 1 spread over three pages
	gomock.InOrder(
		s.registry.EXPECT().ListLaws(gomock.Any(), egov.ListLawsParams{Limit: 2, Offset: 0}).
			Return(page(5, law("a", "2025-04-01", ""), law("b", "2024-01-01", "2024-02-01")), nil),
		s.registry.EXPECT().ListLaws(gomock.Any(), egov.ListLawsParams{Limit: 2, Offset: 2}).
			Return(page(5, law("c", "", "2025-09-30"), law("d", "2025-05-05", "2026-01-01")), nil),
		s.registry.EXPECT().ListLaws(gomock.Any(), egov.ListLawsParams{Limit: 2, Offset: 4}).
			Return(page(5, law("e", "", "")), nil),
	)

	got, err := s.service(WithPageSize(2)).Search(s.ctx, april)

	s.Require().NoError(err)
	s.Equal([]string{"a", "c", "d"}, ids(got))
	s.Equal(3.0, testutil.ToFloat64(s.metrics.PagesFetched))
}

func (s *SearchSuite) TestStopsOnEmptyPage() {
	gomock.InOrder(
		s.registry.EXPECT().ListLaws(gomock.Any(), egov.ListLawsParams{Limit: 1, Offset: 0}).
			Return(page(10, law("a", "2025-06-01", "")), nil),
		s.registry.EXPECT().ListLaws(gomock.Any(), egov.ListLawsParams{Limit: 1, Offset: 1}).
			Return(page(10), nil),
	)

	got, err := s.service(WithPageSize(1)).Search(s.ctx, april)

	s.Require().NoError(err)
	s.Equal([]string{"a"}, ids(got))
}

func (s *SearchSuite) TestUndercountedTotalTruncatesWithoutLooping() {
	s.registry.EXPECT().ListLaws(gomock.Any(), gomock.Any()).
		Return(page(1, law("a", "2025-06-01", ""), law("b", "2025-07-01", ""), law("c", "2025-08-01", "")), nil).
		Times(1)

	got, err := s.service(WithPageSize(1)).Search(s.ctx, april)

	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, ids(got))
}

func (s *SearchSuite) TestFailureOnSecondPageDiscardsProgress() {
	cause := &egov.Error{Category: egov.ErrorProviderOutage, Op: egov.OpListLaws, StatusCode: 503, Message: "unavailable"}
	gomock.InOrder(
		s.registry.EXPECT().ListLaws(gomock.Any(), gomock.Any()).
			Return(page(4, law("a", "2025-06-01", ""), law("b", "2025-06-02", "")), nil),
		s.registry.EXPECT().ListLaws(gomock.Any(), gomock.Any()).
			Return(nil, cause),
	)

	got, err := s.service(WithPageSize(2)).Search(s.ctx, april)

	s.Nil(got)
	var upErr *UpstreamError
	s.Require().ErrorAs(err, &upErr)
	s.Equal(egov.OpListLaws, upErr.Op)
	s.Equal(2, upErr.Page)
	s.GreaterOrEqual(upErr.Elapsed, time.Duration(0))
	s.ErrorIs(err, cause)
	s.Equal(egov.ErrorProviderOutage, egov.GetCategory(err))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.UpstreamFailures.WithLabelValues(egov.OpListLaws)))
}

func (s *SearchSuite) TestPageLimitFailsClosed() {
	s.registry.EXPECT().ListLaws(gomock.Any(), gomock.Any()).
		Return(page(1000, law("a", "2025-06-01", "")), nil).
		Times(2)

	got, err := s.service(WithPageSize(1), WithMaxPages(2)).Search(s.ctx, april)

	s.Nil(got)
	s.ErrorIs(err, ErrPageLimitExceeded)
	var upErr *UpstreamError
	s.Require().ErrorAs(err, &upErr)
	s.Equal(3, upErr.Page)
}

func (s *SearchSuite) TestCancellationStopsPaging() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	s.registry.EXPECT().ListLaws(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, egov.ListLawsParams) (*egov.LawsResponse, error) {
			cancel()
			return page(10, law("a", "2025-06-01", "")), nil
		}).
		Times(1)

	got, err := s.service(WithPageSize(1)).Search(ctx, april)

	s.Nil(got)
	s.ErrorIs(err, context.Canceled)
	s.Zero(testutil.ToFloat64(s.metrics.UpstreamFailures.WithLabelValues(egov.OpListLaws)))
}

func (s *SearchSuite) TestCanceledRegistryCallIsNotAFailure() {
	s.registry.EXPECT().GetLawData(gomock.Any(), "rev-1").
		Return(nil, &egov.Error{Category: egov.ErrorCanceled, Op: egov.OpGetLawText, Underlying: context.Canceled})
	s.registry.EXPECT().GetLawData(gomock.Any(), "rev-2").
		Return(nil, &egov.Error{Category: egov.ErrorProviderOutage, Op: egov.OpGetLawText})

	_, err := s.service().LawText(s.ctx, "rev-1")
	s.Require().Error(err)
	s.Zero(testutil.ToFloat64(s.metrics.UpstreamFailures.WithLabelValues(egov.OpGetLawText)))

	_, err = s.service().LawText(s.ctx, "rev-2")
	s.Require().Error(err)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.UpstreamFailures.WithLabelValues(egov.OpGetLawText)))
}

func (s *SearchSuite) TestMissingDatesRejectedBeforeUpstream() {
	for _, c := range []Criteria{
		{DateTo: "2025-09-30"},
		{DateFrom: "2025-04-01"},
		{DateFrom: "2025/04/01", DateTo: "2025-09-30"},
		{DateFrom: "2025-04-01", DateTo: "30-09-2025"},
	} {
		_, err := s.service().Search(s.ctx, c)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation), "criteria %+v", c)
	}
}

func (s *SearchSuite) TestRevisions() {
	s.registry.EXPECT().ListRevisions(gomock.Any(), "322AC0000000049", egov.RevisionParams{
		PromulgateDateFrom: "2020-01-01",
	}).Return(&egov.LawRevisionsResponse{
		LawInfo:   egov.LawInfo{LawID: "322AC0000000049"},
		Revisions: []egov.RevisionInfo{{LawRevisionID: "r2"}, {LawRevisionID: "r1"}},
	}, nil)

	resp, err := s.service().Revisions(s.ctx, "322AC0000000049", RevisionFilter{PromulgateFrom: "2020-01-01"})

	s.Require().NoError(err)
	s.Len(resp.Revisions, 2)
}

func (s *SearchSuite) TestRevisionsFailures() {
	_, err := s.service().Revisions(s.ctx, " ", RevisionFilter{})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.service().Revisions(s.ctx, "x", RevisionFilter{PromulgateTo: "tomorrow"})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.service().Revisions(s.ctx, "x", RevisionFilter{PromulgateFrom: "yesterday", PromulgateTo: "tomorrow"})
	s.Require().True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Contains(err.Error(), "date_from must be formatted")

	s.registry.EXPECT().ListRevisions(gomock.Any(), "x", gomock.Any()).Return(nil, errors.New("reset"))
	_, err = s.service().Revisions(s.ctx, "x", RevisionFilter{})
	var upErr *UpstreamError
	s.Require().ErrorAs(err, &upErr)
	s.Equal(egov.OpListRevisions, upErr.Op)
	s.Zero(upErr.Page)
}

func (s *SearchSuite) TestLawText() {
	s.registry.EXPECT().GetLawData(gomock.Any(), "rev-1").Return(&egov.LawDataResponse{
		RevisionInfo: egov.RevisionInfo{LawRevisionID: "rev-1"},
	}, nil)

	resp, err := s.service().LawText(s.ctx, "rev-1")
	s.Require().NoError(err)
	s.Equal("rev-1", resp.RevisionInfo.LawRevisionID)

	_, err = s.service().LawText(s.ctx, "")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	s.registry.EXPECT().GetLawData(gomock.Any(), "rev-2").Return(nil, &egov.Error{Category: egov.ErrorNotFound, Op: egov.OpGetLawText})
	_, err = s.service().LawText(s.ctx, "rev-2")
	var upErr *UpstreamError
	s.Require().ErrorAs(err, &upErr)
	s.Equal(egov.OpGetLawText, upErr.Op)
	s.Equal(egov.ErrorNotFound, egov.GetCategory(err))
}

func TestAmendedWithin(t *testing.T) {
	tests := []struct {
		name        string
		promulgated string
		enforced    string
		want        bool
	}{
		{"promulgated on lower bound", "2025-04-01", "", true},
		{"enforced on upper bound", "", "2025-09-30", true},
		{"only enforcement in range", "2024-12-01", "2025-05-01", true},
		{"only promulgation in range", "2025-05-01", "2026-04-01", true},
		{"both before", "2025-03-31", "2025-03-31", false},
		{"both after", "2025-10-01", "2026-01-01", false},
		{"both absent", "", "", false},
		{"dates straddle the range", "2025-01-01", "2025-12-31", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RecordFromLaw(law("x", tt.promulgated, tt.enforced))
			assert.Equal(t, tt.want, r.AmendedWithin(april.DateFrom, april.DateTo))
		})
	}
}

func TestRecordFromLaw(t *testing.T) {
	l := egov.Law{
		LawInfo: egov.LawInfo{LawID: "322AC0000000049", LawNum: "昭和二十二年法律第四十九号"},
		RevisionInfo: egov.RevisionInfo{
			LawRevisionID:            "322AC0000000049_20250601_504AC0000000068",
			LawType:                  "Act",
			LawTitle:                 "労働基準法",
			Category:                 "労働",
			Updated:                  "2025-05-01T10:00:00+09:00",
			AmendmentPromulgateDate:  "2022-06-17",
			AmendmentEnforcementDate: "2025-06-01",
			AmendmentLawID:           "504AC0000000068",
			AmendmentLawTitle:        "刑法等の一部を改正する法律",
			AmendmentLawNum:          "令和四年法律第六十七号",
			AmendmentType:            "3",
			Mission:                  "New",
		},
	}

	r := RecordFromLaw(l)

	require.Equal(t, "322AC0000000049", r.LawID)
	assert.Equal(t, "昭和二十二年法律第四十九号", r.LawNum)
	assert.Equal(t, "322AC0000000049_20250601_504AC0000000068", r.LawRevisionID)
	assert.Equal(t, "労働基準法", r.LawTitle)
	assert.Equal(t, "Act", r.LawType)
	assert.Equal(t, "労働", r.Category)
	assert.Equal(t, "2022-06-17", r.AmendmentPromulgateDate)
	assert.Equal(t, "2025-06-01", r.AmendmentEnforcementDate)
	assert.Equal(t, "504AC0000000068", r.AmendmentLawID)
	assert.Equal(t, "刑法等の一部を改正する法律", r.AmendmentLawTitle)
	assert.Equal(t, "令和四年法律第六十七号", r.AmendmentLawNum)
	assert.Equal(t, "3", r.AmendmentType)
	assert.Equal(t, "New", r.Mission)
	assert.Equal(t, "2025-05-01T10:00:00+09:00", r.Updated)
}
