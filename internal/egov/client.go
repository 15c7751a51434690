// Package egov is a client for the e-Gov law registry API v2.
//
// Only the three read calls the search service needs are implemented:
// listing laws, listing the revisions of one law and fetching the full text
// of a revision. Every failure is returned as *Error.
package egov

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the public registry endpoint.
const DefaultBaseURL = "https://laws.e-gov.go.jp/api/2"

// RepealStatusNone restricts listings to laws that have not been repealed.
const RepealStatusNone = "None"

const (
	OpListLaws      = "list_laws"
	OpListRevisions = "list_revisions"
	OpGetLawText    = "get_law_text"
)

// maxErrorBody caps how much of an error response ends up in messages.
const maxErrorBody = 4096

// Client talks to the registry. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer("lawsearch/internal/egov")
	}
}

// New creates a client for baseURL with a per-call timeout.
func New(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		tracer:  otel.Tracer("lawsearch/internal/egov"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListLaws fetches one page of non-repealed laws.
func (c *Client) ListLaws(ctx context.Context, p ListLawsParams) (*LawsResponse, error) {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	q.Set("offset", strconv.Itoa(p.Offset))
	if len(p.CategoryCodes) > 0 {
		q.Set("category_cd", strings.Join(p.CategoryCodes, ","))
	}
	if p.LawTitle != "" {
		q.Set("law_title", p.LawTitle)
	}
	q.Set("repeal_status", RepealStatusNone)

	var out LawsResponse
	if _, err := c.get(ctx, OpListLaws, "/laws", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRevisions fetches the revision history of lawID.
func (c *Client) ListRevisions(ctx context.Context, lawID string, p RevisionParams) (*LawRevisionsResponse, error) {
	q := url.Values{}
	if p.PromulgateDateFrom != "" {
		q.Set("amendment_promulgate_date_from", p.PromulgateDateFrom)
	}
	if p.PromulgateDateTo != "" {
		q.Set("amendment_promulgate_date_to", p.PromulgateDateTo)
	}

	var out LawRevisionsResponse
	raw, err := c.get(ctx, OpListRevisions, "/law_revisions/"+url.PathEscape(lawID), q, &out)
	if err != nil {
		return nil, err
	}
	out.Raw = raw
	return &out, nil
}

// GetLawData fetches the full text of one revision as JSON.
func (c *Client) GetLawData(ctx context.Context, lawRevisionID string) (*LawDataResponse, error) {
	q := url.Values{}
	q.Set("response_format", "json")

	var out LawDataResponse
	raw, err := c.get(ctx, OpGetLawText, "/law_data/"+url.PathEscape(lawRevisionID), q, &out)
	if err != nil {
		return nil, err
	}
	out.Raw = raw
	return &out, nil
}

// get decodes the response into out and also returns the undecoded body.
func (c *Client) get(ctx context.Context, op, path string, q url.Values, out any) (body []byte, err error) {
	ctx, span := c.tracer.Start(ctx, "egov."+op, trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(GetCategory(err)))
		}
		span.End()
	}()

	target := c.baseURL + path
	if encoded := q.Encode(); encoded != "" {
		target += "?" + encoded
	}
	span.SetAttributes(attribute.String("egov.op", op), attribute.String("url.full", target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, newError(ErrorBadRequest, op, 0, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	latency := time.Since(start)
	if err != nil {
		c.logger.WarnContext(ctx, "registry call failed",
			"op", op,
			"url", target,
			"latency_ms", latency.Milliseconds(),
			"error", err,
		)
		return nil, classifyTransportError(ctx, op, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.DebugContext(ctx, "registry call",
		"op", op,
		"url", target,
		"status", resp.StatusCode,
		"latency_ms", latency.Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(slurp))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, newError(categoryForStatus(resp.StatusCode), op, resp.StatusCode, msg, nil)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, op, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, newError(ErrorBadData, op, resp.StatusCode, "decode response", err)
	}
	return body, nil
}

func classifyTransportError(ctx context.Context, op string, err error) *Error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return newError(ErrorCanceled, op, 0, "request canceled", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return newError(ErrorTimeout, op, 0, "request timed out", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(ErrorTimeout, op, 0, "request timed out", err)
	}
	return newError(ErrorProviderOutage, op, 0, "registry unreachable", err)
}
