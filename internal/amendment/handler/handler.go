// Package handler exposes amendment searches over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lawsearch/internal/amendment"
	"lawsearch/internal/egov"
	dErrors "lawsearch/pkg/domain-errors"
	"lawsearch/pkg/platform/httputil"
	"lawsearch/pkg/requestcontext"
)

// Service defines the amendment operations the handler serves.
type Service interface {
	Search(ctx context.Context, c amendment.Criteria) ([]amendment.Record, error)
	Revisions(ctx context.Context, lawID string, f amendment.RevisionFilter) (*egov.LawRevisionsResponse, error)
	LawText(ctx context.Context, lawRevisionID string) (*egov.LawDataResponse, error)
}

// Handler handles the amendment API endpoints.
type Handler struct {
	logger *slog.Logger
	svc    Service
}

// New creates a new amendment Handler.
func New(svc Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		svc:    svc,
	}
}

// Register registers the API routes with the chi router. Middleware is the
// caller's concern.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/laws", h.handleSearch)
	r.Get("/api/revisions", h.handleRevisions)
	r.Get("/api/law-data", h.handleLawData)
	r.Get("/api/categories", h.handleCategories)
	r.Get("/api/me", h.handleMe)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := parseSearchRequest(r)

	records, err := h.svc.Search(ctx, c)
	if err != nil {
		h.writeServiceError(ctx, w, "amendment search", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toSearchResponse(records))
}

func (h *Handler) handleRevisions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lawID, f := parseRevisionsRequest(r)

	resp, err := h.svc.Revisions(ctx, lawID, f)
	if err != nil {
		h.writeServiceError(ctx, w, "revision history", err)
		return
	}

	body, err := labelRevisions(resp)
	if err != nil {
		h.logger.ErrorContext(ctx, "revision history body could not be labelled",
			"request_id", requestcontext.RequestID(ctx),
			"law_id", lawID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUpstream, "law registry returned an unreadable body"))
		return
	}

	httputil.WriteRawJSON(w, http.StatusOK, body)
}

func (h *Handler) handleLawData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := queryValue(r, "law_revision_id")

	resp, err := h.svc.LawText(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, "law text", err)
		return
	}

	if len(resp.Raw) > 0 {
		httputil.WriteRawJSON(w, http.StatusOK, resp.Raw)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: amendment.Categories()})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	v, ok := requestcontext.ViewerFrom(r.Context())
	if !ok {
		v = requestcontext.Viewer{
			AuthMethod: requestcontext.AuthMethodNone,
			ClientIP:   requestcontext.ClientIP(r.Context()),
		}
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

// writeServiceError logs err and renders it. Registry failures surface as
// upstream errors; their detail stays in the log.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, what string, err error) {
	requestID := requestcontext.RequestID(ctx)

	var upErr *amendment.UpstreamError
	switch {
	case dErrors.HasCode(err, dErrors.CodeValidation):
		h.logger.WarnContext(ctx, "invalid "+what+" request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
	case errors.As(err, &upErr):
		h.logger.ErrorContext(ctx, what+" failed upstream",
			"request_id", requestID,
			"op", upErr.Op,
			"page", upErr.Page,
			"category", string(egov.GetCategory(err)),
			"elapsed_ms", upErr.Elapsed.Milliseconds(),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUpstream, "law registry request failed"))
	default:
		h.logger.ErrorContext(ctx, what+" failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
	}
}
