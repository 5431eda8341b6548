package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/uxmetrics/eval-server/internal/kano"
	"github.com/uxmetrics/eval-server/internal/report"
	"github.com/uxmetrics/eval-server/internal/service"
	"github.com/uxmetrics/eval-server/internal/sus"
)

const (
	defaultCacheDuration  = 10 * time.Minute
	defaultRequestTimeout = 10 * time.Second
	maxRequestBody        = 1 << 20
)

type Handlers struct {
	evaluations EvaluationService
	cache       *cacheLayer
	logger      *zap.Logger
}

// NewHandlers initializes the HTTP handlers.
func NewHandlers(evaluations EvaluationService, cache Cacher, logger *zap.Logger, ttl time.Duration) *Handlers {
	if evaluations == nil {
		panic("nil EvaluationService provided to NewHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	logger = logger.Named("http-handler")
	return &Handlers{
		evaluations: evaluations,
		cache:       newCacheLayer(cache, ttl, logger),
		logger:      logger,
	}
}

// Router builds the API route tree.
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/kano/questions", h.KanoQuestions)
		r.Get("/sus/questions", h.SUSQuestions)
		r.Post("/evaluate", h.Evaluate)
		r.Get("/evaluations", h.ListEvaluations)
		r.Get("/evaluations/{id}", h.GetEvaluation)
		r.Delete("/evaluations/{id}", h.DeleteEvaluation)
		r.Get("/evaluations/{id}/report", h.DownloadReport)
		r.Get("/stats", h.Stats)
	})

	return r
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handlers) respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

func (h *Handlers) handleError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	switch ctx.Err() {
	case context.Canceled:
		h.logger.Warn("request canceled", zap.String("op", op))
		h.respondError(w, http.StatusRequestTimeout, "request canceled")
		return
	case context.DeadlineExceeded:
		h.logger.Warn("request timeout", zap.String("op", op))
		h.respondError(w, http.StatusGatewayTimeout, "request timed out")
		return
	}

	switch {
	case errors.Is(err, service.ErrEvaluationNotFound):
		h.logger.Info("evaluation not found", zap.String("op", op))
		h.respondError(w, http.StatusNotFound, "evaluation not found")
	case errors.Is(err, service.ErrMissingKanoResponses),
		errors.Is(err, service.ErrMissingSUSResponses),
		errors.Is(err, kano.ErrAnswerOutOfRange),
		errors.Is(err, sus.ErrInvalidResponseSet):
		h.logger.Info("invalid evaluation input", zap.String("op", op), zap.Error(err))
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrStorageFailure):
		h.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "database error")
	default:
		h.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("%s failed", op))
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "eval-server",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handlers) KanoQuestions(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]any{
		"questions":      kano.DefaultQuestions,
		"answer_options": kano.AnswerOptions,
	})
}

func (h *Handlers) SUSQuestions(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]any{
		"questions":      sus.Questions,
		"likert_options": sus.LikertOptions,
	})
}

// evaluateRequestWire tolerates SUS responses arriving as JSON numbers or
// numeric strings, which is how survey front-ends tend to ship them.
type evaluateRequestWire struct {
	ProjectInfo   service.ProjectInfo        `json:"project_info"`
	KanoResponses map[string]kano.AnswerPair `json:"kano_responses"`
	SUSResponses  map[string]any             `json:"sus_responses"`
}

func coerceResponse(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("non-integer response %v", n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("non-numeric response %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unsupported response type %T", v)
	}
}

func (wire evaluateRequestWire) toRequest() (service.EvaluateRequest, error) {
	req := service.EvaluateRequest{
		ProjectInfo:   wire.ProjectInfo,
		KanoResponses: wire.KanoResponses,
		SUSResponses:  make(map[string]int, len(wire.SUSResponses)),
	}
	for id, raw := range wire.SUSResponses {
		v, err := coerceResponse(raw)
		if err != nil {
			return service.EvaluateRequest{}, fmt.Errorf("sus response %s: %w", id, err)
		}
		req.SUSResponses[id] = v
	}
	return req, nil
}

func (h *Handlers) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	var wire evaluateRequestWire
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&wire); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := wire.toRequest()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	evaluation, err := h.evaluations.Evaluate(ctx, req)
	if err != nil {
		h.handleError(ctx, w, "Evaluate", err)
		return
	}

	h.cache.invalidate(statsKey)
	h.respond(w, http.StatusCreated, evaluation)
}

func (h *Handlers) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	evaluation, err := findAndCache(ctx, h.cache, evaluationKey(id), func(fetchCtx context.Context) (*service.Evaluation, error) {
		return h.evaluations.Get(fetchCtx, id)
	})
	if err != nil {
		h.handleError(ctx, w, "GetEvaluation", err)
		return
	}

	h.respond(w, http.StatusOK, evaluation)
}

func (h *Handlers) ListEvaluations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		h.respondError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	summaries, err := h.evaluations.List(ctx, limit, offset)
	if err != nil {
		h.handleError(ctx, w, "ListEvaluations", err)
		return
	}

	h.respond(w, http.StatusOK, map[string]any{
		"evaluations": summaries,
		"count":       len(summaries),
	})
}

func (h *Handlers) DeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	if err := h.evaluations.Delete(ctx, id); err != nil {
		h.handleError(ctx, w, "DeleteEvaluation", err)
		return
	}

	h.cache.invalidate(evaluationKey(id), statsKey)
	h.respond(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}

func (h *Handlers) DownloadReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	id := chi.URLParam(r, "id")
	evaluation, err := h.evaluations.Get(ctx, id)
	if err != nil {
		h.handleError(ctx, w, "DownloadReport", err)
		return
	}

	var buf bytes.Buffer
	if err := report.Generate(evaluation, &buf); err != nil {
		h.logger.Error("report generation failed", zap.String("id", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(evaluation)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write report", zap.String("id", id), zap.Error(err))
	}
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	stats, err := findAndCache(ctx, h.cache, statsKey, func(fetchCtx context.Context) (service.Stats, error) {
		return h.evaluations.Stats(fetchCtx)
	})
	if err != nil {
		h.handleError(ctx, w, "Stats", err)
		return
	}

	h.respond(w, http.StatusOK, stats)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
