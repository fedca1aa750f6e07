package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"lexis-hq/proofread/pkg/check"
	"lexis-hq/proofread/pkg/proxy/types"
	"lexis-hq/proofread/pkg/telemetry/tracing"

	"go.opentelemetry.io/otel/trace"
)

// CheckRecorder receives the metrics of the check endpoint.
type CheckRecorder interface {
	RecordCheck(duration time.Duration, textBytes int, findings map[string]int)
	RecordError(kind string)
}

// CheckHandler serves POST /v1/check.
type CheckHandler struct {
	service      *check.Service
	recorder     CheckRecorder
	maxBodyBytes int64
}

// NewCheckHandler creates the check handler. Bodies larger than
// maxBodyBytes are rejected with 413 before they are decoded. recorder
// may be nil.
func NewCheckHandler(service *check.Service, recorder CheckRecorder, maxBodyBytes int64) *CheckHandler {
	return &CheckHandler{
		service:      service,
		recorder:     recorder,
		maxBodyBytes: maxBodyBytes,
	}
}

// ServeHTTP implements http.Handler.
func (h *CheckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	span := trace.SpanFromContext(ctx)

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	req, err := check.DecodeRequest(r.Body)
	if err != nil {
		h.fail(w, r, span, err)
		return
	}

	start := time.Now()
	resp, err := h.service.Check(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			slog.DebugContext(ctx, "client went away before the check finished")
			return
		}
		h.fail(w, r, span, err)
		return
	}

	counts := countByCategory(resp.Matches)
	if h.recorder != nil {
		h.recorder.RecordCheck(time.Since(start), len(req.Text), counts)
	}
	tracing.SetCheckAttributes(span, req.Language, len(req.Text), len(resp.Matches), counts[string(check.CategorySpelling)])

	slog.DebugContext(ctx, "check completed",
		"text_bytes", len(req.Text),
		"matches", len(resp.Matches),
		"processing_ms", resp.Metrics.ProcessingTimeMs,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

func (h *CheckHandler) fail(w http.ResponseWriter, r *http.Request, span trace.Span, err error) {
	apiErr := types.FromError(err)

	if apiErr.Status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "check failed", "error", err, "kind", apiErr.Kind)
		tracing.SetError(span, err)
	} else {
		slog.DebugContext(r.Context(), "check rejected", "error", err, "kind", apiErr.Kind)
	}
	tracing.SetErrorKind(span, apiErr.Kind)

	if h.recorder != nil {
		h.recorder.RecordError(apiErr.Kind)
	}
	types.WriteError(w, apiErr)
}

func countByCategory(matches []check.Match) map[string]int {
	counts := map[string]int{
		string(check.CategorySpelling): 0,
		string(check.CategoryGrammar):  0,
	}
	for _, m := range matches {
		counts[string(m.Rule.Category)]++
	}
	return counts
}
