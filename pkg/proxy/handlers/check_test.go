package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"lexis-hq/proofread/pkg/check"
	"lexis-hq/proofread/pkg/engine"
	"lexis-hq/proofread/pkg/proxy/types"
)

var (
	analyzerOnce sync.Once
	analyzer     *check.Analyzer
	analyzerErr  error
)

func newService(t *testing.T, opts ...check.ServiceOption) *check.Service {
	t.Helper()
	analyzerOnce.Do(func() {
		var dict *engine.Dictionary
		dict, analyzerErr = engine.LoadCurated()
		analyzer = check.NewAnalyzer(dict, engine.American)
	})
	if analyzerErr != nil {
		t.Fatalf("failed to load dictionary: %v", analyzerErr)
	}
	return check.NewService(analyzer, opts...)
}

type fakeRecorder struct {
	checks   int
	findings map[string]int
	errors   []string
}

func (f *fakeRecorder) RecordCheck(_ time.Duration, _ int, findings map[string]int) {
	f.checks++
	f.findings = findings
}

func (f *fakeRecorder) RecordError(kind string) {
	f.errors = append(f.errors, kind)
}

type failingEngine struct{ err error }

func (f failingEngine) Analyze(string) ([]check.Finding, error) { return nil, f.err }

type blockingEngine struct{ release chan struct{} }

func (b blockingEngine) Analyze(string) ([]check.Finding, error) {
	<-b.release
	return nil, nil
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCheckHandler_Success(t *testing.T) {
	recorder := &fakeRecorder{}
	h := NewCheckHandler(newService(t), recorder, 1<<20)

	rec := post(h, `{"text": "This is an test with a speling error."}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var resp check.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Matches) < 2 {
		t.Fatalf("expected at least 2 matches, got %+v", resp.Matches)
	}

	var article *check.Match
	for i := range resp.Matches {
		if resp.Matches[i].Offset == 8 {
			article = &resp.Matches[i]
		}
	}
	if article == nil {
		t.Fatalf("expected a match at offset 8, got %+v", resp.Matches)
	}
	if article.Length != 2 || article.Rule.Category != check.CategoryGrammar {
		t.Errorf("unexpected article match %+v", article)
	}

	if recorder.checks != 1 || recorder.findings["spelling"] < 1 || recorder.findings["grammar"] < 1 {
		t.Errorf("unexpected recorded findings %+v", recorder.findings)
	}
	if len(recorder.errors) != 0 {
		t.Errorf("unexpected errors %v", recorder.errors)
	}
}

func TestCheckHandler_WireShape(t *testing.T) {
	h := NewCheckHandler(newService(t), nil, 1<<20)

	rec := post(h, `{"text": "Everything here is fine."}`)

	var raw map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	matches, ok := raw["matches"].([]any)
	if !ok || len(matches) != 0 {
		t.Errorf("expected an empty matches array, got %v", raw["matches"])
	}
	metrics, ok := raw["metrics"].(map[string]any)
	if !ok {
		t.Fatalf("expected metrics object, got %v", raw["metrics"])
	}
	if _, ok := metrics["processingTimeMs"]; !ok {
		t.Errorf("expected processingTimeMs, got %v", metrics)
	}
}

func TestCheckHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		maxBody    int64
		engine     check.Engine
		wantStatus int
		wantCode   string
		wantKind   string
		wantMsg    string
	}{
		{
			name:       "malformed json",
			body:       `{"text": `,
			wantStatus: http.StatusBadRequest,
			wantCode:   types.CodeInvalidRequest,
			wantKind:   types.KindInvalidRequest,
		},
		{
			name:       "missing text",
			body:       `{"language": "en-US"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   types.CodeInvalidRequest,
			wantKind:   types.KindInvalidRequest,
		},
		{
			name:       "text too large",
			body:       `{"text": "` + strings.Repeat("a", check.MaxTextBytes+1) + `"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   types.CodePayloadTooLarge,
			wantKind:   types.KindPayloadTooLarge,
			wantMsg:    "Text exceeds maximum size of 102400 bytes",
		},
		{
			name:       "body too large",
			body:       `{"text": "` + strings.Repeat("a", 2048) + `"}`,
			maxBody:    1024,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   types.CodePayloadTooLarge,
			wantKind:   types.KindPayloadTooLarge,
		},
		{
			name:       "engine failure",
			body:       `{"text": "hello"}`,
			engine:     failingEngine{err: check.ErrInternal},
			wantStatus: http.StatusInternalServerError,
			wantCode:   types.CodeInternalError,
			wantKind:   types.KindInternal,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(t)
			if tt.engine != nil {
				service = check.NewService(tt.engine)
			}
			maxBody := tt.maxBody
			if maxBody == 0 {
				maxBody = 1 << 20
			}
			recorder := &fakeRecorder{}
			h := NewCheckHandler(service, recorder, maxBody)

			rec := post(h, tt.body)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			var resp types.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode error: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, resp.Code)
			}
			if tt.wantMsg != "" && resp.Error != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, resp.Error)
			}
			if len(recorder.errors) != 1 || recorder.errors[0] != tt.wantKind {
				t.Errorf("expected one %s error, got %v", tt.wantKind, recorder.errors)
			}
			if recorder.checks != 0 {
				t.Errorf("expected no completed check, got %d", recorder.checks)
			}
		})
	}
}

func TestCheckHandler_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	recorder := &fakeRecorder{}
	service := check.NewService(blockingEngine{release: release}, check.WithTimeout(20*time.Millisecond))
	rec := post(NewCheckHandler(service, recorder, 1<<20), `{"text": "slow"}`)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if len(recorder.errors) != 1 || recorder.errors[0] != types.KindTimeout {
		t.Errorf("expected timeout error, got %v", recorder.errors)
	}
}

func TestCheckHandler_ClientGone(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	recorder := &fakeRecorder{}
	h := NewCheckHandler(check.NewService(blockingEngine{release: release}), recorder, 1<<20)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/v1/check", strings.NewReader(`{"text": "bye"}`)).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(rec, req)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after cancellation")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected nothing written, got %q", rec.Body.String())
	}
	if len(recorder.errors) != 0 {
		t.Errorf("expected no recorded error, got %v", recorder.errors)
	}
}

func TestCountByCategory(t *testing.T) {
	counts := countByCategory([]check.Match{
		{Rule: check.Rule{Category: check.CategorySpelling}},
		{Rule: check.Rule{Category: check.CategorySpelling}},
		{Rule: check.Rule{Category: check.CategoryGrammar}},
	})
	if counts["spelling"] != 2 || counts["grammar"] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}

	if counts := countByCategory(nil); counts["spelling"] != 0 || len(counts) != 2 {
		t.Errorf("expected zeroed counts, got %v", counts)
	}
}

