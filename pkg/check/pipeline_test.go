package check

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestLocalize(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end int
		want       Context
	}{
		{
			name:  "short text",
			text:  "This is an test.",
			start: 8, end: 10,
			want: Context{Text: "This is an test.", Offset: 8, Length: 2},
		},
		{
			name:  "window in the middle",
			text:  strings.Repeat("a", 30) + "XY" + strings.Repeat("b", 30),
			start: 30, end: 32,
			want: Context{Text: strings.Repeat("a", 20) + "XY" + strings.Repeat("b", 20), Offset: 20, Length: 2},
		},
		{
			name:  "zero-length span",
			text:  "abc",
			start: 1, end: 1,
			want: Context{Text: "abc", Offset: 1, Length: 0},
		},
		{
			name:  "multibyte characters are never split",
			text:  strings.Repeat("é", 25) + "🍕" + strings.Repeat("ü", 25),
			start: 25, end: 26,
			want: Context{Text: strings.Repeat("é", 20) + "🍕" + strings.Repeat("ü", 20), Offset: 20, Length: 1},
		},
		{
			name:  "span past the end is clamped",
			text:  "abc",
			start: 2, end: 10,
			want: Context{Text: "abc", Offset: 2, Length: 1},
		},
		{
			name:  "empty text",
			text:  "",
			start: 0, end: 0,
			want: Context{Text: "", Offset: 0, Length: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Localize([]rune(tt.text), tt.start, tt.end)
			if got != tt.want {
				t.Errorf("Localize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		rule string
		want Category
	}{
		{rule: "Spelling", want: CategorySpelling},
		{rule: "SPELL_CHECK", want: CategorySpelling},
		{rule: "misspelled", want: CategorySpelling},
		{rule: "WordChoice", want: CategoryGrammar},
		{rule: "Repetition", want: CategoryGrammar},
		{rule: "", want: CategoryGrammar},
	}

	for _, tt := range tests {
		if got := Classify(tt.rule); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.rule, got, tt.want)
		}
	}
}

func TestAssemble(t *testing.T) {
	findings := []Finding{
		{Message: "second", Start: 5, End: 7, RuleID: "WordChoice", Replacements: []string{"a"}},
		{Message: "first", Start: 0, End: 4, RuleID: "Spelling"},
	}

	resp := Assemble("Café an x", findings, nil, -time.Millisecond)

	if len(resp.Matches) != 2 || resp.Matches[0].Message != "second" {
		t.Fatalf("engine order not preserved: %+v", resp.Matches)
	}
	if resp.Matches[1].Replacements == nil {
		t.Error("replacements must be an empty slice, not nil")
	}
	if resp.Metrics.ProcessingTimeMs != 0 {
		t.Errorf("expected non-negative elapsed time, got %d", resp.Metrics.ProcessingTimeMs)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	for _, want := range []string{`"replacements":[]`, `"processingTimeMs":0`, `"category":"spelling"`, `"id":"WordChoice"`} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected %s in %s", want, body)
		}
	}
}

func TestAssemble_EmptyMatchesIsArray(t *testing.T) {
	body, err := json.Marshal(Assemble("", nil, nil, 0))
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if !strings.Contains(string(body), `"matches":[]`) {
		t.Errorf("expected empty matches array, got %s", body)
	}
}

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  error
		wantLang string
	}{
		{name: "minimal", body: `{"text":"hi"}`, wantLang: DefaultLanguage},
		{name: "full", body: `{"text":"hi","language":"en-GB","options":{"spelling":false}}`, wantLang: "en-GB"},
		{name: "unknown fields ignored", body: `{"text":"hi","extra":1}`, wantLang: DefaultLanguage},
		{name: "missing text", body: `{"language":"en-US"}`, wantErr: ErrInvalidRequest},
		{name: "text not a string", body: `{"text":42}`, wantErr: ErrInvalidRequest},
		{name: "malformed", body: `{"text":`, wantErr: ErrInvalidRequest},
		{name: "empty body", body: ``, wantErr: ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeRequest(strings.NewReader(tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Language != tt.wantLang {
				t.Errorf("expected language %q, got %q", tt.wantLang, req.Language)
			}
		})
	}
}

func TestDecodeRequest_BodyLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	body := http.MaxBytesReader(rec, io.NopCloser(strings.NewReader(`{"text":"`+strings.Repeat("a", 64)+`"}`)), 16)

	_, err := DecodeRequest(body)
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestOptions_Enabled(t *testing.T) {
	on, off := true, false

	var nilOpts *Options
	if !nilOpts.Enabled(CategorySpelling) || !nilOpts.Enabled(CategoryGrammar) {
		t.Error("absent options enable every category")
	}

	opts := &Options{Spelling: &off, Grammar: &on}
	if opts.Enabled(CategorySpelling) {
		t.Error("spelling should be disabled")
	}
	if !opts.Enabled(CategoryGrammar) {
		t.Error("grammar should be enabled")
	}
}
