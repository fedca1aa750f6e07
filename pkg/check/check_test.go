package check

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"lexis-hq/proofread/pkg/engine"
)

var (
	dictOnce sync.Once
	dict     *engine.Dictionary
	dictErr  error
)

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	dictOnce.Do(func() {
		dict, dictErr = engine.LoadCurated()
	})
	if dictErr != nil {
		t.Fatalf("failed to load dictionary: %v", dictErr)
	}
	return NewAnalyzer(dict, engine.American)
}

type expectedMatch struct {
	Category    Category `yaml:"category"`
	Offset      *int     `yaml:"offset"`
	Length      *int     `yaml:"length"`
	Replacement string   `yaml:"replacement"`
}

type findingCase struct {
	Name                 string          `yaml:"name"`
	Text                 string          `yaml:"text"`
	Expect               []expectedMatch `yaml:"expect"`
	MinMatches           int             `yaml:"min_matches"`
	MinSpelling          int             `yaml:"min_spelling"`
	ReplacementsRequired bool            `yaml:"replacements_required"`
}

type caseFile struct {
	Findings []findingCase `yaml:"findings"`
	Clean    []string      `yaml:"clean"`
	Robust   []string      `yaml:"robust"`
}

func loadCases(t *testing.T) caseFile {
	t.Helper()
	data, err := os.ReadFile("testdata/cases.yaml")
	if err != nil {
		t.Fatalf("failed to read cases: %v", err)
	}
	var cases caseFile
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("failed to parse cases: %v", err)
	}
	return cases
}

func TestService_Findings(t *testing.T) {
	svc := NewService(newAnalyzer(t))

	for _, tc := range loadCases(t).Findings {
		t.Run(tc.Name, func(t *testing.T) {
			resp, err := svc.Check(context.Background(), &Request{Text: tc.Text})
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}

			if len(resp.Matches) < tc.MinMatches {
				t.Errorf("expected at least %d matches, got %d", tc.MinMatches, len(resp.Matches))
			}

			spelling := 0
			for _, m := range resp.Matches {
				if m.Rule.Category == CategorySpelling {
					spelling++
				}
				if tc.ReplacementsRequired && len(m.Replacements) == 0 {
					t.Errorf("expected replacements for %q", m.Message)
				}
			}
			if spelling < tc.MinSpelling {
				t.Errorf("expected at least %d spelling matches, got %d", tc.MinSpelling, spelling)
			}

			for _, want := range tc.Expect {
				if !containsMatch(resp.Matches, want) {
					t.Errorf("no match like %+v in %+v", want, resp.Matches)
				}
			}
		})
	}
}

func containsMatch(matches []Match, want expectedMatch) bool {
	for _, m := range matches {
		if m.Rule.Category != want.Category {
			continue
		}
		if want.Offset != nil && m.Offset != *want.Offset {
			continue
		}
		if want.Length != nil && m.Length != *want.Length {
			continue
		}
		if want.Replacement == "" {
			return true
		}
		for _, r := range m.Replacements {
			if r == want.Replacement {
				return true
			}
		}
	}
	return false
}

func TestService_Clean(t *testing.T) {
	svc := NewService(newAnalyzer(t))

	for _, text := range loadCases(t).Clean {
		t.Run(text, func(t *testing.T) {
			resp, err := svc.Check(context.Background(), &Request{Text: text})
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if len(resp.Matches) != 0 {
				t.Errorf("expected no matches for %q, got %+v", text, resp.Matches)
			}
		})
	}
}

func TestService_Robust(t *testing.T) {
	svc := NewService(newAnalyzer(t))

	texts := loadCases(t).Robust
	texts = append(texts,
		strings.Repeat("a", 100),
		strings.Repeat("This is a sentence. ", 100),
	)

	for _, text := range texts {
		resp, err := svc.Check(context.Background(), &Request{Text: text})
		if err != nil {
			t.Fatalf("Check(%q) error = %v", text, err)
		}

		body, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("failed to marshal response: %v", err)
		}
		if !strings.Contains(string(body), `"matches":[`) {
			t.Errorf("expected matches array for %q, got %s", text, body)
		}

		n := len([]rune(text))
		for _, m := range resp.Matches {
			if m.Offset < 0 || m.Offset+m.Length > n {
				t.Errorf("match %+v outside text of length %d", m, n)
			}
			if m.Replacements == nil {
				t.Errorf("replacements must never be nil: %+v", m)
			}
		}
	}
}

func TestService_PayloadBound(t *testing.T) {
	svc := NewService(newAnalyzer(t))

	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "at the bound", size: MaxTextBytes},
		{name: "one byte over", size: MaxTextBytes + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Check(context.Background(), &Request{Text: strings.Repeat("a", tt.size)})
			if tt.wantErr {
				if !errors.Is(err, ErrPayloadTooLarge) {
					t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
				}
				if !strings.Contains(err.Error(), "Text exceeds maximum size of 102400 bytes") {
					t.Errorf("unexpected message %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

type stubEngine struct {
	findings []Finding
	block    chan struct{}
	calls    int
	mu       sync.Mutex
}

func (s *stubEngine) Analyze(string) ([]Finding, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.block != nil {
		<-s.block
	}
	return s.findings, nil
}

func TestService_ValidationRunsBeforeEngine(t *testing.T) {
	stub := &stubEngine{}
	svc := NewService(stub)

	_, err := svc.Check(context.Background(), &Request{Text: strings.Repeat("x", MaxTextBytes+1)})
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	if stub.calls != 0 {
		t.Errorf("engine invoked %d times for oversized text", stub.calls)
	}
}

func TestService_Timeout(t *testing.T) {
	stub := &stubEngine{block: make(chan struct{})}
	defer close(stub.block)

	svc := NewService(stub, WithTimeout(10*time.Millisecond))
	_, err := svc.Check(context.Background(), &Request{Text: "slow"})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestService_ContextCanceled(t *testing.T) {
	stub := &stubEngine{block: make(chan struct{})}
	defer close(stub.block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(stub).Check(ctx, &Request{Text: "gone"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestService_Options(t *testing.T) {
	stub := &stubEngine{findings: []Finding{
		{Message: "spelling", Start: 0, End: 4, RuleID: "Spelling"},
		{Message: "article", Start: 5, End: 7, RuleID: "WordChoice"},
	}}
	svc := NewService(stub)
	off := false

	tests := []struct {
		name string
		opts *Options
		want []Category
	}{
		{name: "absent", opts: nil, want: []Category{CategorySpelling, CategoryGrammar}},
		{name: "spelling off", opts: &Options{Spelling: &off}, want: []Category{CategoryGrammar}},
		{name: "grammar off", opts: &Options{Grammar: &off}, want: []Category{CategorySpelling}},
		{name: "both off", opts: &Options{Spelling: &off, Grammar: &off}, want: []Category{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Check(context.Background(), &Request{Text: "Teh an cat", Options: tt.opts})
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if len(resp.Matches) != len(tt.want) {
				t.Fatalf("expected %d matches, got %+v", len(tt.want), resp.Matches)
			}
			for i, c := range tt.want {
				if resp.Matches[i].Rule.Category != c {
					t.Errorf("match %d: expected %s, got %s", i, c, resp.Matches[i].Rule.Category)
				}
			}
		})
	}
}

func TestAnalyzer_RecoversPanic(t *testing.T) {
	a := NewAnalyzer(nil, engine.American)

	findings, err := a.Analyze("word")
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if findings != nil {
		t.Errorf("expected no findings, got %+v", findings)
	}
}

func TestService_ConcurrentDistinctTexts(t *testing.T) {
	svc := NewService(newAnalyzer(t))

	texts := []string{
		"This is an test with erors.",
		"Their going to the store tomorow.",
		"She recieved a invoice yesterday.",
		"He play the guitar every evening.",
		"The the report was finished on time.",
		"I could of done it better.",
		"Ünïcode prefix then a speling mistake.",
		"A clean sentence with nothing wrong.",
	}

	want := make([]*Response, len(texts))
	for i, text := range texts {
		resp, err := svc.Check(context.Background(), &Request{Text: text})
		if err != nil {
			t.Fatalf("Check(%q) error = %v", text, err)
		}
		resp.Metrics.ProcessingTimeMs = 0
		want[i] = resp
	}

	const rounds = 8
	var wg sync.WaitGroup
	for range rounds {
		for i, text := range texts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := svc.Check(context.Background(), &Request{Text: text})
				if err != nil {
					t.Errorf("concurrent Check(%q) error = %v", text, err)
					return
				}
				got.Metrics.ProcessingTimeMs = 0
				if !reflect.DeepEqual(got, want[i]) {
					t.Errorf("concurrent Check(%q) = %+v, want %+v", text, got, want[i])
				}
			}()
		}
	}
	wg.Wait()
}
