package check

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"lexis-hq/proofread/pkg/engine"
)

// Analyzer adapts the engine to the pipeline. It is safe for concurrent
// use: the dictionary is shared read-only and every call builds its own
// lint group.
type Analyzer struct {
	dict    *engine.Dictionary
	dialect engine.Dialect
}

// NewAnalyzer returns an analyzer bound to a loaded dictionary.
func NewAnalyzer(dict *engine.Dictionary, dialect engine.Dialect) *Analyzer {
	return &Analyzer{dict: dict, dialect: dialect}
}

// Dialect returns the dialect findings are checked against.
func (a *Analyzer) Dialect() engine.Dialect {
	return a.dialect
}

// Analyze lints text and returns raw findings in engine order. A panic
// inside the engine is returned as ErrInternal.
func (a *Analyzer) Analyze(text string) (findings []Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("engine panic recovered",
				"panic", r,
				"stack", string(debug.Stack()),
			)
			findings = nil
			err = fmt.Errorf("%w: engine failure: %v", ErrInternal, r)
		}
	}()

	group := engine.NewCuratedLintGroup(a.dict, a.dialect)
	lints := group.Lint(engine.NewDocument(text))

	findings = make([]Finding, 0, len(lints))
	for _, l := range lints {
		findings = append(findings, Finding{
			Message:      l.Message,
			Start:        l.Span.Start,
			End:          l.Span.End,
			Replacements: replacements(l.Suggestions),
			RuleID:       l.Kind.String(),
		})
	}
	return findings, nil
}

// replacements keeps only suggestions that carry replacement text.
func replacements(suggestions []engine.Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Kind == engine.ReplaceWith {
			out = append(out, s.Text)
		}
	}
	return out
}
