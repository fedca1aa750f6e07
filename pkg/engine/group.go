package engine

import (
	"sort"
)

// LintGroup runs an ordered set of linters over a document.
//
// A group holds per-call scratch state and must not be shared between
// goroutines. Construct one per request; construction only allocates.
type LintGroup struct {
	linters []Linter
}

// NewLintGroup returns a group running linters in order.
func NewLintGroup(linters ...Linter) *LintGroup {
	return &LintGroup{linters: linters}
}

// NewCuratedLintGroup returns the standard rule set for dialect.
func NewCuratedLintGroup(dict *Dictionary, dialect Dialect) *LintGroup {
	return NewLintGroup(
		NewSpellCheck(dict, dialect),
		ArticleAgreement{},
		NewRepeatedWords(),
		SentenceCapitalization{},
		SpaceBeforePunctuation{},
	)
}

// Lint runs every linter and returns the findings ordered by span start.
// Findings sharing a start keep linter order.
func (g *LintGroup) Lint(doc *Document) []Lint {
	var lints []Lint
	for _, l := range g.linters {
		lints = append(lints, l.Lint(doc)...)
	}

	sort.SliceStable(lints, func(i, j int) bool {
		return lints[i].Span.Start < lints[j].Span.Start
	})
	return lints
}
