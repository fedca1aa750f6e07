package engine

import (
	"fmt"

	"golang.org/x/text/language"
)

// Span is a half-open range of code point offsets into a document.
type Span struct {
	Start int
	End   int
}

// Len returns the number of code points covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// LintKind names the family a lint belongs to.
type LintKind string

const (
	KindSpelling       LintKind = "Spelling"
	KindWordChoice     LintKind = "WordChoice"
	KindRepetition     LintKind = "Repetition"
	KindCapitalization LintKind = "Capitalization"
	KindFormatting     LintKind = "Formatting"
)

// String implements fmt.Stringer.
func (k LintKind) String() string {
	return string(k)
}

// SuggestionKind distinguishes edits that carry replacement text from
// edits that only delete or insert around the span.
type SuggestionKind int

const (
	ReplaceWith SuggestionKind = iota
	Remove
	InsertAfter
)

// Suggestion is a proposed edit of a lint's span.
type Suggestion struct {
	Kind SuggestionKind
	Text string
}

// Replace returns a ReplaceWith suggestion.
func Replace(text string) Suggestion {
	return Suggestion{Kind: ReplaceWith, Text: text}
}

// Lint is a single finding produced by a Linter.
type Lint struct {
	Span        Span
	Kind        LintKind
	Message     string
	Suggestions []Suggestion
}

// Linter inspects a document and reports findings. Implementations may keep
// per-call scratch state and are not required to be safe for concurrent use.
type Linter interface {
	Lint(doc *Document) []Lint
}

// Dialect is the language variety a lint group checks against.
type Dialect struct {
	tag language.Tag
}

// American is the only curated dialect.
var American = Dialect{tag: language.AmericanEnglish}

var dialectMatcher = language.NewMatcher([]language.Tag{language.AmericanEnglish})

// ParseDialect resolves a BCP 47 tag to a supported dialect. Any English
// variety resolves to American; other languages are rejected.
func ParseDialect(s string) (Dialect, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Dialect{}, fmt.Errorf("invalid dialect %q: %w", s, err)
	}

	if _, _, confidence := dialectMatcher.Match(tag); confidence == language.No {
		return Dialect{}, fmt.Errorf("unsupported dialect %q", s)
	}

	return American, nil
}

// Tag returns the language tag of the dialect.
func (d Dialect) Tag() language.Tag {
	return d.tag
}

// String returns the BCP 47 form of the dialect.
func (d Dialect) String() string {
	return d.tag.String()
}
