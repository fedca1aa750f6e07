package engine

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// allowedRepeats may legitimately appear twice in a row.
var allowedRepeats = map[string]struct{}{
	"had":  {},
	"that": {},
}

// RepeatedWords flags a word immediately repeated after whitespace.
type RepeatedWords struct {
	fold cases.Caser
}

// NewRepeatedWords returns a repetition linter.
func NewRepeatedWords() *RepeatedWords {
	return &RepeatedWords{fold: cases.Fold()}
}

// Lint implements Linter.
func (r *RepeatedWords) Lint(doc *Document) []Lint {
	var lints []Lint
	tokens := doc.Tokens()

	for i := 0; i+2 < len(tokens); i++ {
		first, space, second := tokens[i], tokens[i+1], tokens[i+2]
		if first.Kind != TokenWord || space.Kind != TokenSpace || second.Kind != TokenWord {
			continue
		}

		folded := r.fold.String(first.Text)
		if folded != r.fold.String(second.Text) {
			continue
		}
		if _, ok := allowedRepeats[folded]; ok {
			continue
		}

		lints = append(lints, Lint{
			Span:        Span{Start: first.Span.Start, End: second.Span.End},
			Kind:        KindRepetition,
			Message:     fmt.Sprintf("The word %q is repeated.", first.Text),
			Suggestions: []Suggestion{Replace(first.Text)},
		})
		i += 2
	}

	return lints
}

// SentenceCapitalization flags sentences that open with a lowercase letter
// and the pronoun "i" written in lowercase.
type SentenceCapitalization struct{}

// Lint implements Linter.
func (SentenceCapitalization) Lint(doc *Document) []Lint {
	var lints []Lint
	tokens := doc.Tokens()

	for i, tok := range tokens {
		if tok.Kind != TokenWord {
			continue
		}

		if tok.Text == "i" {
			// "i.e." and list markers are not the pronoun.
			if i+1 < len(tokens) && tokens[i+1].Kind == TokenPunct && tokens[i+1].Text != "," {
				continue
			}
			lints = append(lints, Lint{
				Span:        tok.Span,
				Kind:        KindCapitalization,
				Message:     `The pronoun "I" is always capitalized.`,
				Suggestions: []Suggestion{Replace("I")},
			})
			continue
		}

		first, size := utf8.DecodeRuneInString(tok.Text)
		if !unicode.IsLower(first) || !doc.IsSentenceStart(i) || hasInnerUpper(tok.Text) {
			continue
		}

		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindCapitalization,
			Message:     "This sentence does not start with a capital letter.",
			Suggestions: []Suggestion{Replace(string(unicode.ToUpper(first)) + tok.Text[size:])},
		})
	}

	return lints
}

func hasInnerUpper(word string) bool {
	for i, r := range word {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// SpaceBeforePunctuation flags whitespace between a word and the
// punctuation mark that follows it.
type SpaceBeforePunctuation struct{}

const closingMarks = ",.;:!?"

// Lint implements Linter.
func (SpaceBeforePunctuation) Lint(doc *Document) []Lint {
	var lints []Lint
	tokens := doc.Tokens()

	for i := 1; i+1 < len(tokens); i++ {
		prev, space, next := tokens[i-1], tokens[i], tokens[i+1]
		if space.Kind != TokenSpace || next.Kind != TokenPunct {
			continue
		}
		if prev.Kind != TokenWord && prev.Kind != TokenNumber {
			continue
		}
		if !strings.Contains(closingMarks, next.Text) || strings.ContainsAny(space.Text, "\n\r") {
			continue
		}
		// An ellipsis may be set off by a space.
		if next.Text == "." && i+2 < len(tokens) && tokens[i+2].Text == "." {
			continue
		}

		lints = append(lints, Lint{
			Span:        space.Span,
			Kind:        KindFormatting,
			Message:     fmt.Sprintf("Remove the space before %q.", next.Text),
			Suggestions: []Suggestion{{Kind: Remove}},
		})
	}

	return lints
}
