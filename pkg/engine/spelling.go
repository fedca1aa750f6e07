package engine

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	// maxSpellingSuggestions caps the suggestions attached to one lint.
	maxSpellingSuggestions = 3

	// maxSuggestionLookups caps distinct suggestion searches per document.
	// Misspellings past the cap are still reported, without suggestions.
	maxSuggestionLookups = 512
)

// SpellCheck flags words missing from the dictionary.
type SpellCheck struct {
	dict  *Dictionary
	fold  cases.Caser
	title cases.Caser

	memo    map[string][]string
	lookups int
}

// NewSpellCheck returns a spelling linter backed by dict.
func NewSpellCheck(dict *Dictionary, dialect Dialect) *SpellCheck {
	return &SpellCheck{
		dict:  dict,
		fold:  cases.Fold(),
		title: cases.Title(dialect.Tag()),
		memo:  make(map[string][]string),
	}
}

// Lint implements Linter.
func (s *SpellCheck) Lint(doc *Document) []Lint {
	var lints []Lint

	for i, tok := range doc.Tokens() {
		if tok.Kind != TokenWord || skipSpelling(tok.Text) {
			continue
		}

		folded := normalizeWord(s.fold, tok.Text)
		base, possessive := stripPossessive(folded)
		if s.known(folded) || s.known(base) {
			continue
		}

		// Capitalized words inside a sentence are treated as proper nouns.
		first, _ := utf8.DecodeRuneInString(tok.Text)
		if unicode.IsUpper(first) && !doc.IsSentenceStart(i) {
			continue
		}

		lints = append(lints, Lint{
			Span:        tok.Span,
			Kind:        KindSpelling,
			Message:     fmt.Sprintf("Did you mean to spell %q this way?", tok.Text),
			Suggestions: s.suggestions(base, possessive, unicode.IsUpper(first)),
		})
	}

	return lints
}

func (s *SpellCheck) suggestions(base, possessive string, capitalized bool) []Suggestion {
	words, ok := s.memo[base]
	if !ok {
		if s.lookups >= maxSuggestionLookups {
			return nil
		}
		s.lookups++
		words = s.dict.Suggest(base, maxSpellingSuggestions)
		s.memo[base] = words
	}

	out := make([]Suggestion, 0, len(words))
	for _, w := range words {
		if capitalized {
			w = s.title.String(w)
		}
		out = append(out, Replace(w+possessive))
	}
	return out
}

// known reports whether the folded word or one of its uninflected forms is
// in the dictionary.
func (s *SpellCheck) known(folded string) bool {
	if folded == "" || s.dict.Contains(folded) {
		return true
	}
	for _, stem := range stems(folded) {
		if s.dict.Contains(stem) {
			return true
		}
	}
	return false
}

// skipSpelling reports tokens that are never spell checked: anything
// containing a digit, acronyms, and words with internal capitals.
func skipSpelling(word string) bool {
	letters, upper := 0, 0
	innerUpper := false
	for i, r := range word {
		if unicode.IsDigit(r) {
			return true
		}
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
				innerUpper = innerUpper || i > 0
			}
		}
	}
	if letters >= 2 && upper == letters {
		return true
	}
	return innerUpper
}

func stripPossessive(folded string) (base, suffix string) {
	switch {
	case strings.HasSuffix(folded, "'s"):
		return strings.TrimSuffix(folded, "'s"), "'s"
	case strings.HasSuffix(folded, "s'"):
		return strings.TrimSuffix(folded, "'"), "'"
	}
	return folded, ""
}

const minStemLength = 2

// stems returns candidate base forms for a regularly inflected word.
func stems(w string) []string {
	var out []string
	add := func(s string) {
		if utf8.RuneCountInString(s) >= minStemLength {
			out = append(out, s)
		}
	}
	undouble := func(s string) {
		r := []rune(s)
		if n := len(r); n >= 2 && r[n-1] == r[n-2] {
			add(string(r[:n-1]))
		}
	}

	for _, suffix := range []string{"ies", "ied", "ier", "iest", "ily", "iness"} {
		if strings.HasSuffix(w, suffix) {
			add(strings.TrimSuffix(w, suffix) + "y")
		}
	}

	if strings.HasSuffix(w, "es") {
		add(strings.TrimSuffix(w, "es"))
	}
	if strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		add(strings.TrimSuffix(w, "s"))
	}

	for _, suffix := range []string{"ed", "er", "est", "ing"} {
		if !strings.HasSuffix(w, suffix) {
			continue
		}
		stem := strings.TrimSuffix(w, suffix)
		add(stem)
		add(stem + "e")
		undouble(stem)
	}

	for _, suffix := range []string{"ly", "ness", "ment", "ful", "less", "able"} {
		if strings.HasSuffix(w, suffix) {
			add(strings.TrimSuffix(w, suffix))
		}
	}

	return out
}
