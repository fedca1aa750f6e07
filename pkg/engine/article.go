package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// consonantSoundPrefixes start with a vowel letter but a consonant sound.
var consonantSoundPrefixes = []string{
	"uni", "usa", "use", "usi", "usu", "uten", "uti", "utop", "ura", "ure",
	"uri", "uro", "eu", "ewe", "ouija",
}

// vowelSoundExceptions start with a vowel letter and keep a vowel sound even
// though they match a consonant-sound prefix.
var vowelSoundExceptions = []string{"unin", "unim", "unid"}

// silentHPrefixes start with an unpronounced h.
var silentHPrefixes = []string{"hour", "honest", "honor", "honour", "heir", "herb"}

// Acronym letters whose spoken name starts with a vowel sound.
const vowelSoundLetters = "AEFHILMNORSX"

// ArticleAgreement flags "a" before a vowel sound and "an" before a
// consonant sound.
type ArticleAgreement struct{}

// Lint implements Linter.
func (ArticleAgreement) Lint(doc *Document) []Lint {
	var lints []Lint
	tokens := doc.Tokens()

	for i, tok := range tokens {
		if tok.Kind != TokenWord {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if lower != "a" && lower != "an" {
			continue
		}

		// Only an article separated from its word by whitespace is judged.
		if i+2 >= len(tokens) || tokens[i+1].Kind != TokenSpace || tokens[i+2].Kind != TokenWord {
			continue
		}
		next := tokens[i+2].Text

		vowel := startsWithVowelSound(next)
		switch {
		case lower == "a" && vowel:
			lints = append(lints, Lint{
				Span:        tok.Span,
				Kind:        KindWordChoice,
				Message:     `Use "an" instead of "a" before a word that starts with a vowel sound.`,
				Suggestions: []Suggestion{Replace(matchCase(tok.Text, "an"))},
			})
		case lower == "an" && !vowel:
			lints = append(lints, Lint{
				Span:        tok.Span,
				Kind:        KindWordChoice,
				Message:     `Use "a" instead of "an" before a word that starts with a consonant sound.`,
				Suggestions: []Suggestion{Replace(matchCase(tok.Text, "a"))},
			})
		}
	}

	return lints
}

func startsWithVowelSound(word string) bool {
	if isAcronym(word) {
		first, _ := utf8.DecodeRuneInString(word)
		return strings.ContainsRune(vowelSoundLetters, first)
	}

	// Decomposing strips accents so that "élan" starts with 'e'.
	lower := strings.ToLower(norm.NFD.String(word))

	switch lower {
	case "one", "once", "oneself":
		return false
	}
	for _, p := range silentHPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, p := range vowelSoundExceptions {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, p := range consonantSoundPrefixes {
		if strings.HasPrefix(lower, p) {
			return false
		}
	}

	first, _ := utf8.DecodeRuneInString(lower)
	return strings.ContainsRune("aeiou", first)
}

func isAcronym(word string) bool {
	letters := 0
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 2
}

// matchCase renders replacement in the letter case of original.
func matchCase(original, replacement string) string {
	if isAcronym(original) {
		return strings.ToUpper(replacement)
	}
	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(replacement)
		return string(unicode.ToUpper(r)) + replacement[size:]
	}
	return replacement
}
