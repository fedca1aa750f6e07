package engine

import (
	"strings"
	"unicode"
)

// TokenKind classifies a token.
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenNumber
	TokenPunct
	TokenSpace
	// TokenLink covers URLs and email addresses, which are never linted.
	TokenLink
)

// Token is a contiguous run of code points in a document.
type Token struct {
	Kind TokenKind
	Span Span
	Text string
}

// Document is tokenized text. Offsets are code points, never bytes.
type Document struct {
	text   string
	runes  []rune
	tokens []Token
}

// NewDocument tokenizes text.
func NewDocument(text string) *Document {
	runes := []rune(text)
	return &Document{
		text:   text,
		runes:  runes,
		tokens: tokenize(runes),
	}
}

// Text returns the source text.
func (d *Document) Text() string { return d.text }

// Len returns the length of the document in code points.
func (d *Document) Len() int { return len(d.runes) }

// Runes returns the decoded source text.
func (d *Document) Runes() []rune { return d.runes }

// Tokens returns the token stream.
func (d *Document) Tokens() []Token { return d.tokens }

// abbreviations do not end a sentence when followed by a period.
var abbreviations = map[string]struct{}{
	"dr": {}, "mr": {}, "mrs": {}, "ms": {}, "prof": {}, "st": {}, "jr": {},
	"sr": {}, "vs": {}, "etc": {}, "inc": {}, "ltd": {}, "co": {}, "no": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
	"approx": {}, "dept": {}, "est": {}, "fig": {}, "gen": {}, "gov": {},
	"lt": {}, "mt": {}, "sgt": {}, "capt": {}, "col": {}, "rev": {},
}

// IsSentenceStart reports whether the token at index i opens a sentence:
// it is the first content of the document or follows terminal punctuation
// that does not close an abbreviation or an initial.
func (d *Document) IsSentenceStart(i int) bool {
	j := i - 1
	for j >= 0 {
		tok := d.tokens[j]
		if tok.Kind == TokenSpace || (tok.Kind == TokenPunct && isOpener(tok.Text)) {
			j--
			continue
		}
		break
	}
	if j < 0 {
		return true
	}

	tok := d.tokens[j]
	if tok.Kind != TokenPunct {
		return false
	}
	switch tok.Text {
	case "!", "?", "…":
		return true
	case ".":
		if j == 0 {
			return true
		}
		prev := d.tokens[j-1]
		if prev.Kind != TokenWord {
			return true
		}
		if len([]rune(prev.Text)) == 1 {
			return false
		}
		_, abbr := abbreviations[strings.ToLower(prev.Text)]
		return !abbr
	}
	return false
}

// NextNonSpace returns the index of the first non-space token after i, or
// -1 when none exists.
func (d *Document) NextNonSpace(i int) int {
	for j := i + 1; j < len(d.tokens); j++ {
		if d.tokens[j].Kind != TokenSpace {
			return j
		}
	}
	return -1
}

func isOpener(s string) bool {
	switch s {
	case "(", "[", "{", "\"", "'", "“", "‘", "«":
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func tokenize(runes []rune) []Token {
	var tokens []Token
	emit := func(kind TokenKind, start, end int) {
		tokens = append(tokens, Token{
			Kind: kind,
			Span: Span{Start: start, End: end},
			Text: string(runes[start:end]),
		})
	}

	n := len(runes)
	i := 0
	for i < n {
		r := runes[i]

		if unicode.IsSpace(r) {
			j := i + 1
			for j < n && unicode.IsSpace(runes[j]) {
				j++
			}
			emit(TokenSpace, i, j)
			i = j
			continue
		}

		if i == 0 || unicode.IsSpace(runes[i-1]) {
			if end := linkEnd(runes, i); end > i {
				emit(TokenLink, i, end)
				i = end
				continue
			}
		}

		if unicode.IsDigit(r) {
			j := i + 1
			for j < n {
				if unicode.IsDigit(runes[j]) {
					j++
					continue
				}
				if strings.ContainsRune(".,:", runes[j]) && j+1 < n && unicode.IsDigit(runes[j+1]) {
					j += 2
					continue
				}
				break
			}
			// Ordinals and units ("15th", "3rd", "100km") stay numeric.
			for j < n && isWordRune(runes[j]) {
				j++
			}
			emit(TokenNumber, i, j)
			i = j
			continue
		}

		if isWordRune(r) {
			j := i + 1
			for j < n {
				if isWordRune(runes[j]) {
					j++
					continue
				}
				if isApostrophe(runes[j]) && j+1 < n && unicode.IsLetter(runes[j+1]) {
					j += 2
					continue
				}
				break
			}
			emit(TokenWord, i, j)
			i = j
			continue
		}

		emit(TokenPunct, i, i+1)
		i++
	}

	return tokens
}

// linkEnd returns the end of a URL or email address starting at i, or i
// when the whitespace-delimited chunk is neither. Trailing sentence
// punctuation is left outside the link.
func linkEnd(runes []rune, i int) int {
	j := i
	for j < len(runes) && !unicode.IsSpace(runes[j]) {
		j++
	}
	for j > i && strings.ContainsRune(".,;:!?)]}\"'’”", runes[j-1]) {
		j--
	}
	if j == i {
		return i
	}

	chunk := strings.ToLower(string(runes[i:j]))
	if strings.Contains(chunk, "://") || strings.HasPrefix(chunk, "www.") {
		return j
	}
	if isEmail(chunk) {
		return j
	}
	return i
}

func isEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
