package check

// ContextRadius is the number of code points kept on each side of a match.
const ContextRadius = 20

// Localize returns the context window around the code point span
// [start, end) of text. Spans are clamped to the text.
func Localize(text []rune, start, end int) Context {
	n := len(text)
	start = clamp(start, 0, n)
	end = clamp(end, start, n)

	ctxStart := max(0, start-ContextRadius)
	ctxEnd := min(n, end+ContextRadius)

	return Context{
		Text:   string(text[ctxStart:ctxEnd]),
		Offset: start - ctxStart,
		Length: end - start,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
