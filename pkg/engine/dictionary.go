package engine

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

//go:embed words.txt
var curatedWords string

// Dictionary is an immutable set of case-folded, NFC-normalized words.
// It is safe for concurrent use once constructed.
type Dictionary struct {
	// rank is the position of a word in its source list; lower ranks are
	// more common and win suggestion ties.
	rank     map[string]int
	byLength map[int][]string
}

// LoadCurated builds the curated American English dictionary, merged with
// any extra word lists.
func LoadCurated(extra ...io.Reader) (*Dictionary, error) {
	sources := append([]io.Reader{strings.NewReader(curatedWords)}, extra...)
	return NewDictionary(sources...)
}

// NewDictionary builds a dictionary from whitespace-separated word lists.
// Lines starting with '#' are comments. Earlier words rank as more common.
func NewDictionary(sources ...io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		rank:     make(map[string]int),
		byLength: make(map[int][]string),
	}
	fold := cases.Fold()

	for i, src := range sources {
		scanner := bufio.NewScanner(src)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			for _, word := range strings.Fields(line) {
				d.add(normalizeWord(fold, word))
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read word list %d: %w", i, err)
		}
	}

	return d, nil
}

func (d *Dictionary) add(word string) {
	if _, ok := d.rank[word]; ok {
		return
	}
	d.rank[word] = len(d.rank)
	n := utf8.RuneCountInString(word)
	d.byLength[n] = append(d.byLength[n], word)
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.rank)
}

// Contains reports whether the already folded word is present.
func (d *Dictionary) Contains(folded string) bool {
	_, ok := d.rank[folded]
	return ok
}

// Suggest returns up to limit dictionary words close to the folded word,
// nearest edit distance first, then the more common word.
func (d *Dictionary) Suggest(folded string, limit int) []string {
	n := utf8.RuneCountInString(folded)
	maxDistance := 2
	if n <= 4 {
		maxDistance = 1
	}

	type candidate struct {
		word     string
		distance int
		rank     int
	}
	var candidates []candidate

	first, _ := utf8.DecodeRuneInString(folded)
	for l := n - maxDistance; l <= n+maxDistance; l++ {
		for _, word := range d.byLength[l] {
			dist := levenshtein.ComputeDistance(folded, word)
			if dist == 0 || dist > maxDistance {
				continue
			}
			// Typos rarely hit the first letter; prefer candidates that share it.
			if r, _ := utf8.DecodeRuneInString(word); r != first {
				dist++
				if dist > maxDistance {
					continue
				}
			}
			candidates = append(candidates, candidate{word: word, distance: dist, rank: d.rank[word]})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].rank < candidates[j].rank
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.word
	}
	return words
}

// normalizeWord folds case, composes accents and unifies apostrophes.
func normalizeWord(fold cases.Caser, word string) string {
	word = strings.ReplaceAll(word, "’", "'")
	return norm.NFC.String(fold.String(word))
}
