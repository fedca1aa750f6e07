package check

import "time"

// Assemble builds the response for text from findings in engine order.
// Findings whose category is disabled by opts are dropped.
func Assemble(text string, findings []Finding, opts *Options, elapsed time.Duration) *Response {
	runes := []rune(text)
	matches := make([]Match, 0, len(findings))

	for _, f := range findings {
		category := Classify(f.RuleID)
		if !opts.Enabled(category) {
			continue
		}

		start := clamp(f.Start, 0, len(runes))
		end := clamp(f.End, start, len(runes))

		replacements := f.Replacements
		if replacements == nil {
			replacements = []string{}
		}

		matches = append(matches, Match{
			Message:      f.Message,
			Offset:       start,
			Length:       end - start,
			Replacements: replacements,
			Rule:         Rule{ID: f.RuleID, Category: category},
			Context:      Localize(runes, start, end),
		})
	}

	return &Response{
		Matches: matches,
		Metrics: Metrics{ProcessingTimeMs: max(0, elapsed.Milliseconds())},
	}
}
