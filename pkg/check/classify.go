package check

import "strings"

// Classify maps an engine rule kind to a category. Any kind mentioning
// "spell" is a spelling finding; everything else is grammar.
func Classify(ruleID string) Category {
	if strings.Contains(strings.ToLower(ruleID), "spell") {
		return CategorySpelling
	}
	return CategoryGrammar
}
