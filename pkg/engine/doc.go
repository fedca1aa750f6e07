// Package engine implements the rule-based English linter behind the check
// endpoint.
//
// A Document tokenizes text into words, numbers, punctuation, whitespace
// and links, with every offset counted in code points. A LintGroup runs an
// ordered set of Linters over the document and returns Lints sorted by
// span start:
//
//	dict, err := engine.LoadCurated()
//	group := engine.NewCuratedLintGroup(dict, engine.American)
//	lints := group.Lint(engine.NewDocument("This is an test."))
//
// The Dictionary is immutable and shared by every request. A LintGroup
// carries per-call scratch state and is built fresh for each request.
package engine
