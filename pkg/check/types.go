package check

// Category is the coarse class of a finding.
type Category string

const (
	CategorySpelling Category = "spelling"
	CategoryGrammar  Category = "grammar"
)

// DefaultLanguage is reported when a request omits language.
const DefaultLanguage = "en-US"

// Request is the body of POST /v1/check.
type Request struct {
	Text string `json:"text"`

	// Language is informational; the service checks against its
	// configured dialect.
	Language string `json:"language,omitempty"`

	Options *Options `json:"options,omitempty"`
}

// Options toggle finding categories. Absent toggles default to true.
// A false toggle removes that category from the response; the toggles
// are applied as filters, not recorded as hints.
type Options struct {
	Spelling *bool `json:"spelling,omitempty"`
	Grammar  *bool `json:"grammar,omitempty"`
}

// Enabled reports whether findings of category c are requested.
func (o *Options) Enabled(c Category) bool {
	if o == nil {
		return true
	}
	switch c {
	case CategorySpelling:
		return o.Spelling == nil || *o.Spelling
	case CategoryGrammar:
		return o.Grammar == nil || *o.Grammar
	}
	return true
}

// Response is the body of a successful check.
type Response struct {
	Matches []Match `json:"matches"`
	Metrics Metrics `json:"metrics"`
}

// Match is a single finding. Offset and Length are code points into the
// request text.
type Match struct {
	Message      string   `json:"message"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Replacements []string `json:"replacements"`
	Rule         Rule     `json:"rule"`
	Context      Context  `json:"context"`
}

// Rule identifies the engine rule that produced a match.
type Rule struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
}

// Context is a window of surrounding text. Offset and Length locate the
// match inside Text, in code points.
type Context struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// Metrics reports per-request processing cost.
type Metrics struct {
	ProcessingTimeMs int64 `json:"processingTimeMs"`
}

// Finding is a raw engine result before localization and classification.
type Finding struct {
	Message      string
	Start        int
	End          int
	Replacements []string
	RuleID       string
}
