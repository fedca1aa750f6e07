package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lexis-hq/proofread/pkg/check"
)

// OutputFormat represents the output format for check results.
type OutputFormat string

const (
	// FormatText prints one finding per line (default).
	FormatText OutputFormat = "text"
	// FormatJSON prints the response exactly as the HTTP API returns it.
	FormatJSON OutputFormat = "json"
	// FormatCSV prints one row per finding with a header row.
	FormatCSV OutputFormat = "csv"
)

// Formatter writes the findings for text to w.
type Formatter interface {
	FormatTo(w io.Writer, text string, resp *check.Response) error
}

// TextFormatter prints "line:col category rule message -> replacements".
type TextFormatter struct {
	// Name prefixes every line when set, like a compiler diagnostic.
	Name string
}

// FormatTo implements Formatter.
func (f *TextFormatter) FormatTo(w io.Writer, text string, resp *check.Response) error {
	pos := newPositions(text)
	for _, m := range resp.Matches {
		line, col := pos.at(m.Offset)

		var b strings.Builder
		if f.Name != "" {
			b.WriteString(f.Name)
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%d:%d %s %s %s", line, col, m.Rule.Category, m.Rule.ID, m.Message)
		if len(m.Replacements) > 0 {
			b.WriteString(" -> ")
			b.WriteString(strings.Join(m.Replacements, ", "))
		}
		b.WriteByte('\n')

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter prints the wire response.
type JSONFormatter struct {
	Indent bool
}

// FormatTo implements Formatter.
func (f *JSONFormatter) FormatTo(w io.Writer, _ string, resp *check.Response) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(resp)
}

// CSVFormatter prints one row per finding.
type CSVFormatter struct{}

var csvHeaders = []string{"line", "column", "offset", "length", "category", "rule", "message", "replacements"}

// FormatTo implements Formatter.
func (f *CSVFormatter) FormatTo(w io.Writer, text string, resp *check.Response) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(csvHeaders); err != nil {
		return err
	}

	pos := newPositions(text)
	for _, m := range resp.Matches {
		line, col := pos.at(m.Offset)
		row := []string{
			strconv.Itoa(line),
			strconv.Itoa(col),
			strconv.Itoa(m.Offset),
			strconv.Itoa(m.Length),
			string(m.Rule.Category),
			m.Rule.ID,
			m.Message,
			strings.Join(m.Replacements, "|"),
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// NewFormatter creates a formatter for format.
func NewFormatter(format OutputFormat) (Formatter, error) {
	switch format {
	case FormatText, "":
		return &TextFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{Indent: true}, nil
	case FormatCSV:
		return &CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want text, json or csv)", format)
	}
}

// positions maps code-point offsets to 1-based line and column numbers.
type positions struct {
	// lineStarts holds the code-point offset of every line start.
	lineStarts []int
}

func newPositions(text string) positions {
	starts := []int{0}
	i := 0
	for _, r := range text {
		i++
		if r == '\n' {
			starts = append(starts, i)
		}
	}
	return positions{lineStarts: starts}
}

func (p positions) at(offset int) (line, col int) {
	line = 1
	for i, start := range p.lineStarts {
		if start > offset {
			break
		}
		line = i + 1
	}
	return line, offset - p.lineStarts[line-1] + 1
}
