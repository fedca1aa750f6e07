package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"lexis-hq/proofread/pkg/check"
)

func sampleResponse() *check.Response {
	return &check.Response{
		Matches: []check.Match{
			{
				Message:      "Use a instead of an.",
				Offset:       8,
				Length:       2,
				Replacements: []string{"a"},
				Rule:         check.Rule{ID: "WordChoice", Category: check.CategoryGrammar},
			},
			{
				Message:      `Did you mean to spell "speling" this way?`,
				Offset:       19,
				Length:       7,
				Replacements: []string{"spelling", "spieling"},
				Rule:         check.Rule{ID: "Spelling", Category: check.CategorySpelling},
			},
			{
				Message: `Remove the space before ",".`,
				Offset:  35,
				Length:  1,
				Rule:    check.Rule{ID: "Formatting", Category: check.CategoryGrammar},
			},
		},
	}
}

const sampleText = "This is an test.\nA speling here.\nHi , there."

func TestTextFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&TextFormatter{}).FormatTo(buf, sampleText, sampleResponse()); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	want := strings.Join([]string{
		"1:9 grammar WordChoice Use a instead of an. -> a",
		`2:3 spelling Spelling Did you mean to spell "speling" this way? -> spelling, spieling`,
		`3:3 grammar Formatting Remove the space before ",".`,
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("FormatTo() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTextFormatterName(t *testing.T) {
	buf := &bytes.Buffer{}
	resp := &check.Response{Matches: sampleResponse().Matches[:1]}
	if err := (&TextFormatter{Name: "notes.txt"}).FormatTo(buf, sampleText, resp); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "notes.txt:1:9 ") {
		t.Errorf("expected file name prefix, got %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	tests := []struct {
		name   string
		indent bool
	}{
		{name: "compact", indent: false},
		{name: "indented", indent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			resp := sampleResponse()
			if err := (&JSONFormatter{Indent: tt.indent}).FormatTo(buf, sampleText, resp); err != nil {
				t.Fatalf("FormatTo() error = %v", err)
			}

			if got := strings.Contains(buf.String(), "\n  "); got != tt.indent {
				t.Errorf("indentation = %v, want %v", got, tt.indent)
			}

			var decoded check.Response
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if len(decoded.Matches) != len(resp.Matches) {
				t.Errorf("expected %d matches, got %d", len(resp.Matches), len(decoded.Matches))
			}
		})
	}
}

func TestCSVFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := (&CSVFormatter{}).FormatTo(buf, sampleText, sampleResponse()); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	rows, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "line" {
		t.Errorf("expected header row, got %v", rows[0])
	}
	if got := rows[2]; got[0] != "2" || got[1] != "3" || got[7] != "spelling|spieling" {
		t.Errorf("unexpected row %v", got)
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  OutputFormat
		want    string
		wantErr bool
	}{
		{format: FormatText, want: "*cli.TextFormatter"},
		{format: "", want: "*cli.TextFormatter"},
		{format: FormatJSON, want: "*cli.JSONFormatter"},
		{format: FormatCSV, want: "*cli.CSVFormatter"},
		{format: "junit", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f, err := NewFormatter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFormatter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := fmt.Sprintf("%T", f); got != tt.want {
				t.Errorf("NewFormatter(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	pos := newPositions("héllo\nwörld\n\nend")

	tests := []struct {
		offset int
		line   int
		col    int
	}{
		{offset: 0, line: 1, col: 1},
		{offset: 4, line: 1, col: 5},
		{offset: 6, line: 2, col: 1},
		{offset: 8, line: 2, col: 3},
		{offset: 12, line: 3, col: 1},
		{offset: 15, line: 4, col: 3},
	}

	for _, tt := range tests {
		line, col := pos.at(tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("at(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.line, tt.col)
		}
	}
}
