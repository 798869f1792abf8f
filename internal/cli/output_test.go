package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/numfield/internal/numfmt"
	"github.com/agbru/numfield/internal/ui"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want string
	}{
		{
			name: "plain value",
			line: Line{Input: "123", Status: numfmt.ParseOK, Result: numfmt.Result{Display: "123"}},
			want: "123",
		},
		{
			name: "with abbreviation",
			line: Line{Input: "1234567", Status: numfmt.ParseOK, Result: numfmt.Result{Display: "1 234 567", Abbrev: "1.23 M"}},
			want: "1 234 567 (1.23 M)",
		},
		{
			name: "clamped marker",
			line: Line{Input: "99999999999", Status: numfmt.ParseClamped, Result: numfmt.Result{Display: "2 147 483 647", Abbrev: "2.15 B"}},
			want: "2 147 483 647 (2.15 B) [clamped]",
		},
		{
			name: "malformed marker",
			line: Line{Input: "abc", Status: numfmt.ParseMalformed, Result: numfmt.Result{Display: "0"}},
			want: "0 [malformed]",
		},
		{
			name: "empty input formats the zero",
			line: Line{Input: "", Status: numfmt.ParseEmpty, Result: numfmt.Result{Display: "0"}},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLine(tt.line); got != tt.want {
				t.Errorf("FormatLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayLine_Quiet(t *testing.T) {
	var buf bytes.Buffer
	l := Line{Input: "1234567", Status: numfmt.ParseOK, Result: numfmt.Result{Display: "1 234 567", Abbrev: "1.23 M"}}

	DisplayLine(&buf, l, true)
	if got := buf.String(); got != "1 234 567\n" {
		t.Errorf("quiet output = %q, want bare display", got)
	}
}

func TestDisplayLine_Colored(t *testing.T) {
	prev := ui.GetCurrentTheme()
	ui.SetTheme("none")
	t.Cleanup(func() { ui.SetTheme(prev.Name) })

	var buf bytes.Buffer
	l := Line{Input: "x", Status: numfmt.ParseMalformed, Result: numfmt.Result{Display: "0"}}
	DisplayLine(&buf, l, false)

	out := buf.String()
	if !strings.Contains(out, "[malformed]") {
		t.Errorf("output should mark malformed input, got %q", out)
	}
}
