package utils

import (
	"strings"
	"testing"
)

func TestRenderInline_StripsMarks(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		keeps   []string
		removes []string
	}{
		{
			name:    "bold",
			in:      "this is **important** text",
			keeps:   []string{"important"},
			removes: []string{"**"},
		},
		{
			name:    "inline code",
			in:      "run `go test` first",
			keeps:   []string{"go test"},
			removes: []string{"`"},
		},
		{
			name:    "italic",
			in:      "an _emphasized_ word",
			keeps:   []string{"emphasized"},
			removes: []string{"_"},
		},
		{
			name:  "plain text untouched",
			in:    "nothing special here",
			keeps: []string{"nothing special here"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderInline(tc.in)
			for _, want := range tc.keeps {
				if !strings.Contains(got, want) {
					t.Errorf("RenderInline(%q) lost %q", tc.in, want)
				}
			}
			for _, mark := range tc.removes {
				if strings.Contains(got, mark) {
					t.Errorf("RenderInline(%q) kept marker %q", tc.in, mark)
				}
			}
		})
	}
}

func TestRenderMarkdownLine_Prefixes(t *testing.T) {
	if got := RenderMarkdownLine("- item one"); !strings.Contains(got, "• item one") {
		t.Errorf("list line = %q, want bullet", got)
	}
	if got := RenderMarkdownLine("# Heading"); strings.Contains(got, "#") {
		t.Errorf("heading line = %q, want marks stripped", got)
	}
}
