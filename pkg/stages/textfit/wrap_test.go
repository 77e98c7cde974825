package textfit

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

// runeWidth measures every rune as 10px.
func runeWidth(line string) float64 {
	return float64(utf8.RuneCountInString(line)) * 10
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		expected []string
	}{
		{
			name:     "fits on one line",
			text:     "short text",
			maxWidth: 1000,
			expected: []string{"short text"},
		},
		{
			name:     "collapses whitespace runs",
			text:     "  lots   of \t space  ",
			maxWidth: 1000,
			expected: []string{"lots of space"},
		},
		{
			name:     "blank line preserved",
			text:     "line1\n\nline2",
			maxWidth: 1000,
			expected: []string{"line1", "", "line2"},
		},
		{
			name:     "CRLF breaks",
			text:     "one\r\ntwo\r\n\r\nthree",
			maxWidth: 1000,
			expected: []string{"one", "two", "", "three"},
		},
		{
			name:     "leading and trailing breaks",
			text:     "\ntext\n",
			maxWidth: 1000,
			expected: []string{"", "text", ""},
		},
		{
			name:     "whitespace-only paragraph is one empty line",
			text:     "a\n   \nb",
			maxWidth: 1000,
			expected: []string{"a", "", "b"},
		},
		{
			name:     "greedy wrapping",
			text:     "aaa bbb ccc ddd",
			maxWidth: 70, // "aaa bbb" = 70
			expected: []string{"aaa bbb", "ccc ddd"},
		},
		{
			name:     "long word stays whole on its own line",
			text:     "a verylongword b",
			maxWidth: 50,
			expected: []string{"a", "verylongword", "b"},
		},
		{
			name:     "long first word",
			text:     "verylongword",
			maxWidth: 10,
			expected: []string{"verylongword"},
		},
		{
			name:     "empty text",
			text:     "",
			maxWidth: 100,
			expected: nil,
		},
		{
			name:     "only breaks",
			text:     "\n\n",
			maxWidth: 100,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.maxWidth, runeWidth)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWrap_BlankLineCount(t *testing.T) {
	for n := 1; n <= 5; n++ {
		text := "top" + strings.Repeat("\n", n+1) + "bottom"
		got := Wrap(text, 1000, runeWidth)
		if len(got) != n+2 {
			t.Fatalf("n=%d: expected %d lines, got %q", n, n+2, got)
		}
		if got[0] != "top" || got[len(got)-1] != "bottom" {
			t.Errorf("n=%d: unexpected ends %q", n, got)
		}
		for i := 1; i <= n; i++ {
			if got[i] != "" {
				t.Errorf("n=%d: line %d should be empty, got %q", n, i, got[i])
			}
		}
	}
}

func TestWrap_LinesRespectWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog and keeps running far away"
	for _, width := range []float64{50, 90, 120, 200, 400} {
		lines := Wrap(text, width, runeWidth)
		for _, line := range lines {
			if runeWidth(line) > width && strings.Contains(line, " ") {
				t.Errorf("width %v: multi-word line %q exceeds width", width, line)
			}
		}
		if strings.Join(lines, " ") != text {
			t.Errorf("width %v: words lost or reordered: %q", width, lines)
		}
	}
}
