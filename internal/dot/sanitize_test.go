package dot

import (
	"strings"
	"testing"
)

func TestSanitizeLabel_Escaping(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Account", "Account"},
		{"quote", `Say "Hi"`, `Say \"Hi\"`},
		{"pipe", "A|B", `A\|B`},
		{"newline", "Line1\nLine2", "Line1 Line2"},
		{"carriage return", "Line1\r\nLine2", "Line1  Line2"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLabel(tt.input, 25); got != tt.want {
				t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeLabel_TruncationBoundary(t *testing.T) {
	exactly25 := strings.Repeat("a", 25)
	if got := sanitizeLabel(exactly25, 25); got != exactly25 {
		t.Errorf("25-char label must pass through, got %q", got)
	}

	over := strings.Repeat("a", 26)
	want := strings.Repeat("a", 22) + "..."
	if got := sanitizeLabel(over, 25); got != want {
		t.Errorf("26-char label: got %q, want %q", got, want)
	}
}

func TestSanitizeLabel_TruncatesAfterEscaping(t *testing.T) {
	// 24 chars of text plus a pipe: escaping grows it past the limit.
	input := strings.Repeat("a", 24) + "|"
	got := sanitizeLabel(input, 25)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Escaped length must drive truncation, got %q", got)
	}
	if len([]rune(got)) != 25 {
		t.Errorf("Truncated label must be exactly 25 runes, got %d", len([]rune(got)))
	}
}
