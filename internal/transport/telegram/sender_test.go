package telegram

import (
	"strings"
	"testing"
)

func TestSplitHTML(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxLen   int
		expected int // chunk count
	}{
		{name: "short text stays whole", text: "hello", maxLen: 10, expected: 1},
		{name: "exact limit stays whole", text: strings.Repeat("a", 10), maxLen: 10, expected: 1},
		{name: "long text splits", text: strings.Repeat("a", 25), maxLen: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := splitHTML(tt.text, tt.maxLen)
			if len(chunks) != tt.expected {
				t.Fatalf("got %d chunks, want %d", len(chunks), tt.expected)
			}
			for i, chunk := range chunks {
				if len(chunk) > tt.maxLen {
					t.Errorf("chunk %d exceeds limit: %d > %d", i, len(chunk), tt.maxLen)
				}
			}
		})
	}
}

func TestSplitHTMLPrefersNewlines(t *testing.T) {
	text := strings.Repeat("x", 8) + "\n" + strings.Repeat("y", 8)
	chunks := splitHTML(text, 10)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0] != strings.Repeat("x", 8) {
		t.Errorf("first chunk = %q", chunks[0])
	}
}
