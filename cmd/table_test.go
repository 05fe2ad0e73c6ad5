package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableAligns(t *testing.T) {
	var buf bytes.Buffer
	tb := newTable(&buf, "Level", "Score")
	tb.row("A1", "7/10")
	tb.row("B2", "10/10", "ignored")
	if err := tb.flush(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	col := strings.Index(lines[0], "Score")
	for _, l := range lines[2:] {
		if strings.Index(l, "/10") < col {
			t.Errorf("score column not aligned in %q", l)
		}
	}
	if strings.Contains(buf.String(), "ignored") {
		t.Error("extra cells should be dropped")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"gemini-2.5-flash", 6, "gemin…"},
		{"élan", 4, "élan"},
		{"élan", 3, "él…"},
		{"élan", 1, "é"},
		{"élan", 0, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		if n := len([]rune(got)); n > max(tt.n, 0) {
			t.Errorf("truncate(%q, %d) is %d runes wide", tt.in, tt.n, n)
		}
	}
}

func TestFormatCost(t *testing.T) {
	if got := formatCost(0.0042); got != "$0.0042" {
		t.Errorf("small cost = %q", got)
	}
	if got := formatCost(1.5); got != "$1.50" {
		t.Errorf("cost = %q", got)
	}
}
