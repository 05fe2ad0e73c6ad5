package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// table writes aligned columns with a rule under the header.
type table struct {
	tw   *tabwriter.Writer
	cols int
}

func newTable(w io.Writer, headers ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0), cols: len(headers)}
	t.row(toAny(headers)...)
	rules := make([]any, len(headers))
	for i, h := range headers {
		rules[i] = strings.Repeat("─", max(len([]rune(h)), 4))
	}
	t.row(rules...)
	return t
}

func (t *table) row(cells ...any) {
	parts := make([]string, t.cols)
	for i := range parts {
		if i < len(cells) {
			parts[i] = fmt.Sprint(cells[i])
		}
	}
	fmt.Fprintln(t.tw, strings.Join(parts, "\t"))
}

func (t *table) flush() error { return t.tw.Flush() }

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func stamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// truncate shortens s to at most n runes, the trailing ellipsis included.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-1]) + "…"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
