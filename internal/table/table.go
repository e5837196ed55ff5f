package table

import (
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wrap"
	"github.com/rprtr258/fun"
	"github.com/rprtr258/scuf"
)

type Table struct {
	Headers               []string
	Rows                  [][]string
	HaveInnerRowsDividers bool
}

const (
	E = 1 << iota
	W
	S
	N
)

// NSWE
var borders = [1 << 4]string{
	N | S | W | E: scuf.String("┼", scuf.FgWhite),
	N | S | E:     scuf.String("├", scuf.FgWhite),
	N | S | W:     scuf.String("┤", scuf.FgWhite),
	N | W | E:     scuf.String("┴", scuf.FgWhite),
	S | W | E:     scuf.String("┬", scuf.FgWhite),
	N | E:         scuf.String("╰", scuf.FgWhite),
	N | W:         scuf.String("╯", scuf.FgWhite),
	S | W:         scuf.String("╮", scuf.FgWhite),
	S | E:         scuf.String("╭", scuf.FgWhite),
	W | E:         scuf.String("─", scuf.FgWhite),
	N | S:         scuf.String("│", scuf.FgWhite),
}

// widths of columns content, shrunk proportionally to fit into w
func widths(t Table, w int) []int {
	res := fun.Map[int](func(header string, i int) int {
		width := ansi.PrintableRuneWidth(header)
		for _, row := range t.Rows {
			width = max(width, ansi.PrintableRuneWidth(row[i]))
		}
		return width
	}, t.Headers...)

	total := 0
	for _, width := range res {
		total += width
	}

	// one border before each column and one after the last
	if content := w - len(t.Headers) - 1; w > 0 && total > content && content > 0 {
		res = fun.Map[int](func(width int) int {
			return max(1, width*content/total)
		}, res...)
	}

	return res
}

func line(cols []int, left, middle, right int) string {
	parts := fun.Map[string](func(col int) string {
		return strings.Repeat(borders[W|E], col)
	}, cols...)
	return borders[left] + strings.Join(parts, borders[middle]) + borders[right]
}

func renderRow(cols []int, cells []string) []string {
	wrapped := fun.Map[[]string](func(cell string, i int) []string {
		return strings.Split(wrap.String(cell, cols[i]), "\n")
	}, cells...)

	height := 0
	for _, lines := range wrapped {
		height = max(height, len(lines))
	}

	res := make([]string, height)
	for k := range res {
		parts := fun.Map[string](func(lines []string, i int) string {
			part := ""
			if k < len(lines) {
				part = lines[k]
			}
			return padding.String(part, uint(cols[i])) //nolint:gosec // widths are positive
		}, wrapped...)
		res[k] = borders[N|S] + strings.Join(parts, borders[N|S]) + borders[N|S]
	}
	return res
}

// Render table to fit into terminal of width w. Non-positive w disables fitting.
func Render(t Table, w int) string {
	cols := widths(t, w)

	lines := []string{line(cols, S|E, S|W|E, S|W)}
	lines = append(lines, renderRow(cols, t.Headers)...)
	lines = append(lines, line(cols, N|S|E, N|S|W|E, N|S|W))
	for i, row := range t.Rows {
		lines = append(lines, renderRow(cols, row)...)
		if i < len(t.Rows)-1 && t.HaveInnerRowsDividers {
			lines = append(lines, line(cols, N|S|E, N|S|W|E, N|S|W))
		}
	}
	lines = append(lines, line(cols, N|E, N|W|E, N|W))

	return strings.Join(lines, "\n")
}
