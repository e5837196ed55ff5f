package table

import (
	"strings"
	"testing"

	"github.com/acarl005/stripansi"
	"github.com/muesli/ansi"
	"github.com/shoenig/test"
	"github.com/shoenig/test/must"
)

func TestRender(t *testing.T) {
	got := Render(Table{
		Headers: []string{"first", "last"},
		Rows: [][]string{
			{"Ælfred", "Godwinson"},
			{"Edith", "Smith"},
		},
	}, 0)

	must.EqOp(t, strings.Join([]string{
		"╭──────┬─────────╮",
		"│first │last     │",
		"├──────┼─────────┤",
		"│Ælfred│Godwinson│",
		"│Edith │Smith    │",
		"╰──────┴─────────╯",
	}, "\n"), stripansi.Strip(got))
}

func TestRenderDividers(t *testing.T) {
	got := Render(Table{
		Headers:               []string{"a"},
		Rows:                  [][]string{{"x"}, {"y"}},
		HaveInnerRowsDividers: true,
	}, 0)

	must.EqOp(t, strings.Join([]string{
		"╭─╮",
		"│a│",
		"├─┤",
		"│x│",
		"├─┤",
		"│y│",
		"╰─╯",
	}, "\n"), stripansi.Strip(got))
}

func TestRenderFitsWidth(t *testing.T) {
	const width = 12
	got := Render(Table{
		Headers: []string{"first", "last"},
		Rows:    [][]string{{"Ælfred", "Godwinson"}},
	}, width)

	lines := strings.Split(got, "\n")
	test.Greater(t, 5, len(lines))
	for _, line := range lines {
		test.LessEq(t, width, ansi.PrintableRuneWidth(line))
	}
}
