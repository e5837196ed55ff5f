package export

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/rprtr258/fun"
	"github.com/rprtr258/scuf"

	"github.com/rprtr258/mng/internal/core"
	"github.com/rprtr258/mng/internal/errors"
	"github.com/rprtr258/mng/internal/table"
)

const (
	FormatText    = "text"
	FormatTable   = "table"
	FormatCompact = "compact"
	FormatCSV     = "csv"
	FormatJSON    = "json"
)

var Formats = []string{
	FormatText,
	FormatTable,
	FormatCompact,
	FormatCSV,
	FormatJSON,
}

// Writer renders names to w.
type Writer func(w io.Writer, pairs []core.Pair) error

func renderTable(width int, showRowDividers bool) Writer {
	return func(w io.Writer, pairs []core.Pair) error {
		t := table.Table{
			Headers: fun.Map[string](func(col string) string {
				return scuf.String(col, scuf.ModBold)
			}, "#", "first", "last"),
			Rows: fun.Map[[]string](func(pair core.Pair, i int) []string {
				return []string{
					scuf.String(fmt.Sprint(i+1), scuf.FgCyan),
					pair.First,
					pair.Last,
				}
			}, pairs...),
			HaveInnerRowsDividers: showRowDividers,
		}

		_, err := fmt.Fprintln(w, table.Render(t, width))
		return err
	}
}

// ParseFormat returns writer for named format. Any other string is
// rendered as Go template with core.Pair, once per name.
// Width is used to fit tables into terminal, non-positive means unlimited.
func ParseFormat(format string, width int) (Writer, error) {
	switch format {
	case FormatText:
		return WriteText, nil
	case FormatTable:
		return renderTable(width, true), nil
	case FormatCompact:
		return renderTable(width, false), nil
	case FormatCSV:
		return WriteCSV, nil
	case FormatJSON:
		return WriteJSON, nil
	default:
		trimmedFormat := strings.Trim(format, " ")
		if trimmedFormat == "" {
			return nil, errors.New("empty format")
		}

		finalFormat := strings.
			NewReplacer(
				`\t`, "\t",
				`\n`, "\n",
			).
			Replace(trimmedFormat)

		tmpl, errParse := template.New("name").Parse(finalFormat)
		if errParse != nil {
			return nil, errors.Wrapf(errParse, "parse template")
		}

		return func(w io.Writer, pairs []core.Pair) error {
			var sb strings.Builder
			for _, pair := range pairs {
				if errRender := tmpl.Execute(&sb, pair); errRender != nil {
					return errors.Wrapf(errRender, "format name, format=%q: %v", format, pair)
				}

				sb.WriteRune('\n')
			}

			_, err := io.WriteString(w, sb.String())
			return err
		}, nil
	}
}
