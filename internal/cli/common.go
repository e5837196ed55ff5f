package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/rprtr258/mng/internal/errors"
	"github.com/rprtr258/mng/internal/export"
)

// target is an output file together with the way to fill it
type target struct {
	filename string
	write    func(io.Writer) error
}

// confirmOverwrite asks user whether existing file should be overwritten
var confirmOverwrite = func(filename string) (bool, error) {
	var result bool
	if err := huh.NewConfirm().
		Title(fmt.Sprintf("File %q already exists, overwrite it?", filename)).
		Affirmative("Overwrite").
		Negative("Skip").
		Inline(true).
		Value(&result).
		WithTheme(theme()).
		Run(); err != nil {
		return false, errors.Wrap(err, "confirm overwrite")
	}
	return result, nil
}

// saveTargets writes all targets with non-empty filenames. If interactive,
// existing files are overwritten only after confirmation.
func saveTargets(interactive bool, targets ...target) error {
	for _, t := range targets {
		if t.filename == "" {
			continue
		}

		if interactive {
			exists, err := export.Exists(_fs, t.filename)
			if err != nil {
				return err
			}

			if exists {
				ok, err := confirmOverwrite(t.filename)
				if err != nil {
					return err
				}
				if !ok {
					log.Info().Str("file", t.filename).Msg("skipped")
					continue
				}
			}
		}

		if err := export.SaveFile(_fs, t.filename, t.write); err != nil {
			return errors.Wrapf(err, "save %s", t.filename)
		}

		log.Debug().Str("file", t.filename).Msg("written")
	}

	return nil
}

// terminalWidth of stdout, zero if stdout is not a terminal
func terminalWidth() int {
	fd := int(os.Stdout.Fd()) //nolint:gosec // fd fits into int
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
