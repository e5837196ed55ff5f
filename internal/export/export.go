// Package export renders generated names to text, CSV and JSON.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/rprtr258/mng/internal/core"
	"github.com/rprtr258/mng/internal/errors"
)

// WriteText writes one "first last" name per line.
func WriteText(w io.Writer, pairs []core.Pair) error {
	bw := bufio.NewWriter(w)
	for _, pair := range pairs {
		if _, err := bw.WriteString(pair.String() + "\n"); err != nil {
			return errors.Wrap(err, "write name")
		}
	}
	return bw.Flush()
}

// WriteCSV writes first/last columns with a header row.
func WriteCSV(w io.Writer, pairs []core.Pair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"first", "last"}); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	for _, pair := range pairs {
		if err := cw.Write([]string{pair.First, pair.Last}); err != nil {
			return errors.Wrapf(err, "write csv row %q", pair.String())
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes names as an indented array of {first, last} objects.
func WriteJSON(w io.Writer, pairs []core.Pair) error {
	if pairs == nil {
		pairs = []core.Pair{}
	}

	jsonData, errMarshal := json.MarshalIndent(pairs, "", "  ")
	if errMarshal != nil {
		return errors.Wrap(errMarshal, "marshal names to json")
	}

	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return errors.Wrap(err, "write json")
	}

	return nil
}

// WriteList writes single pool as space-separated names, each followed by space.
func WriteList(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)
	for _, name := range names {
		if _, err := bw.WriteString(name + " "); err != nil {
			return errors.Wrap(err, "write name")
		}
	}
	return bw.Flush()
}

// SaveFile creates or truncates filename on fs and fills it using write.
func SaveFile(fs afero.Fs, filename string, write func(io.Writer) error) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create dir %s", dir)
		}
	}

	f, err := fs.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open %s", filename)
	}

	if errWrite := write(f); errWrite != nil {
		_ = f.Close()
		return errors.Wrapf(errWrite, "write %s", filename)
	}

	if errClose := f.Close(); errClose != nil {
		return errors.Wrapf(errClose, "close %s", filename)
	}

	return nil
}

// Exists reports whether filename exists on fs.
func Exists(fs afero.Fs, filename string) (bool, error) {
	ok, err := afero.Exists(fs, filename)
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", filename)
	}
	return ok, nil
}
