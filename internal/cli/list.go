package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rprtr258/mng/internal/core/names"
	"github.com/rprtr258/mng/internal/errors"
	"github.com/rprtr258/mng/internal/export"
)

var _cmdList = func() *cobra.Command {
	var out string
	var interactive bool
	cmd := &cobra.Command{
		Use:               "list {mfirst|ffirst|nlast|clast}",
		Short:             "print or export a whole name list",
		Long:              "Print one name list, one name per line, or write it space-separated to file with --out.",
		Aliases:           []string{"l", "ls"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeArgListKind,
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := names.ParseListKind(args[0])
			if err != nil {
				return err
			}

			pool, err := names.List(kind)
			if err != nil {
				return errors.Wrapf(err, "list %s", kind)
			}

			if out != "" {
				return saveTargets(interactive, target{
					filename: out,
					write:    func(w io.Writer) error { return export.WriteList(w, pool) },
				})
			}

			for _, name := range pool {
				fmt.Println(name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write space-separated names to this text file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt before overwriting existing file")
	return cmd
}()
