package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rprtr258/mng/internal/config"
	"github.com/rprtr258/mng/internal/errors"
)

var (
	_fs  afero.Fs = afero.NewOsFs()
	_cfg          = config.DefaultConfig
)

func loadConfig(*cobra.Command, []string) error {
	cfg, err := config.New(_fs)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	_cfg = cfg
	return nil
}

var _app = func() *cobra.Command {
	cmd := _cmdGenerate()
	cmd.PersistentPreRunE = loadConfig
	cmd.AddCommand(_cmdList)
	cmd.AddCommand(_cmdVersion)
	return cmd
}()

func Run(argv []string) error {
	_app.SetArgs(argv[1:])
	return _app.Execute()
}
