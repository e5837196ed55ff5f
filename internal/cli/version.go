package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rprtr258/mng/internal/core"
)

var _cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "print mng version",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		fmt.Println(core.Version)
		return nil
	},
}
