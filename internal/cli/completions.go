package cli

import (
	"maps"
	"slices"
	"strings"

	"github.com/rprtr258/fun"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rprtr258/mng/internal/config"
	"github.com/rprtr258/mng/internal/core/names"
	"github.com/rprtr258/mng/internal/export"
)

func registerFlagCompletionFunc(
	c *cobra.Command,
	name string,
	f func(toComplete string) ([]string, cobra.ShellCompDirective),
) {
	if err := c.RegisterFlagCompletionFunc(
		name,
		func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return f(toComplete)
		}); err != nil {
		log.Panic().
			Err(err).
			Str("flagName", name).
			Str("command", c.Name()).
			Msg("failed to register flag completion func")
	}
}

func completeFlagFormat(prefix string) ([]string, cobra.ShellCompDirective) {
	return fun.FilterMap[string](
		func(format string) (string, bool) {
			return format, strings.HasPrefix(format, prefix)
		},
		export.Formats...,
	), cobra.ShellCompDirectiveNoFileComp
}

// completeFlagPreset reads config itself, as completion runs without pre-run hooks
func completeFlagPreset(prefix string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load(_fs, config.Path())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	presets := slices.Sorted(maps.Keys(cfg.Presets))
	return fun.FilterMap[string](
		func(name string) (string, bool) {
			return name, strings.HasPrefix(name, prefix)
		},
		presets...,
	), cobra.ShellCompDirectiveNoFileComp
}

func completeArgListKind(
	_ *cobra.Command, args []string,
	prefix string,
) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return fun.FilterMap[string](
		func(kind names.ListKind) (string, bool) {
			return string(kind) + "\t" + kind.Description(), strings.HasPrefix(string(kind), prefix)
		},
		names.ListKinds...,
	), cobra.ShellCompDirectiveNoFileComp
}
