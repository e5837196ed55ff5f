package config

import (
	"os"
	"strings"
	"time"

	"github.com/rprtr258/fun"
	"github.com/rprtr258/scuf"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func SetupLogger(config Config) {
	level := fun.IF(config.Debug, zerolog.DebugLevel, zerolog.InfoLevel)

	log.Logger = zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger().
		Output(zerolog.ConsoleWriter{ //nolint:exhaustruct // not needed
			Out: os.Stderr,
			FormatLevel: func(i any) string {
				s, _ := i.(string)
				bg := fun.Switch(s, scuf.BgRed).
					Case(scuf.BgBlue, zerolog.LevelInfoValue).
					Case(scuf.BgGreen, zerolog.LevelWarnValue).
					Case(scuf.BgYellow, zerolog.LevelErrorValue).
					End()

				return scuf.String(" "+strings.ToUpper(s)+" ", bg, scuf.FgBlack)
			},
			FormatTimestamp: func(i any) string {
				s, _ := i.(string)
				t, err := time.Parse(zerolog.TimeFieldFormat, s)
				if err != nil {
					return s
				}

				return scuf.String(t.Format("[15:04:05]"), scuf.ModFaint, scuf.FgWhite)
			},
		})
}
