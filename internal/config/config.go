package config

import (
	"cmp"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/go-jsonnet"
	"github.com/google/go-jsonnet/ast"
	"github.com/joho/godotenv"
	"github.com/rprtr258/fun"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/rprtr258/mng/internal/core"
	"github.com/rprtr258/mng/internal/errors"
	"github.com/rprtr258/mng/internal/export"
)

const EnvConfig = "MNG_CONFIG"

// Preset is a named generation request stored in config.
type Preset struct {
	Count      *int   `json:"count"`
	Gender     string `json:"gender"`
	Class      string `json:"class"`
	UniqueLast bool   `json:"unique_last"`
	UniqueFull bool   `json:"unique_full"`
	Seed       *int64 `json:"seed"`
	Out        string `json:"out"`
	CSV        string `json:"csv"`
	JSON       string `json:"json"`
}

// Request converts preset into generation request. Count falls back to defaultCount.
func (p Preset) Request(defaultCount int) (core.Request, error) {
	gender, err := core.ParseGender(p.Gender)
	if err != nil {
		return fun.Zero[core.Request](), errors.Wrap(err, "gender")
	}

	class, err := core.ParseClass(p.Class)
	if err != nil {
		return fun.Zero[core.Request](), errors.Wrap(err, "class")
	}

	seed := fun.Invalid[int64]()
	if p.Seed != nil {
		seed = fun.Valid(*p.Seed)
	}

	request := core.Request{
		Count:      defaultCount,
		Gender:     gender,
		Class:      class,
		UniqueLast: p.UniqueLast,
		UniqueFull: p.UniqueFull,
		Seed:       seed,
	}
	if p.Count != nil {
		request.Count = *p.Count
	}

	return request, request.Validate()
}

type Config struct {
	Debug   bool
	Format  string
	Count   int
	Presets map[string]Preset
}

var DefaultConfig = Config{
	Debug:   false,
	Format:  export.FormatText,
	Count:   5,
	Presets: map[string]Preset{},
}

// Path to config file, $MNG_CONFIG takes precedence over XDG config dir.
func Path() string {
	return cmp.Or(os.Getenv(EnvConfig), filepath.Join(xdg.ConfigHome, "mng", "config.jsonnet"))
}

func newVM(fs afero.Fs, dir string) *jsonnet.VM {
	vm := jsonnet.MakeVM()
	vm.ExtVar("now", time.Now().Format("15:04:05"))
	vm.NativeFunction(&jsonnet.NativeFunction{
		Name: "dotenv",
		Func: func(args []any) (any, error) {
			if len(args) != 1 {
				return nil, errors.New("wrong number of arguments")
			}

			filename, ok := args[0].(string)
			if !ok {
				return nil, errors.Newf("filename must be a string, got %v", args[0])
			}
			if !filepath.IsAbs(filename) {
				filename = filepath.Join(dir, filename)
			}

			data, errRead := afero.ReadFile(fs, filename)
			if errRead != nil {
				return nil, errors.Wrapf(errRead, "read env file %s", filename)
			}

			env, errUnmarshal := godotenv.UnmarshalBytes(data)
			if errUnmarshal != nil {
				return nil, errors.Wrapf(errUnmarshal, "parse env file %s", filename)
			}

			return lo.MapValues(env, func(v string, _ string) any {
				return v
			}), nil
		},
		Params: ast.Identifiers{"filename"},
	})
	return vm
}

// Load evaluates jsonnet config file. Missing file yields DefaultConfig.
func Load(fs afero.Fs, filename string) (Config, error) {
	data, errRead := afero.ReadFile(fs, filename)
	if errRead != nil {
		if errors.Is(errRead, os.ErrNotExist) {
			log.Debug().Str("filename", filename).Msg("config file not found, using defaults")
			return DefaultConfig, nil
		}

		return fun.Zero[Config](), errors.Wrapf(errRead, "read config file %s", filename)
	}

	jsonText, errEval := newVM(fs, filepath.Dir(filename)).EvaluateAnonymousSnippet(filename, string(data))
	if errEval != nil {
		return fun.Zero[Config](), errors.Wrap(errEval, "evaluate jsonnet file")
	}

	type configScanDTO struct {
		Debug   *bool             `json:"debug"`
		Format  *string           `json:"format"`
		Count   *int              `json:"count"`
		Presets map[string]Preset `json:"presets"`
	}
	var scanned configScanDTO
	if err := json.Unmarshal([]byte(jsonText), &scanned); err != nil {
		return fun.Zero[Config](), errors.Wrap(err, "unmarshal config json")
	}

	config := Config{
		Debug:   DefaultConfig.Debug,
		Format:  DefaultConfig.Format,
		Count:   DefaultConfig.Count,
		Presets: scanned.Presets,
	}
	if scanned.Debug != nil {
		config.Debug = *scanned.Debug
	}
	if scanned.Format != nil {
		config.Format = *scanned.Format
	}
	if scanned.Count != nil {
		config.Count = *scanned.Count
	}
	if config.Presets == nil {
		config.Presets = map[string]Preset{}
	}

	// validate presets
	errs := make([]error, 0, len(config.Presets))
	for name, preset := range config.Presets {
		if _, err := preset.Request(config.Count); err != nil {
			errs = append(errs, errors.Wrapf(err, "preset %q", name))
		}
	}
	if err := errors.Combine(errs...); err != nil {
		return fun.Zero[Config](), errors.Wrap(err, "invalid config")
	}

	if config.Count < 0 {
		return fun.Zero[Config](), errors.Newf("invalid config: count must not be negative, got %d", config.Count)
	}

	return config, nil
}

// New sets up logging and loads config from Path.
func New(fs afero.Fs) (Config, error) {
	SetupLogger(DefaultConfig)

	config, err := Load(fs, Path())
	if err != nil {
		return fun.Zero[Config](), errors.Wrap(err, "config")
	}

	SetupLogger(config)
	return config, nil
}
