package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subtraj/spatialhash"
)

// Config is the full set of run-time toggles for a subtraj invocation.
// Zero value is invalid; use Default to get a struct with every field
// at its documented default, then override from a YAML file and/or CLI
// flags before calling Validate.
type Config struct {
	// UseMultithread disables the worker pool when false: both
	// preprocessing and query-solving run on the calling goroutine.
	UseMultithread bool `yaml:"use_multithread"`
	// FastIO selects the hand-tokenizing trajectory loader over the
	// default bufio.Scanner-based one.
	FastIO bool `yaml:"fast_io"`
	// TrajectoryDirPrefix is prepended to every trajectory filename read
	// from the dataset and query files.
	TrajectoryDirPrefix string `yaml:"trajectory_dir_prefix"`
	// Workers is the worker-pool size for both pipeline phases.
	Workers int `yaml:"workers" validate:"gt=0"`
	// Levels is the number of simplification-ladder levels. The learned
	// ratio table is fixed at 4 entries (simplify.Ratios), so this is
	// presently required to equal 4; it is still a config field rather
	// than a constant to document the coupling explicitly.
	Levels int `yaml:"levels" validate:"eq=4"`
	// HashCells is the spatial hash's slots-per-dimension.
	HashCells int `yaml:"hash_cells" validate:"gt=0"`
	// HashTolerance is the spatial hash's coordinate-rounding tolerance.
	HashTolerance float64 `yaml:"hash_tolerance" validate:"gt=0"`
	// SearchBase and SearchExponentStep feed search.IntDoubleSearch's
	// exponential probe schedule.
	SearchBase         float64 `yaml:"search_base" validate:"gt=1"`
	SearchExponentStep float64 `yaml:"search_exponent_step" validate:"gt=0"`
	// BatchSize is the number of items each worker claims per cursor
	// step.
	BatchSize int `yaml:"batch_size" validate:"gt=0"`
}

// Default returns a Config with every field at its documented default.
func Default() Config {
	return Config{
		UseMultithread:      true,
		FastIO:              false,
		TrajectoryDirPrefix: "",
		Workers:             4,
		Levels:              4,
		HashCells:           spatialhash.DefaultSlotsPerDimension,
		HashTolerance:       spatialhash.DefaultTolerance,
		SearchBase:          2,
		SearchExponentStep:  1,
		BatchSize:           20,
	}
}

// Load reads a YAML file at path, applying its fields on top of
// Default(), then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks every field's constraint via validator/v10 struct
// tags, returning a wrapped validator.ValidationErrors on failure.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}

	return nil
}
