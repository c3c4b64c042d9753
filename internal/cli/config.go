package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/armlab/armature/pkg/kinematics"
)

// defaultConfigFile is the config file looked up in the working directory
// when no --config flag is given.
const defaultConfigFile = "armature.toml"

// config holds optional per-project settings loaded from a TOML file.
// Flags override config values; config values override built-in defaults.
type config struct {
	Solver solverConfig `toml:"solver"`
	Render renderConfig `toml:"render"`
}

type solverConfig struct {
	MaxIterations int     `toml:"max_iterations"`
	Tolerance     float64 `toml:"tolerance"`
}

type renderConfig struct {
	Format   string `toml:"format"`
	Detailed bool   `toml:"detailed"`
}

// defaultConfig returns the built-in defaults used when no config file exists.
func defaultConfig() config {
	return config{
		Solver: solverConfig{
			MaxIterations: kinematics.DefaultMaxIterations,
			Tolerance:     kinematics.DefaultTolerance,
		},
		Render: renderConfig{Format: "svg"},
	}
}

// loadConfig reads the TOML config at path, filling unset fields with the
// built-in defaults. An empty path means "armature.toml in the working
// directory, if present": a missing default file is not an error, a missing
// explicit file is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Solver.MaxIterations <= 0 {
		cfg.Solver.MaxIterations = kinematics.DefaultMaxIterations
	}
	if cfg.Solver.Tolerance <= 0 {
		cfg.Solver.Tolerance = kinematics.DefaultTolerance
	}
	if cfg.Render.Format == "" {
		cfg.Render.Format = "svg"
	}
	return cfg, nil
}
