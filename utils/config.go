package utils

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config holds the configuration for a run: grid geometry and generation
// count come from the command line, snapshot behaviour from the optional
// config file.
type Config struct {
	Size        int    `json:"size"`
	Generations int    `json:"generations"`
	PatternPath string `json:"pattern_path"`
	RandomInit  bool   `json:"random_init"`
	Snapshots   bool   `json:"snapshots"`
	SnapshotDir string `json:"snapshot_dir"`
	AssembleCmd string `json:"assemble_cmd"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Snapshots:   false,
		AssembleCmd: "magick -delay 20 `ls -1 out*.pgm | sort -V` output.gif && rm out*.pgm",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ParseArgs applies the three required positional arguments
// (grid size, generation count, pattern file path) to the configuration.
func (c *Config) ParseArgs(args []string) error {
	if len(args) != 3 {
		return errors.Errorf("[ParseArgs] expected 3 arguments, got %d", len(args))
	}

	size, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(err, "[ParseArgs] invalid grid size: %+v", args[0])
	}
	generations, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(err, "[ParseArgs] invalid generation count: %+v", args[1])
	}

	c.Size = size
	c.Generations = generations
	c.PatternPath = args[2]

	return c.Validate()
}

// Validate rejects geometry the simulation cannot run with
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("[Validate] grid size must be positive, got %d", c.Size)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generation count must be non-negative, got %d", c.Generations)
	}
	return nil
}
