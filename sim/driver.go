// Package sim orchestrates a complete Game of Life run: grid allocation,
// pattern loading, the fixed-count generation loop with double-buffer
// swapping, optional per-generation snapshots, and the external animation
// assembly step.
package sim

import (
	"os/exec"

	"github.com/pkg/errors"

	"github.com/parlife/go-life/model"
	"github.com/parlife/go-life/utils"
)

// Result carries the outcome of a finished run
type Result struct {
	// Stats holds the run geometry and the loop's wall-clock time.
	Stats *utils.Stats
	// Final is the grid holding the last computed generation.
	Final *model.Grid
}

// Run executes the simulation described by cfg. The run is strictly
// single-threaded and single-pass; every returned error is terminal and the
// caller is expected to abort the process rather than retry.
func Run(cfg utils.Config) (*Result, error) {
	pair := model.NewGridPair(cfg.Size)

	if cfg.RandomInit {
		model.SeedRandomInterior(pair.Previous(), pair.Current(), cfg.Size*cfg.Size/10)
	} else if err := model.LoadPattern(cfg.PatternPath, pair.Previous(), pair.Current()); err != nil {
		return nil, err
	}

	var renderer *model.PGMRenderer
	if cfg.Snapshots {
		renderer = &model.PGMRenderer{Dir: cfg.SnapshotDir}
		// Generation 0 is the loaded state.
		if err := renderer.Render(pair.Previous(), 0); err != nil {
			return nil, err
		}
	}

	stats := utils.NewStats(cfg.Size, cfg.Generations)
	for t := 0; t < cfg.Generations; t++ {
		pair.Previous().StepInto(pair.Current())
		if renderer != nil {
			if err := renderer.Render(pair.Current(), t+1); err != nil {
				return nil, err
			}
		}
		pair.Swap()
	}
	stats.Finish()

	// The final swap moved the last written generation into Previous.
	return &Result{Stats: stats, Final: pair.Previous()}, nil
}

// AssembleAnimation hands the snapshot files to the configured external
// assembly command, run from the snapshot directory. The command is expected
// to consume the out*.pgm files in numeric order and remove them afterward.
func AssembleAnimation(cfg utils.Config) error {
	cmd := exec.Command("sh", "-c", cfg.AssembleCmd)
	cmd.Dir = cfg.SnapshotDir
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "[AssembleAnimation] assembly command failed: %s", out)
	}
	return nil
}
