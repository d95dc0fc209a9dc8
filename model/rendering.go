package model

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const snapshotNameFormat = "out%d.pgm"

// PGMRenderer dumps per-generation grid snapshots as binary PGM rasters,
// consumed downstream by an external animation assembler.
type PGMRenderer struct {
	// Dir is the directory snapshot files are created in.
	// Empty means the current working directory.
	Dir string
}

// Render writes the grid as out<t>.pgm: a P5 header declaring an N×N raster
// with maximum sample value 1, followed by one raw byte per cell in
// row-major order. Samples are the cell values themselves, 0 or 1, not
// scaled to the full byte range.
func (r *PGMRenderer) Render(g *Grid, t int) error {
	name := filepath.Join(r.Dir, fmt.Sprintf(snapshotNameFormat, t))

	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "[Render] failed to create snapshot file: %+v", name)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err = fmt.Fprintf(w, "P5\n%d %d 1\n", g.Size(), g.Size()); err != nil {
		return errors.Wrapf(err, "[Render] failed to write snapshot header: %+v", name)
	}
	if _, err = w.Write(g.Bytes()); err != nil {
		return errors.Wrapf(err, "[Render] failed to write snapshot samples: %+v", name)
	}

	return errors.Wrapf(w.Flush(), "[Render] failed to flush snapshot file: %+v", name)
}
