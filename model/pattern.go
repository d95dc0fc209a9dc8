package model

import (
	"bufio"
	"io"
	"math/rand"
	"os"

	"github.com/pkg/errors"
)

// LoadPattern reads the pattern file at path and writes the decoded cells
// into both grids at the same coordinates, so the current and previous
// buffers start in sync.
//
// The file must supply size×size cell characters: the digit '0' is a dead
// cell, any other character is a live cell, and newlines are separators that
// never consume a cell slot. Only the global cell count is checked — a row
// shorter than size silently borrows cells from the lines that follow, and
// an over-long row pushes its surplus into later rows.
func LoadPattern(path string, a, b *Grid) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadPattern] failed to open pattern file: %+v", path)
	}
	defer f.Close()

	var (
		r    = bufio.NewReader(f)
		size = a.Size()
	)
	for row := 0; row < size; row++ {
		for col := 0; col < size; {
			c, err := r.ReadByte()
			if err == io.EOF {
				return errors.Errorf("[LoadPattern] pattern file %+v truncated: need %d cells, got %d",
					path, size*size, row*size+col)
			}
			if err != nil {
				return errors.Wrapf(err, "[LoadPattern] failed to read pattern file: %+v", path)
			}
			if c == '\n' {
				continue
			}

			var v uint8
			if c != '0' {
				v = 1
			}
			a.Set(row, col, v)
			b.Set(row, col, v)
			col++
		}
	}

	return nil
}

// SeedRandomInterior scatters count live cells across the interior of both
// grids at identical random coordinates. Positions may repeat, so the
// resulting population can be lower than count. Used in place of a pattern
// file when random initialisation is configured.
func SeedRandomInterior(a, b *Grid, count int) {
	inner := a.Size() - 2
	if inner <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		pos := rand.Intn(inner * inner)
		row := pos%inner + 1
		col := pos/inner + 1
		a.Set(row, col, 1)
		b.Set(row, col, 1)
	}
}
