package model

import (
	"github.com/parlife/go-life/rules"
)

// Grid represents the game board: a fixed N×N matrix of cell states stored
// as a contiguous row-major buffer. A cell is 1 when alive and 0 when dead.
type Grid struct {
	size  int
	cells []uint8
}

// NewGrid creates a new size×size grid with every cell dead
func NewGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]uint8, size*size),
	}
}

// Size returns the grid dimension N
func (g *Grid) Size() int {
	return g.size
}

// At returns the state of the cell at (row, col)
func (g *Grid) At(row, col int) uint8 {
	return g.cells[row*g.size+col]
}

// Set assigns the state of the cell at (row, col)
func (g *Grid) Set(row, col int, v uint8) {
	g.cells[row*g.size+col] = v
}

// Bytes returns the cell states in row-major order. The slice aliases the
// grid's storage; mutations through it are visible to the grid.
func (g *Grid) Bytes() []uint8 {
	return g.cells
}

// CountNeighbors sums the 8-connected Moore neighbourhood of (row, col).
// Valid for interior coordinates only; border cells have no full
// neighbourhood and are never evaluated.
func (g *Grid) CountNeighbors(row, col int) int {
	return int(g.At(row+1, col+1)) + int(g.At(row+1, col)) + int(g.At(row+1, col-1)) +
		int(g.At(row, col-1)) + int(g.At(row, col+1)) +
		int(g.At(row-1, col-1)) + int(g.At(row-1, col)) + int(g.At(row-1, col+1))
}

// StepInto computes one generation, reading cell states from g and writing
// every interior cell (1 ≤ i,j ≤ N−2) of next. Border cells of next are
// never written and keep whatever value they already hold.
func (g *Grid) StepInto(next *Grid) {
	n := g.size
	for i := 1; i < n-1; i++ {
		for j := 1; j < n-1; j++ {
			next.Set(i, j, rules.NextState(g.At(i, j), g.CountNeighbors(i, j)))
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c != 0 {
			count++
		}
	}
	return
}
