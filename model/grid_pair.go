package model

// GridPair owns the two buffers used for double-buffered evolution. Each
// generation reads from the previous grid and writes into the current grid;
// Swap then exchanges the role bindings without copying cell data.
type GridPair struct {
	current  *Grid
	previous *Grid
}

// NewGridPair allocates two dead size×size grids
func NewGridPair(size int) *GridPair {
	return &GridPair{
		current:  NewGrid(size),
		previous: NewGrid(size),
	}
}

// Current returns the grid being written this generation
func (p *GridPair) Current() *Grid {
	return p.current
}

// Previous returns the grid being read this generation
func (p *GridPair) Previous() *Grid {
	return p.previous
}

// Swap exchanges the current and previous roles
func (p *GridPair) Swap() {
	p.current, p.previous = p.previous, p.current
}
