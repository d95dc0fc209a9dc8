package utils

import (
	"fmt"
	"time"
)

// Stats times a complete simulation run
type Stats struct {
	Size        int
	Generations int
	StartTime   time.Time
	Elapsed     time.Duration
}

// NewStats starts the run clock
func NewStats(size, generations int) *Stats {
	return &Stats{
		Size:        size,
		Generations: generations,
		StartTime:   time.Now(),
	}
}

// Finish records the elapsed wall-clock time for the run
func (s *Stats) Finish() {
	s.Elapsed = time.Since(s.StartTime)
}

// Summary formats the end-of-run report line
func (s *Stats) Summary() string {
	return fmt.Sprintf("GameOfLife: Size %d Steps %d Time %f", s.Size, s.Generations, s.Elapsed.Seconds())
}
