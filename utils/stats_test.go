package utils

import (
	"strings"
	"testing"
)

func TestSummaryFormat(t *testing.T) {
	s := NewStats(64, 100)
	s.Finish()

	summary := s.Summary()
	if !strings.HasPrefix(summary, "GameOfLife: Size 64 Steps 100 Time ") {
		t.Errorf("Summary() = %q, want GameOfLife prefix with size and steps", summary)
	}
	if s.Elapsed < 0 {
		t.Errorf("negative elapsed time %v", s.Elapsed)
	}
}
