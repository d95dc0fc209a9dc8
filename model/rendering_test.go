package model

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderWritesPGM(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 1, 1)
	g.Set(2, 0, 1)

	dir := t.TempDir()
	r := &PGMRenderer{Dir: dir}
	if err := r.Render(g, 7); err != nil {
		t.Fatalf("Render: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out7.pgm"))
	if err != nil {
		t.Fatal(err)
	}

	want := append([]byte("P5\n3 3 1\n"), []byte{
		0, 0, 0,
		0, 1, 0,
		1, 0, 0,
	}...)
	if !bytes.Equal(data, want) {
		t.Errorf("snapshot bytes = %q, want %q", data, want)
	}
}

func TestRenderSamplesAreRawCellValues(t *testing.T) {
	g := NewGrid(2)
	g.Set(0, 0, 1)

	dir := t.TempDir()
	if err := (&PGMRenderer{Dir: dir}).Render(g, 0); err != nil {
		t.Fatalf("Render: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out0.pgm"))
	if err != nil {
		t.Fatal(err)
	}
	payload := data[len("P5\n2 2 1\n"):]
	for _, b := range payload {
		if b != 0 && b != 1 {
			t.Errorf("sample byte %d is scaled, want raw 0 or 1", b)
		}
	}
}

func TestRenderUnwritableDirectoryFails(t *testing.T) {
	g := NewGrid(2)
	r := &PGMRenderer{Dir: filepath.Join(t.TempDir(), "missing", "nested")}
	if err := r.Render(g, 0); err == nil {
		t.Fatal("Render succeeded in a nonexistent directory")
	}
}
