package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindCNF(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.cnf"), []byte("p cnf 1 1\n1 1 1 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "b.cnf"), []byte("p cnf 1 1\n1 1 1 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindCNF(dir)
	if err != nil {
		t.Fatalf("FindCNF() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FindCNF() returned %d files, want 2: %v", len(got), got)
	}
}
