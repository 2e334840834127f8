package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestWalker_IncludesAndExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "text")
	writeFile(t, filepath.Join(dir, "b.md"), "markdown")
	writeFile(t, filepath.Join(dir, "c.png"), "binary")
	writeFile(t, filepath.Join(dir, "skip", "d.txt"), "nested")

	w := NewWalker([]string{"**/*.txt", "**/*.md"}, []string{"**/skip/**"}, 0)
	files, err := w.Walk(dir)
	if err != nil {
		t.Fatal(err)
	}

	got := relPaths(files)
	want := map[string]bool{"a.txt": true, "b.md": true}
	if len(got) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), got)
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("unexpected file %s", p)
		}
	}
}

func TestWalker_SizeGuard(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "small.txt"), "ok")
	writeFile(t, filepath.Join(dir, "big.txt"), "this one is too large")

	w := NewWalker([]string{"**/*.txt"}, nil, 10)
	files, err := w.Walk(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 1 || files[0].RelPath != "small.txt" {
		t.Errorf("expected only small.txt, got %v", relPaths(files))
	}
}

func TestWalker_EmptyIncludesDefaultsToTxt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "note.txt"), "text")
	writeFile(t, filepath.Join(dir, "image.png"), "binary")

	w := NewWalker(nil, nil, 0)
	files, err := w.Walk(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 1 || files[0].RelPath != "note.txt" {
		t.Errorf("expected only note.txt, got %v", relPaths(files))
	}
}
