package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fileTime(t *testing.T, path string) time.Time {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat %s: %v", path, err)
	}
	return info.ModTime()
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadMissingStateFile(t *testing.T) {
	st, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if st.Files == nil || len(st.Files) != 0 {
		t.Errorf("Load() should return an empty state, got %+v", st)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "talk.md", "# Title\n")
	statePath := filepath.Join(dir, "nested", "state.json")

	st := NewState()
	if err := st.MarkRendered(src, "talk.pptx", 3); err != nil {
		t.Fatalf("MarkRendered() error = %v", err)
	}
	if err := st.Save(statePath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(statePath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	fs, ok := loaded.Files[src]
	if !ok {
		t.Fatalf("loaded state is missing %s", src)
	}
	if fs.Slides != 3 || fs.Deck != "talk.pptx" {
		t.Errorf("loaded file state = %+v, want 3 slides into talk.pptx", fs)
	}
	if fs.Hash == "" || fs.RenderedAt == 0 {
		t.Errorf("loaded file state has empty hash or timestamp: %+v", fs)
	}
}

func TestHasChanged(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "talk.md", "# Title\n")

	st := NewState()

	// Untracked files are always considered changed.
	changed, err := st.HasChanged(src)
	if err != nil {
		t.Fatalf("HasChanged() error = %v", err)
	}
	if !changed {
		t.Error("untracked file should be reported as changed")
	}

	if err := st.MarkRendered(src, "talk.pptx", 1); err != nil {
		t.Fatalf("MarkRendered() error = %v", err)
	}

	changed, err = st.HasChanged(src)
	if err != nil {
		t.Fatalf("HasChanged() error = %v", err)
	}
	if changed {
		t.Error("freshly rendered file should not be reported as changed")
	}

	// Rewrite with new content.
	writeSource(t, dir, "talk.md", "# Title\n---\n- new point\n")
	// Force an mtime difference in case the rewrite landed in the same second.
	bumped := fileTime(t, src).Add(2 * time.Second)
	if err := os.Chtimes(src, bumped, bumped); err != nil {
		t.Fatalf("failed to bump mtime: %v", err)
	}

	changed, err = st.HasChanged(src)
	if err != nil {
		t.Fatalf("HasChanged() error = %v", err)
	}
	if !changed {
		t.Error("modified file should be reported as changed")
	}
}

func TestHasChangedMissingFile(t *testing.T) {
	st := NewState()
	if _, err := st.HasChanged(filepath.Join(t.TempDir(), "gone.md")); err == nil {
		t.Error("HasChanged() should error on a missing file")
	}
}

func TestComputeHashIsStable(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.md", "same content")
	b := writeSource(t, dir, "b.md", "same content")

	hashA, err := ComputeHash(a)
	if err != nil {
		t.Fatalf("ComputeHash() error = %v", err)
	}
	hashB, err := ComputeHash(b)
	if err != nil {
		t.Fatalf("ComputeHash() error = %v", err)
	}
	if hashA != hashB {
		t.Errorf("identical content should hash identically: %s vs %s", hashA, hashB)
	}
}
