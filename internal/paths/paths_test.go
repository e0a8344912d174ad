package paths

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIconFileName(t *testing.T) {
	tests := []struct {
		size int
		want string
	}{
		{16, "icon16.png"},
		{48, "icon48.png"},
		{128, "icon128.png"},
		{1, "icon1.png"},
	}
	for _, tt := range tests {
		if got := IconFileName(tt.size); got != tt.want {
			t.Errorf("IconFileName(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestAtomicWriteCreatesParent(t *testing.T) {
	p := filepath.Join(t.TempDir(), IconsDir, "icon16.png")
	if err := AtomicWrite(p, []byte("png")); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "png" {
		t.Errorf("content = %q, want %q", got, "png")
	}
}

func TestAtomicWriteOverwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "icon48.png")
	if err := AtomicWrite(p, []byte("first")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := AtomicWrite(p, []byte("second")); err != nil {
		t.Fatalf("second write: %v", err)
	}
	got, _ := os.ReadFile(p)
	if !bytes.Equal(got, []byte("second")) {
		t.Errorf("content = %q, want %q", got, "second")
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestAtomicWriteParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, IconsDir)
	if err := os.WriteFile(blocker, nil, FilePerm); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(filepath.Join(blocker, "icon16.png"), []byte("x")); err == nil {
		t.Error("expected error when parent path is a regular file")
	}
}
