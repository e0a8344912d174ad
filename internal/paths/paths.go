package paths

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	IconsDir = "icons"
	DirPerm  = 0755
	FilePerm = 0644
)

// IconFileName returns the file name for a square icon of the given size,
// e.g. "icon48.png".
func IconFileName(size int) string {
	return "icon" + strconv.Itoa(size) + ".png"
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
