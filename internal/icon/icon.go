// Package icon draws the map-pin extension icons: a white pin glyph on a
// solid green square.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/Mavwarf/maptag-icons/internal/paths"
)

var (
	// Background fills the square behind the pin (#4CAF50).
	Background = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	// Glyph is the pin color (#FFFFFF).
	Glyph = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Sizes lists the icon sizes written by Set, smallest first.
var Sizes = []int{16, 48, 128}

// Spec is one icon to produce: a square pixel size and its destination.
type Spec struct {
	Size int
	Path string
}

// Set returns the fixed icon set rooted at dir.
func Set(dir string) []Spec {
	specs := make([]Spec, 0, len(Sizes))
	for _, size := range Sizes {
		specs = append(specs, Spec{Size: size, Path: filepath.Join(dir, paths.IconFileName(size))})
	}
	return specs
}

// Draw renders a size×size icon. Every pixel is exactly Background or
// exactly Glyph.
func Draw(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	draw.Copy(img, image.Point{}, image.NewUniform(Glyph), img.Bounds(), draw.Over, &draw.Options{
		SrcMask: PinFor(size).Mask(size),
	})
	return img
}

// Generate draws s, writes it as PNG to s.Path (creating the parent
// directory and replacing any existing file), then writes a confirmation
// line to w.
func Generate(w io.Writer, s Spec) error {
	if s.Size <= 0 {
		return errors.Errorf("icon size must be positive, got %d", s.Size)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, Draw(s.Size)); err != nil {
		return errors.Wrapf(err, "encode %s", s.Path)
	}
	if err := paths.AtomicWrite(s.Path, buf.Bytes()); err != nil {
		return errors.Wrapf(err, "write %s", s.Path)
	}
	fmt.Fprintf(w, "Created %s (%dx%d)\n", s.Path, s.Size, s.Size)
	return nil
}

// Preflight renders and encodes a 1×1 icon in memory, so a broken drawing
// or encoding stack shows up before any file is touched.
func Preflight() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("render panicked: %v", r)
		}
	}()
	if err := png.Encode(io.Discard, Draw(1)); err != nil {
		return errors.Wrap(err, "png encoder")
	}
	return nil
}
