package icon

import (
	"image"
	"image/color"
)

// Pin is the map-pin glyph geometry for one icon size. All values are
// derived with truncating integer division and address pixels directly:
// box corners and triangle vertices are inclusive.
type Pin struct {
	CenterX, CenterY int
	Diameter         int
	Point            int
}

// PinFor returns the pin geometry for a size×size canvas.
func PinFor(size int) Pin {
	d := size / 3
	return Pin{
		CenterX:  size / 2,
		CenterY:  size/2 - d/4,
		Diameter: d,
		Point:    d / 2,
	}
}

// Head returns the pixels spanned by the pin's circle. The circle's
// inclusive box runs from Center-Diameter/2 to Center+Diameter/2.
func (p Pin) Head() image.Rectangle {
	r := p.Diameter / 2
	return image.Rect(p.CenterX-r, p.CenterY-r, p.CenterX+r+1, p.CenterY+r+1)
}

// Tip returns the downward triangle under the head: apex first, then the
// two base corners left to right. The apex is the head's bottom pixel.
func (p Pin) Tip() [3]image.Point {
	top := p.CenterY + p.Diameter/2
	return [3]image.Point{
		{p.CenterX, top},
		{p.CenterX - p.Point/2, top + p.Point},
		{p.CenterX + p.Point/2, top + p.Point},
	}
}

func (p Pin) tipBounds() image.Rectangle {
	t := p.Tip()
	return image.Rect(t[1].X, t[0].Y, t[2].X+1, t[1].Y+1)
}

// Bounds is the smallest rectangle holding every glyph pixel.
func (p Pin) Bounds() image.Rectangle {
	return p.Head().Union(p.tipBounds())
}

// Contains reports whether pixel q belongs to the glyph.
func (p Pin) Contains(q image.Point) bool {
	return p.inHead(q) || p.inTip(q)
}

// inHead tests q's centre against a circle of radius Diameter/2 + 0.5,
// scaled by 2 to stay in integers.
func (p Pin) inHead(q image.Point) bool {
	if !q.In(p.Head()) {
		return false
	}
	dx, dy := q.X-p.CenterX, q.Y-p.CenterY
	d := 2*(p.Diameter/2) + 1
	return 4*(dx*dx+dy*dy) <= d*d
}

// inTip is an inclusive edge-function test. The bounds check keeps
// degenerate triangles from matching whole lines.
func (p Pin) inTip(q image.Point) bool {
	if !q.In(p.tipBounds()) {
		return false
	}
	t := p.Tip()
	e0 := edge(t[0], t[1], q)
	e1 := edge(t[1], t[2], q)
	e2 := edge(t[2], t[0], q)
	neg := e0 < 0 || e1 < 0 || e2 < 0
	pos := e0 > 0 || e1 > 0 || e2 > 0
	return !(neg && pos)
}

func edge(a, b, q image.Point) int {
	return (b.X-a.X)*(q.Y-a.Y) - (b.Y-a.Y)*(q.X-a.X)
}

// Mask returns a size×size alpha mask, opaque on glyph pixels and
// transparent elsewhere.
func (p Pin) Mask(size int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	b := p.Bounds().Intersect(m.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if p.Contains(image.Pt(x, y)) {
				m.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return m
}
