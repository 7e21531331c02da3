package bramble

import (
	"fmt"

	"github.com/phanxgames/bramble/constraint"
)

// frame holds the position and size cells of a group.
type frame struct {
	id   uint32
	kind string

	X, Y, Width, Height *constraint.Cell[int]
}

func (f *frame) init(g *constraint.Graph, kind string, r Rect) {
	if g == nil {
		panic("bramble: nil constraint graph")
	}
	f.id = nextObjectID()
	f.kind = kind
	f.X = constraint.NewCell(g, cellName(kind, f.id, "x"), r.X)
	f.Y = constraint.NewCell(g, cellName(kind, f.id, "y"), r.Y)
	f.Width = constraint.NewCell(g, cellName(kind, f.id, "width"), r.Width)
	f.Height = constraint.NewCell(g, cellName(kind, f.id, "height"), r.Height)
}

// Name returns a debug name such as "simpleGroup#2".
func (f *frame) Name() string {
	return fmt.Sprintf("%s#%d", f.kind, f.id)
}

func (f *frame) MoveTo(x, y int) {
	f.X.Set(x)
	f.Y.Set(y)
}

func (f *frame) release() {
	f.X.Release()
	f.Y.Release()
	f.Width.Release()
	f.Height.Release()
}

// SimpleGroup is a group that translates its children by its position. It
// clips drawing to its bounds.
type SimpleGroup struct {
	groupCore
	frame
}

// NewSimpleGroup creates a detached group covering r.
func NewSimpleGroup(g *constraint.Graph, r Rect) *SimpleGroup {
	sg := &SimpleGroup{}
	sg.init(g, "simpleGroup", r)
	sg.self = sg
	return sg
}

func (g *SimpleGroup) BoundingBox() Rect {
	return Rect{X: g.X.Get(), Y: g.Y.Get(), Width: g.Width.Get(), Height: g.Height.Get()}
}

func (g *SimpleGroup) Contains(p Point) bool {
	return g.BoundingBox().Contains(p)
}

func (g *SimpleGroup) ParentToChild(p Point) Point {
	return Point{p.X - g.X.Get(), p.Y - g.Y.Get()}
}

func (g *SimpleGroup) ChildToParent(p Point) Point {
	return Point{p.X + g.X.Get(), p.Y + g.Y.Get()}
}

func (g *SimpleGroup) ResizeToChildren() {
	w, h := g.childExtent()
	g.Width.Set(w)
	g.Height.Set(h)
}

func (g *SimpleGroup) Draw(c Canvas, clip Rect) error {
	b := g.BoundingBox()
	area := b.Intersect(clip)
	if area.Empty() {
		return nil
	}
	c.Push()
	defer c.Pop()
	c.ClipRect(float64(area.X), float64(area.Y), float64(area.Width), float64(area.Height))
	c.Translate(float64(b.X), float64(b.Y))
	area.X -= b.X
	area.Y -= b.Y
	return g.drawChildren(c, area)
}

// Release removes the group's cells from their constraint graph. Children
// are not released.
func (g *SimpleGroup) Release() {
	g.release()
}
