package bramble

import (
	"math"

	"github.com/phanxgames/bramble/constraint"
)

// ScaledGroup is a group that translates and then scales its children.
// Width and Height are in child units; the bounding box in the parent is
// Width*ScaleX by Height*ScaleY. Scale factors must be positive.
type ScaledGroup struct {
	groupCore
	frame

	ScaleX, ScaleY *constraint.Cell[float64]
}

// NewScaledGroup creates a detached group at r.X, r.Y whose child space is
// r.Width by r.Height units, scaled by sx and sy when drawn.
func NewScaledGroup(g *constraint.Graph, r Rect, sx, sy float64) *ScaledGroup {
	sg := &ScaledGroup{}
	sg.init(g, "scaledGroup", r)
	sg.ScaleX = constraint.NewCell(g, cellName(sg.kind, sg.id, "scaleX"), sx)
	sg.ScaleY = constraint.NewCell(g, cellName(sg.kind, sg.id, "scaleY"), sy)
	sg.self = sg
	return sg
}

func (g *ScaledGroup) BoundingBox() Rect {
	return Rect{
		X:      g.X.Get(),
		Y:      g.Y.Get(),
		Width:  int(float64(g.Width.Get()) * g.ScaleX.Get()),
		Height: int(float64(g.Height.Get()) * g.ScaleY.Get()),
	}
}

func (g *ScaledGroup) Contains(p Point) bool {
	return g.BoundingBox().Contains(p)
}

// ParentToChild returns ((p.X-x)/sx, (p.Y-y)/sy), truncated toward zero.
func (g *ScaledGroup) ParentToChild(p Point) Point {
	x, y := g.X.Get(), g.Y.Get()
	return Point{
		X: int(float64(p.X-x) / g.ScaleX.Get()),
		Y: int(float64(p.Y-y) / g.ScaleY.Get()),
	}
}

// ChildToParent returns (p.X*sx+x, p.Y*sy+y), truncated toward zero.
func (g *ScaledGroup) ChildToParent(p Point) Point {
	x, y := g.X.Get(), g.Y.Get()
	return Point{
		X: int(float64(p.X)*g.ScaleX.Get() + float64(x)),
		Y: int(float64(p.Y)*g.ScaleY.Get() + float64(y)),
	}
}

func (g *ScaledGroup) ResizeToChildren() {
	w, h := g.childExtent()
	g.Width.Set(w)
	g.Height.Set(h)
}

func (g *ScaledGroup) Draw(c Canvas, clip Rect) error {
	b := g.BoundingBox()
	area := b.Intersect(clip)
	if area.Empty() {
		return nil
	}
	sx, sy := g.ScaleX.Get(), g.ScaleY.Get()
	c.Push()
	defer c.Pop()
	c.ClipRect(float64(area.X), float64(area.Y), float64(area.Width), float64(area.Height))
	c.Translate(float64(b.X), float64(b.Y))
	c.Scale(sx, sy)
	return g.drawChildren(c, g.clipToChild(area, b.X, b.Y, sx, sy))
}

// clipToChild maps a parent-space clip into child space, growing it to whole
// units so no visible pixel is dropped.
func (g *ScaledGroup) clipToChild(r Rect, x, y int, sx, sy float64) Rect {
	x0 := math.Floor(float64(r.X-x) / sx)
	y0 := math.Floor(float64(r.Y-y) / sy)
	x1 := math.Ceil(float64(r.MaxX()-x) / sx)
	y1 := math.Ceil(float64(r.MaxY()-y) / sy)
	return Rect{X: int(x0), Y: int(y0), Width: int(x1 - x0), Height: int(y1 - y0)}
}

// Release removes the group's cells from their constraint graph. Children
// are not released.
func (g *ScaledGroup) Release() {
	g.release()
	g.ScaleX.Release()
	g.ScaleY.Release()
}
