package bramble

import (
	"fmt"
	"image/color"

	"github.com/phanxgames/bramble/constraint"
)

// HighlightColor is the frame color drawn around selected shapes.
var HighlightColor color.Color = color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}

// shape holds the state every primitive shape shares. Its property cells are
// exported through embedding, so r.X.Set(10) or r.Width.SetConstraint(...)
// work on any shape.
type shape struct {
	id       uint32
	kind     string
	parent   Group
	selected bool

	X, Y, Width, Height *constraint.Cell[int]
	Color               *constraint.Cell[color.Color]
}

func (s *shape) init(g *constraint.Graph, kind string, r Rect, col color.Color) {
	if g == nil {
		panic("bramble: nil constraint graph")
	}
	s.id = nextObjectID()
	s.kind = kind
	s.X = constraint.NewCell(g, cellName(kind, s.id, "x"), r.X)
	s.Y = constraint.NewCell(g, cellName(kind, s.id, "y"), r.Y)
	s.Width = constraint.NewCell(g, cellName(kind, s.id, "width"), r.Width)
	s.Height = constraint.NewCell(g, cellName(kind, s.id, "height"), r.Height)
	s.Color = constraint.NewCell(g, cellName(kind, s.id, "color"), col)
}

// Name returns a debug name such as "filledRect#4".
func (s *shape) Name() string {
	return fmt.Sprintf("%s#%d", s.kind, s.id)
}

func (s *shape) BoundingBox() Rect {
	return Rect{X: s.X.Get(), Y: s.Y.Get(), Width: s.Width.Get(), Height: s.Height.Get()}
}

func (s *shape) MoveTo(x, y int) {
	s.X.Set(x)
	s.Y.Set(y)
}

// SetBounds moves and resizes the shape in one call.
func (s *shape) SetBounds(r Rect) {
	s.X.Set(r.X)
	s.Y.Set(r.Y)
	s.Width.Set(r.Width)
	s.Height.Set(r.Height)
}

func (s *shape) Contains(p Point) bool {
	return s.BoundingBox().Contains(p)
}

func (s *shape) Group() Group { return s.parent }

func (s *shape) SetGroup(g Group) error {
	if g != nil && s.parent != nil {
		return ErrAlreadyHasGroup
	}
	s.parent = g
	return nil
}

func (s *shape) Selected() bool { return s.selected }

func (s *shape) SetSelected(selected bool) { s.selected = selected }

// Release removes the shape's cells from their constraint graph. The shape
// must not be used afterwards.
func (s *shape) Release() {
	s.X.Release()
	s.Y.Release()
	s.Width.Release()
	s.Height.Release()
	s.Color.Release()
}

func (s *shape) drawHighlight(c Canvas, b Rect) error {
	if !s.selected {
		return nil
	}
	c.SetColor(HighlightColor)
	c.SetLineWidth(1)
	c.DrawRectangle(float64(b.X)-2, float64(b.Y)-2, float64(b.Width)+4, float64(b.Height)+4)
	if err := c.Stroke(); err != nil {
		return fmt.Errorf("highlight %s: %w", s.Name(), err)
	}
	return nil
}

// FilledRect is a solid rectangle.
type FilledRect struct {
	shape
}

// NewFilledRect creates a filled rectangle whose cells live in g.
func NewFilledRect(g *constraint.Graph, r Rect, col color.Color) *FilledRect {
	s := &FilledRect{}
	s.init(g, "filledRect", r, col)
	return s
}

func (s *FilledRect) Draw(c Canvas, clip Rect) error {
	b := s.BoundingBox()
	if !b.Intersects(clip) {
		return nil
	}
	c.SetColor(s.Color.Get())
	c.DrawRectangle(float64(b.X), float64(b.Y), float64(b.Width), float64(b.Height))
	if err := c.Fill(); err != nil {
		return fmt.Errorf("fill %s: %w", s.Name(), err)
	}
	return s.drawHighlight(c, b)
}

// OutlineRect is a rectangle frame. The stroke lies inside the bounding box.
type OutlineRect struct {
	shape
	LineThickness *constraint.Cell[int]
}

// NewOutlineRect creates a rectangle outline whose cells live in g.
func NewOutlineRect(g *constraint.Graph, r Rect, col color.Color, lineThickness int) *OutlineRect {
	s := &OutlineRect{}
	s.init(g, "outlineRect", r, col)
	s.LineThickness = constraint.NewCell(g, cellName(s.kind, s.id, "lineThickness"), lineThickness)
	return s
}

func (s *OutlineRect) Draw(c Canvas, clip Rect) error {
	b := s.BoundingBox()
	if !b.Intersects(clip) {
		return nil
	}
	lw := float64(s.LineThickness.Get())
	c.SetColor(s.Color.Get())
	c.SetLineWidth(lw)
	c.DrawRectangle(float64(b.X)+lw/2, float64(b.Y)+lw/2, float64(b.Width)-lw, float64(b.Height)-lw)
	if err := c.Stroke(); err != nil {
		return fmt.Errorf("stroke %s: %w", s.Name(), err)
	}
	return s.drawHighlight(c, b)
}

// Release removes the shape's cells from their constraint graph.
func (s *OutlineRect) Release() {
	s.shape.Release()
	s.LineThickness.Release()
}

// FilledEllipse is a solid ellipse inscribed in its bounding box.
type FilledEllipse struct {
	shape
}

// NewFilledEllipse creates a filled ellipse whose cells live in g.
func NewFilledEllipse(g *constraint.Graph, r Rect, col color.Color) *FilledEllipse {
	s := &FilledEllipse{}
	s.init(g, "filledEllipse", r, col)
	return s
}

func (s *FilledEllipse) Draw(c Canvas, clip Rect) error {
	b := s.BoundingBox()
	if !b.Intersects(clip) {
		return nil
	}
	rx, ry := float64(b.Width)/2, float64(b.Height)/2
	c.SetColor(s.Color.Get())
	c.DrawEllipse(float64(b.X)+rx, float64(b.Y)+ry, rx, ry)
	if err := c.Fill(); err != nil {
		return fmt.Errorf("fill %s: %w", s.Name(), err)
	}
	return s.drawHighlight(c, b)
}

// OutlineEllipse is an ellipse outline inscribed in its bounding box.
type OutlineEllipse struct {
	shape
	LineThickness *constraint.Cell[int]
}

// NewOutlineEllipse creates an ellipse outline whose cells live in g.
func NewOutlineEllipse(g *constraint.Graph, r Rect, col color.Color, lineThickness int) *OutlineEllipse {
	s := &OutlineEllipse{}
	s.init(g, "outlineEllipse", r, col)
	s.LineThickness = constraint.NewCell(g, cellName(s.kind, s.id, "lineThickness"), lineThickness)
	return s
}

func (s *OutlineEllipse) Draw(c Canvas, clip Rect) error {
	b := s.BoundingBox()
	if !b.Intersects(clip) {
		return nil
	}
	lw := float64(s.LineThickness.Get())
	rx, ry := float64(b.Width)/2, float64(b.Height)/2
	c.SetColor(s.Color.Get())
	c.SetLineWidth(lw)
	c.DrawEllipse(float64(b.X)+rx, float64(b.Y)+ry, rx-lw/2, ry-lw/2)
	if err := c.Stroke(); err != nil {
		return fmt.Errorf("stroke %s: %w", s.Name(), err)
	}
	return s.drawHighlight(c, b)
}

// Release removes the shape's cells from their constraint graph.
func (s *OutlineEllipse) Release() {
	s.shape.Release()
	s.LineThickness.Release()
}
