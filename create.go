package bramble

import (
	"fmt"
	"image/color"

	"github.com/phanxgames/bramble/constraint"
)

// ShapeKind selects the primitive a ShapeBehavior creates.
type ShapeKind uint8

const (
	KindOutlineRect    ShapeKind = iota // OutlineRect
	KindFilledRect                      // FilledRect
	KindOutlineEllipse                  // OutlineEllipse
	KindFilledEllipse                   // FilledEllipse
)

func (k ShapeKind) String() string {
	switch k {
	case KindOutlineRect:
		return "outline-rect"
	case KindFilledRect:
		return "filled-rect"
	case KindOutlineEllipse:
		return "outline-ellipse"
	case KindFilledEllipse:
		return "filled-ellipse"
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// SetupFunc is called once on every shape a ShapeBehavior keeps, typically
// to install constraints on it.
type SetupFunc func(obj Resizable)

// ShapeBehavior creates new shapes in its group by rubber-banding: press at
// one corner, drag to the other, release to keep the shape. Shapes one unit
// wide or tall are discarded on release.
type ShapeBehavior struct {
	behaviorBase
	graph *constraint.Graph
	kind  ShapeKind
	setup SetupFunc

	color         color.Color
	lineThickness int

	anchor  Point // first corner, in child space
	current Resizable
}

// NewShapeBehavior returns a behavior creating shapes of the given kind with
// cells in g. lineThickness only applies to outline kinds. setup may be nil.
func NewShapeBehavior(g *constraint.Graph, kind ShapeKind, col color.Color, lineThickness int, setup SetupFunc) (*ShapeBehavior, error) {
	if g == nil {
		panic("bramble: nil constraint graph")
	}
	if kind > KindFilledEllipse {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, kind)
	}
	return &ShapeBehavior{
		behaviorBase:  newBehaviorBase(),
		graph:         g,
		kind:          kind,
		setup:         setup,
		color:         col,
		lineThickness: lineThickness,
	}, nil
}

// Kind returns the kind of shape created.
func (s *ShapeBehavior) Kind() ShapeKind { return s.kind }

// Color returns the color given to new shapes.
func (s *ShapeBehavior) Color() color.Color { return s.color }

// SetColor changes the color given to shapes created from now on.
func (s *ShapeBehavior) SetColor(c color.Color) { s.color = c }

// LineThickness returns the outline width given to new shapes.
func (s *ShapeBehavior) LineThickness() int { return s.lineThickness }

// SetLineThickness changes the outline width given to shapes created from
// now on.
func (s *ShapeBehavior) SetLineThickness(t int) { s.lineThickness = t }

// Current returns the shape being created, or nil when idle.
func (s *ShapeBehavior) Current() Resizable {
	return s.current
}

func (s *ShapeBehavior) make(r Rect) Resizable {
	switch s.kind {
	case KindFilledRect:
		return NewFilledRect(s.graph, r, s.color)
	case KindOutlineEllipse:
		return NewOutlineEllipse(s.graph, r, s.color, s.lineThickness)
	case KindFilledEllipse:
		return NewFilledEllipse(s.graph, r, s.color)
	default:
		return NewOutlineRect(s.graph, r, s.color, s.lineThickness)
	}
}

// resize stretches obj between the two corners, both inclusive.
func resize(obj Resizable, a, b Point) {
	obj.SetBounds(Rect{
		X:      min(a.X, b.X),
		Y:      min(a.Y, b.Y),
		Width:  abs(a.X-b.X) + 1,
		Height: abs(a.Y-b.Y) + 1,
	})
}

func isTrivial(obj GraphicalObject) bool {
	r := obj.BoundingBox()
	return r.Width <= 1 || r.Height <= 1
}

// Start inserts a zero-size shape at the pointer.
func (s *ShapeBehavior) Start(e BehaviorEvent) bool {
	if !s.canStart(e) {
		return false
	}
	local := toLocal(s.group, e.Point())
	if !insideGroup(s.group, local) {
		return false
	}
	obj := s.make(Rect{X: local.X, Y: local.Y})
	if err := s.group.AddChild(obj); err != nil {
		Logger().Debug("shape start rejected", "error", err)
		obj.Release()
		return false
	}
	s.anchor = local
	s.current = obj
	s.setState("shape", StateRunningInside)
	return true
}

// Running resizes the shape to the pointer. Outside the group the shape
// keeps its last size.
func (s *ShapeBehavior) Running(e BehaviorEvent) bool {
	if s.endsRun(e) {
		return false
	}
	if s.state == StateIdle || !e.IsPointerMotion() {
		return false
	}
	local := toLocal(s.group, e.Point())
	if !insideGroup(s.group, local) {
		s.setState("shape", StateRunningOutside)
		return true
	}
	s.setState("shape", StateRunningInside)
	resize(s.current, s.anchor, local)
	return true
}

// Stop keeps the shape unless it is trivial.
func (s *ShapeBehavior) Stop(e BehaviorEvent) bool {
	if s.state == StateIdle || !e.Matches(s.triggers.Stop) {
		return false
	}
	obj := s.current
	s.current = nil
	s.setState("shape", StateIdle)
	if isTrivial(obj) {
		s.discard(obj)
		return true
	}
	if s.setup != nil {
		s.setup(obj)
	}
	return true
}

// Cancel removes the shape being created.
func (s *ShapeBehavior) Cancel(e BehaviorEvent) bool {
	if s.state == StateIdle || !e.Matches(s.triggers.Cancel) {
		return false
	}
	obj := s.current
	s.current = nil
	s.setState("shape", StateIdle)
	s.discard(obj)
	return true
}

func (s *ShapeBehavior) discard(obj Resizable) {
	if g := obj.Group(); g != nil {
		if err := g.RemoveChild(obj); err != nil {
			Logger().Debug("shape discard", "error", err)
		}
	}
	obj.Release()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
