package bramble

// GraphicalObject is anything that can sit in a group: primitive shapes and
// groups themselves.
type GraphicalObject interface {
	// Draw paints the object. clip is the visible area in the object's
	// parent space; objects entirely outside it may skip drawing.
	Draw(c Canvas, clip Rect) error
	// BoundingBox returns the object's extent in its parent's space.
	BoundingBox() Rect
	// MoveTo moves the top-left corner of the bounding box to (x, y).
	MoveTo(x, y int)
	// Contains reports whether p, in parent space, hits the object.
	Contains(p Point) bool

	// Group returns the owning group, or nil when detached.
	Group() Group
	// SetGroup records the owning group. It is called by Group.AddChild and
	// Group.RemoveChild; application code should not call it directly.
	// Setting a group on an object that already has one fails with
	// ErrAlreadyHasGroup.
	SetGroup(g Group) error
}

// Selectable is an object ChoiceBehavior can select. Selected objects draw a
// highlight frame.
type Selectable interface {
	GraphicalObject
	Selected() bool
	SetSelected(selected bool)
}

// Resizable is an object whose bounds can be set directly. Shapes created by
// a ShapeBehavior are Resizable. Release frees the object's constraint cells.
type Resizable interface {
	Selectable
	SetBounds(r Rect)
	Release()
}
