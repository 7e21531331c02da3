package bramble

import "slices"

// Window is the top-level group. It has identity transforms, owns the live
// behavior list and forwards redraw requests to its Renderer. Unlike other
// groups, a Window never has a parent.
//
// Window is not safe for concurrent use; all calls must come from the
// goroutine that delivers input.
type Window struct {
	groupCore

	width, height int
	renderer      Renderer

	debug       bool
	dispatching bool
	queue       []BehaviorEvent
	cursor      Point
}

// NewWindow creates a window of the given size. r may be nil, in which case
// redraw requests are dropped.
func NewWindow(width, height int, r Renderer) *Window {
	w := &Window{width: width, height: height, renderer: r}
	w.self = w
	return w
}

// SetRenderer replaces the window's renderer.
func (w *Window) SetRenderer(r Renderer) {
	w.renderer = r
}

// Size returns the window's width and height.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

// SetSize changes the window's bounds.
func (w *Window) SetSize(width, height int) {
	w.width, w.height = width, height
}

// SetDebugMode enables or disables debug mode for this window. When
// enabled, tree depth and child count warnings are logged as children are
// added anywhere in the window's tree. Other windows are unaffected.
func (w *Window) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// SetGroup rejects every parent: a window is always top-level.
func (w *Window) SetGroup(g Group) error {
	if g != nil {
		return ErrTopLevel
	}
	return nil
}

func (w *Window) BoundingBox() Rect {
	return Rect{Width: w.width, Height: w.height}
}

// MoveTo is a no-op; a window's origin is fixed.
func (w *Window) MoveTo(x, y int) {}

func (w *Window) Contains(p Point) bool {
	return w.BoundingBox().Contains(p)
}

func (w *Window) ParentToChild(p Point) Point { return p }
func (w *Window) ChildToParent(p Point) Point { return p }

// ResizeToChildren grows or shrinks the window to fit its children.
func (w *Window) ResizeToChildren() {
	w.width, w.height = w.childExtent()
}

func (w *Window) Draw(c Canvas, clip Rect) error {
	area := w.BoundingBox().Intersect(clip)
	if area.Empty() {
		return nil
	}
	return w.drawChildren(c, area)
}

// Redraw asks the renderer to repaint obj.
func (w *Window) Redraw(obj GraphicalObject) {
	if w.renderer != nil && obj != nil {
		w.renderer.Redraw(obj)
	}
}

// Cursor returns the position of the last pointer event dispatched.
func (w *Window) Cursor() Point {
	return w.cursor
}

// Dispatch delivers e to every live behavior in registration order and
// requests a redraw of the window when any behavior claimed it. It reports
// whether e was claimed.
//
// A Dispatch issued from inside a behavior, for example by a setup callback,
// is queued and runs after the current one completes; it then reports false.
func (w *Window) Dispatch(e BehaviorEvent) bool {
	if w.dispatching {
		w.queue = append(w.queue, e)
		return false
	}
	w.dispatching = true
	defer func() { w.dispatching = false }()

	claimed := w.dispatch(e)
	for len(w.queue) > 0 {
		next := w.queue[0]
		w.queue = w.queue[1:]
		w.dispatch(next)
	}
	return claimed
}

func (w *Window) dispatch(e BehaviorEvent) bool {
	if e.Kind != KeyDown && e.Kind != KeyUp {
		w.cursor = e.Point()
	}
	// Behaviors may register or remove behaviors while handling e.
	live := slices.Clone(w.behaviors)
	claimed := false
	for _, b := range live {
		if Check(b, e) {
			claimed = true
		}
	}
	Logger().Debug("dispatch", "event", e.String(), "behaviors", len(live), "claimed", claimed)
	if claimed {
		w.Redraw(w)
	}
	return claimed
}
