package bramble

import "fmt"

// Point is an integer position. Window coordinates have their origin at the
// top-left, with Y increasing downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is an axis-aligned integer rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// MaxX returns the x coordinate just past the right edge.
func (r Rect) MaxX() int { return r.X + r.Width }

// MaxY returns the y coordinate just past the bottom edge.
func (r Rect) MaxY() int { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle. The left and top
// edges are inside, the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() &&
		p.Y >= r.Y && p.Y < r.MaxY()
}

// Intersect returns the overlap of r and other, or the zero Rect when they
// do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.MaxX(), other.MaxX()), min(r.MaxY(), other.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Intersects reports whether r and other share any area.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).Empty()
}

// State is the phase a Behavior is in.
type State uint8

const (
	StateIdle           State = iota // waiting for the start trigger
	StateRunningInside               // running with the pointer inside the group
	StateRunningOutside              // running with the pointer outside the group
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunningInside:
		return "running-inside"
	case StateRunningOutside:
		return "running-outside"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// EventKind identifies the kind of a BehaviorEvent.
type EventKind uint8

const (
	MouseDown    EventKind = iota + 1 // a mouse button was pressed
	MouseUp                           // a mouse button was released
	MouseMove                         // the pointer moved with no button held
	MouseDragged                      // the pointer moved with a button held
	ScrollWheel                       // the wheel turned; Key is ScrollUp or ScrollDown
	KeyDown                           // a key was pressed
	KeyUp                             // a key was released
)

var eventKindNames = [...]string{
	MouseDown:    "mouse-down",
	MouseUp:      "mouse-up",
	MouseMove:    "mouse-move",
	MouseDragged: "mouse-dragged",
	ScrollWheel:  "scroll-wheel",
	KeyDown:      "key-down",
	KeyUp:        "key-up",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// IsMouse reports whether k is a pointer kind (down, up, move or drag).
func (k EventKind) IsMouse() bool {
	return k >= MouseDown && k <= MouseDragged
}

// Modifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type Modifiers uint8

const (
	ModShift   Modifiers = 1 << iota // Shift key
	ModCtrl                          // Control key
	ModAlt                           // Alt / Option key
	ModCommand                       // Meta / Command / Windows key
)

// Has reports whether every modifier in m is set in mods.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

// Key is a keyboard key, mouse button or scroll direction. Printable keys use
// their lower-case rune value; named keys sit in the Unicode private-use area;
// mouse and scroll codes lie above the Unicode range so they never collide
// with keyboard codes.
type Key int32

const (
	KeyAny  Key = -1 // template wildcard: matches any key
	KeyNone Key = 0  // no key, e.g. a plain mouse move

	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = 32
	KeyDelete    Key = 127
)

const (
	KeyArrowLeft Key = 0xE000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
)

const (
	MouseLeft Key = 0x110000 + iota
	MouseMiddle
	MouseRight
	ScrollUp
	ScrollDown
)

// IsMouseButton reports whether k is one of the mouse button codes.
func (k Key) IsMouseButton() bool {
	return k >= MouseLeft && k <= MouseRight
}

func (k Key) String() string {
	switch k {
	case KeyAny:
		return "any"
	case KeyNone:
		return "none"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeySpace:
		return "space"
	case KeyDelete:
		return "delete"
	case KeyArrowLeft:
		return "arrow-left"
	case KeyArrowRight:
		return "arrow-right"
	case KeyArrowUp:
		return "arrow-up"
	case KeyArrowDown:
		return "arrow-down"
	case MouseLeft:
		return "mouse-left"
	case MouseMiddle:
		return "mouse-middle"
	case MouseRight:
		return "mouse-right"
	case ScrollUp:
		return "scroll-up"
	case ScrollDown:
		return "scroll-down"
	}
	if k > 32 && k < 127 {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%#x)", int32(k))
}

// objectIDCounter is a plain counter (no atomic; bramble is single-threaded).
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// cellName builds the debug name of one property cell of an object.
func cellName(kind string, id uint32, prop string) string {
	return fmt.Sprintf("%s#%d.%s", kind, id, prop)
}
