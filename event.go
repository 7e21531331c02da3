package bramble

import "fmt"

// BehaviorEvent is one input event in window coordinates. Events are plain
// values; the same type describes trigger templates for behaviors.
type BehaviorEvent struct {
	Kind      EventKind
	Modifiers Modifiers
	Key       Key // key, mouse button or scroll direction
	X, Y      int
}

// Default trigger templates.
var (
	DefaultStartEvent  = BehaviorEvent{Kind: MouseDown, Key: MouseLeft}
	DefaultStopEvent   = BehaviorEvent{Kind: MouseUp, Key: MouseLeft}
	DefaultCancelEvent = BehaviorEvent{Kind: KeyDown, Key: KeyEscape}
)

// Point returns the event position.
func (e BehaviorEvent) Point() Point {
	return Point{e.X, e.Y}
}

// Matches reports whether e satisfies template t: the kinds are equal, t's
// key is KeyAny or equal to e's key, and every modifier in t is held in e.
// Extra modifiers on e do not prevent a match. Positions are ignored.
func (e BehaviorEvent) Matches(t BehaviorEvent) bool {
	if e.Kind != t.Kind {
		return false
	}
	if t.Key != KeyAny && t.Key != e.Key {
		return false
	}
	return e.Modifiers.Has(t.Modifiers)
}

// IsPointerMotion reports whether e is a move or drag.
func (e BehaviorEvent) IsPointerMotion() bool {
	return e.Kind == MouseMove || e.Kind == MouseDragged
}

func (e BehaviorEvent) String() string {
	return fmt.Sprintf("%s %s mods=%#x at (%d,%d)", e.Kind, e.Key, uint8(e.Modifiers), e.X, e.Y)
}

// Triggers holds the three templates that drive a behavior's phases.
type Triggers struct {
	Start  BehaviorEvent
	Stop   BehaviorEvent
	Cancel BehaviorEvent
}

// DefaultTriggers returns left-press to start, left-release to stop and
// Escape to cancel.
func DefaultTriggers() Triggers {
	return Triggers{
		Start:  DefaultStartEvent,
		Stop:   DefaultStopEvent,
		Cancel: DefaultCancelEvent,
	}
}
