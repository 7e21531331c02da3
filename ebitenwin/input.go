package ebitenwin

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/bramble"
)

// buttons lists the mouse buttons in the order their held state decides the
// key of a drag: left wins over right, right over middle.
var buttons = [...]struct {
	ebiten ebiten.MouseButton
	key    bramble.Key
}{
	{ebiten.MouseButtonLeft, bramble.MouseLeft},
	{ebiten.MouseButtonRight, bramble.MouseRight},
	{ebiten.MouseButtonMiddle, bramble.MouseMiddle},
}

// snapshot is the input state sampled once per tick.
type snapshot struct {
	X, Y     int
	Held     [len(buttons)]bool
	Mods     bramble.Modifiers
	KeysDown []bramble.Key // pressed this tick
	KeysUp   []bramble.Key // released this tick
	WheelY   float64
}

// dragKey returns the held button that owns a drag, or KeyNone.
func (s snapshot) dragKey() bramble.Key {
	for i, b := range buttons {
		if s.Held[i] {
			return b.key
		}
	}
	return bramble.KeyNone
}

// translate turns the difference between two snapshots into behavior
// events. Pointer motion comes first and uses the buttons held on the
// previous tick, then button changes at the new position, then keys and
// finally the wheel.
func translate(prev, cur snapshot) []bramble.BehaviorEvent {
	var out []bramble.BehaviorEvent
	ev := func(kind bramble.EventKind, k bramble.Key) {
		out = append(out, bramble.BehaviorEvent{Kind: kind, Key: k, Modifiers: cur.Mods, X: cur.X, Y: cur.Y})
	}

	if cur.X != prev.X || cur.Y != prev.Y {
		if k := prev.dragKey(); k != bramble.KeyNone {
			ev(bramble.MouseDragged, k)
		} else {
			ev(bramble.MouseMove, bramble.KeyNone)
		}
	}
	for i, b := range buttons {
		switch {
		case cur.Held[i] && !prev.Held[i]:
			ev(bramble.MouseDown, b.key)
		case !cur.Held[i] && prev.Held[i]:
			ev(bramble.MouseUp, b.key)
		}
	}
	for _, k := range cur.KeysDown {
		ev(bramble.KeyDown, k)
	}
	for _, k := range cur.KeysUp {
		ev(bramble.KeyUp, k)
	}
	switch {
	case cur.WheelY > 0:
		ev(bramble.ScrollWheel, bramble.ScrollUp)
	case cur.WheelY < 0:
		ev(bramble.ScrollWheel, bramble.ScrollDown)
	}
	return out
}

// keyMap maps the Ebitengine keys bramble understands. Keys missing here
// never reach behaviors.
var keyMap = map[ebiten.Key]bramble.Key{
	ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd',
	ebiten.KeyE: 'e', ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h',
	ebiten.KeyI: 'i', ebiten.KeyJ: 'j', ebiten.KeyK: 'k', ebiten.KeyL: 'l',
	ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o', ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q', ebiten.KeyR: 'r', ebiten.KeyS: 's', ebiten.KeyT: 't',
	ebiten.KeyU: 'u', ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x',
	ebiten.KeyY: 'y', ebiten.KeyZ: 'z',

	ebiten.KeyDigit0: '0', ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3', ebiten.KeyDigit4: '4', ebiten.KeyDigit5: '5',
	ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7', ebiten.KeyDigit8: '8',
	ebiten.KeyDigit9: '9',

	ebiten.KeyEscape:    bramble.KeyEscape,
	ebiten.KeyEnter:     bramble.KeyEnter,
	ebiten.KeySpace:     bramble.KeySpace,
	ebiten.KeyBackspace: bramble.KeyBackspace,
	ebiten.KeyDelete:    bramble.KeyDelete,
	ebiten.KeyTab:       bramble.KeyTab,

	ebiten.KeyArrowLeft:  bramble.KeyArrowLeft,
	ebiten.KeyArrowRight: bramble.KeyArrowRight,
	ebiten.KeyArrowUp:    bramble.KeyArrowUp,
	ebiten.KeyArrowDown:  bramble.KeyArrowDown,
}

// mapKeys converts the keys it knows and drops the rest.
func mapKeys(dst []bramble.Key, keys []ebiten.Key) []bramble.Key {
	for _, k := range keys {
		if bk, ok := keyMap[k]; ok {
			dst = append(dst, bk)
		}
	}
	return dst
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() bramble.Modifiers {
	var mods bramble.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= bramble.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= bramble.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= bramble.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= bramble.ModCommand
	}
	return mods
}

// poller samples Ebitengine's input state. The key buffers are reused
// across ticks.
type poller struct {
	pressed, released []ebiten.Key
}

func (p *poller) poll() snapshot {
	var s snapshot
	s.X, s.Y = ebiten.CursorPosition()
	for i, b := range buttons {
		s.Held[i] = ebiten.IsMouseButtonPressed(b.ebiten)
	}
	s.Mods = readModifiers()
	p.pressed = inpututil.AppendJustPressedKeys(p.pressed[:0])
	p.released = inpututil.AppendJustReleasedKeys(p.released[:0])
	s.KeysDown = mapKeys(nil, p.pressed)
	s.KeysUp = mapKeys(nil, p.released)
	_, s.WheelY = ebiten.Wheel()
	return s
}
