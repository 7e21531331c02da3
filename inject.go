package bramble

// InjectPress dispatches a left-button press at the given window
// coordinates. Injected events go through Dispatch exactly like events from
// a real input source, so tests and scripted demos can drive behaviors.
func (w *Window) InjectPress(x, y int) bool {
	return w.Dispatch(BehaviorEvent{Kind: MouseDown, Key: MouseLeft, X: x, Y: y})
}

// InjectMove dispatches a drag to the given window coordinates with the
// left button held. Use it between InjectPress and InjectRelease.
func (w *Window) InjectMove(x, y int) bool {
	return w.Dispatch(BehaviorEvent{Kind: MouseDragged, Key: MouseLeft, X: x, Y: y})
}

// InjectHover dispatches a pointer move with no button held.
func (w *Window) InjectHover(x, y int) bool {
	return w.Dispatch(BehaviorEvent{Kind: MouseMove, X: x, Y: y})
}

// InjectRelease dispatches a left-button release at the given window
// coordinates.
func (w *Window) InjectRelease(x, y int) bool {
	return w.Dispatch(BehaviorEvent{Kind: MouseUp, Key: MouseLeft, X: x, Y: y})
}

// InjectClick is a convenience that dispatches a press followed by a release
// at the same coordinates.
func (w *Window) InjectClick(x, y int) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// InjectDrag dispatches a full drag: press at (fromX, fromY), steps-2 moves
// linearly interpolated between the endpoints, a move onto (toX, toY) and a
// release there. steps below 2 is treated as 2.
func (w *Window) InjectDrag(fromX, fromY, toX, toY, steps int) {
	if steps < 2 {
		steps = 2
	}
	w.InjectPress(fromX, fromY)
	inner := steps - 2
	for i := 1; i <= inner; i++ {
		t := float64(i) / float64(inner+1)
		x := fromX + int(float64(toX-fromX)*t)
		y := fromY + int(float64(toY-fromY)*t)
		w.InjectMove(x, y)
	}
	w.InjectMove(toX, toY)
	w.InjectRelease(toX, toY)
}

// InjectKey dispatches a key press and release at the last pointer
// position.
func (w *Window) InjectKey(k Key, mods Modifiers) {
	p := w.cursor
	w.Dispatch(BehaviorEvent{Kind: KeyDown, Key: k, Modifiers: mods, X: p.X, Y: p.Y})
	w.Dispatch(BehaviorEvent{Kind: KeyUp, Key: k, Modifiers: mods, X: p.X, Y: p.Y})
}

// InjectScroll dispatches one wheel notch, up when dy is negative and down
// otherwise, at the last pointer position.
func (w *Window) InjectScroll(dy int) bool {
	k := ScrollDown
	if dy < 0 {
		k = ScrollUp
	}
	p := w.cursor
	return w.Dispatch(BehaviorEvent{Kind: ScrollWheel, Key: k, X: p.X, Y: p.Y})
}
