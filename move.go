package bramble

// MoveBehavior drags the children of its group. Positions snap to a grid
// relative to the object's current origin.
type MoveBehavior struct {
	behaviorBase
	gridSize int

	// start and last are pointer positions in the group's child space.
	start, last Point
	target      GraphicalObject
}

// NewMoveBehavior creates a move behavior snapping to gridSize units. Use 1
// for free movement.
func NewMoveBehavior(gridSize int) (*MoveBehavior, error) {
	if gridSize < 1 {
		return nil, ErrInvalidGridSize
	}
	return &MoveBehavior{behaviorBase: newBehaviorBase(), gridSize: gridSize}, nil
}

// GridSize returns the snapping step.
func (m *MoveBehavior) GridSize() int { return m.gridSize }

// Target returns the object being moved, or nil when idle.
func (m *MoveBehavior) Target() GraphicalObject {
	if m.state == StateIdle {
		return nil
	}
	return m.target
}

// snap fixes now to the grid anchored at start. The remainder is rounded to
// the nearer grid line; ties go to the lower line.
func (m *MoveBehavior) snap(now, start int) int {
	g := m.gridSize
	fixed := start + (now-start)/g*g
	diff := (now - start) % g
	if diff <= g-diff {
		return fixed
	}
	return fixed + g
}

// Start picks the front-most child under the pointer.
func (m *MoveBehavior) Start(e BehaviorEvent) bool {
	if !m.canStart(e) {
		return false
	}
	local := toLocal(m.group, e.Point())
	if !insideGroup(m.group, local) {
		return false
	}
	child := childAt(m.group, local)
	if child == nil {
		return false
	}
	m.start, m.last = local, local
	m.target = child
	m.setState("move", StateRunningInside)
	return true
}

// Running follows the pointer while the button is held. Outside the group
// the object stays put.
func (m *MoveBehavior) Running(e BehaviorEvent) bool {
	if m.endsRun(e) {
		return false
	}
	if m.state == StateIdle || !e.IsPointerMotion() {
		return false
	}
	local := toLocal(m.group, e.Point())
	if !insideGroup(m.group, local) {
		m.setState("move", StateRunningOutside)
		return true
	}
	m.setState("move", StateRunningInside)

	r := m.target.BoundingBox()
	x := m.snap(r.X-m.last.X+local.X, r.X)
	y := m.snap(r.Y-m.last.Y+local.Y, r.Y)
	if x != r.X || y != r.Y {
		m.last.X += x - r.X
		m.last.Y += y - r.Y
		m.target.MoveTo(x, y)
	}
	return true
}

// Stop leaves the object where it is.
func (m *MoveBehavior) Stop(e BehaviorEvent) bool {
	if m.state == StateIdle || !e.Matches(m.triggers.Stop) {
		return false
	}
	m.setState("move", StateIdle)
	m.target = nil
	return true
}

// Cancel puts the object back where the move started.
func (m *MoveBehavior) Cancel(e BehaviorEvent) bool {
	if m.state == StateIdle || !e.Matches(m.triggers.Cancel) {
		return false
	}
	r := m.target.BoundingBox()
	m.target.MoveTo(r.X-m.last.X+m.start.X, r.Y-m.last.Y+m.start.Y)
	m.setState("move", StateIdle)
	m.target = nil
	return true
}
