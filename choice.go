package bramble

import "fmt"

// ChoiceMode selects how ChoiceBehavior changes the selection.
type ChoiceMode uint8

const (
	// ChoiceSingle selects the clicked object and deselects the rest.
	ChoiceSingle ChoiceMode = iota
	// ChoiceToggle is ChoiceSingle, except clicking the selected object
	// deselects it.
	ChoiceToggle
	// ChoiceMultiple flips the clicked object and leaves the rest alone.
	ChoiceMultiple
)

func (m ChoiceMode) String() string {
	switch m {
	case ChoiceSingle:
		return "single"
	case ChoiceToggle:
		return "toggle"
	case ChoiceMultiple:
		return "multiple"
	}
	return fmt.Sprintf("ChoiceMode(%d)", uint8(m))
}

// ChoiceBehavior selects Selectable children of its group. The selection
// changes on release, and only when the pointer is still over the object
// that was pressed.
type ChoiceBehavior struct {
	behaviorBase
	mode   ChoiceMode
	target Selectable
}

// NewChoiceBehavior creates a selection behavior in the given mode.
func NewChoiceBehavior(mode ChoiceMode) *ChoiceBehavior {
	return &ChoiceBehavior{behaviorBase: newBehaviorBase(), mode: mode}
}

// Mode returns the selection mode.
func (c *ChoiceBehavior) Mode() ChoiceMode { return c.mode }

// SetMode changes the selection mode.
func (c *ChoiceBehavior) SetMode(m ChoiceMode) { c.mode = m }

// Selection returns the selected children of the group in paint order.
func (c *ChoiceBehavior) Selection() []Selectable {
	if c.group == nil {
		return nil
	}
	var out []Selectable
	for _, child := range c.group.Children() {
		if s, ok := child.(Selectable); ok && s.Selected() {
			out = append(out, s)
		}
	}
	return out
}

// ClearSelection deselects every child of the group.
func (c *ChoiceBehavior) ClearSelection() {
	for _, s := range c.Selection() {
		s.SetSelected(false)
	}
}

// Start records the front-most selectable child under the pointer.
func (c *ChoiceBehavior) Start(e BehaviorEvent) bool {
	if !c.canStart(e) {
		return false
	}
	local := toLocal(c.group, e.Point())
	if !insideGroup(c.group, local) {
		return false
	}
	s, ok := childAt(c.group, local).(Selectable)
	if !ok {
		return false
	}
	c.target = s
	c.setState("choice", StateRunningInside)
	return true
}

// Running tracks whether the pointer is still over the pressed object.
func (c *ChoiceBehavior) Running(e BehaviorEvent) bool {
	if c.endsRun(e) {
		return false
	}
	if c.state == StateIdle || !e.IsPointerMotion() {
		return false
	}
	local := toLocal(c.group, e.Point())
	if insideGroup(c.group, local) && c.target.Contains(local) {
		c.setState("choice", StateRunningInside)
	} else {
		c.setState("choice", StateRunningOutside)
	}
	return true
}

// Stop applies the selection change if the pointer is still inside.
func (c *ChoiceBehavior) Stop(e BehaviorEvent) bool {
	if c.state == StateIdle || !e.Matches(c.triggers.Stop) {
		return false
	}
	if c.state == StateRunningInside {
		c.choose(c.target)
	}
	c.target = nil
	c.setState("choice", StateIdle)
	return true
}

// Cancel abandons the press without touching the selection.
func (c *ChoiceBehavior) Cancel(e BehaviorEvent) bool {
	if c.state == StateIdle || !e.Matches(c.triggers.Cancel) {
		return false
	}
	c.target = nil
	c.setState("choice", StateIdle)
	return true
}

func (c *ChoiceBehavior) choose(s Selectable) {
	switch c.mode {
	case ChoiceMultiple:
		s.SetSelected(!s.Selected())
	case ChoiceToggle:
		was := s.Selected()
		c.ClearSelection()
		s.SetSelected(!was)
	default:
		c.ClearSelection()
		s.SetSelected(true)
	}
}
