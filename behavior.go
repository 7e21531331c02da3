package bramble

// Behavior interprets raw input events as one kind of interaction on the
// children of its group. Each event is offered to the phases in order
// Start, Running, Stop, Cancel; a phase returns true to claim the event.
//
// Phases never fail: an event a phase does not apply to yields false.
type Behavior interface {
	// Group returns the group whose children the behavior operates on.
	Group() Group
	// SetGroup is called by Group.AddBehavior and Group.RemoveBehavior.
	SetGroup(g Group)
	// State returns the current phase.
	State() State

	Start(e BehaviorEvent) bool
	Running(e BehaviorEvent) bool
	Stop(e BehaviorEvent) bool
	Cancel(e BehaviorEvent) bool
}

// Check offers e to b's phases in order and stops at the first that claims
// it.
func Check(b Behavior, e BehaviorEvent) bool {
	return b.Start(e) || b.Running(e) || b.Stop(e) || b.Cancel(e)
}

// behaviorBase holds the group, state and triggers every behavior shares.
type behaviorBase struct {
	group    Group
	state    State
	triggers Triggers
}

func newBehaviorBase() behaviorBase {
	return behaviorBase{triggers: DefaultTriggers()}
}

func (b *behaviorBase) Group() Group     { return b.group }
func (b *behaviorBase) SetGroup(g Group) { b.group = g }
func (b *behaviorBase) State() State     { return b.state }

// Triggers returns the start, stop and cancel templates.
func (b *behaviorBase) Triggers() Triggers { return b.triggers }

// SetTriggers replaces all three templates.
func (b *behaviorBase) SetTriggers(t Triggers) { b.triggers = t }

// SetStartEvent replaces the start template.
func (b *behaviorBase) SetStartEvent(e BehaviorEvent) { b.triggers.Start = e }

// SetStopEvent replaces the stop template.
func (b *behaviorBase) SetStopEvent(e BehaviorEvent) { b.triggers.Stop = e }

// SetCancelEvent replaces the cancel template.
func (b *behaviorBase) SetCancelEvent(e BehaviorEvent) { b.triggers.Cancel = e }

// canStart reports whether e may start the behavior: it is idle, attached
// and e matches the start template.
func (b *behaviorBase) canStart(e BehaviorEvent) bool {
	return b.state == StateIdle && b.group != nil && e.Matches(b.triggers.Start)
}

// endsRun reports whether e is a stop or cancel trigger, which Running
// leaves to the later phases.
func (b *behaviorBase) endsRun(e BehaviorEvent) bool {
	return e.Matches(b.triggers.Stop) || e.Matches(b.triggers.Cancel)
}

func (b *behaviorBase) setState(name string, s State) {
	if b.state != s {
		Logger().Debug("behavior state", "behavior", name, "from", b.state.String(), "to", s.String())
	}
	b.state = s
}
