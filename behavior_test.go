package bramble

import (
	"slices"
	"testing"
)

// phaseBehavior claims in the phases listed in claims and records every
// phase it is asked.
type phaseBehavior struct {
	behaviorBase
	claims map[string]bool
	asked  []string
}

func (p *phaseBehavior) phase(name string) bool {
	p.asked = append(p.asked, name)
	return p.claims[name]
}

func (p *phaseBehavior) Start(BehaviorEvent) bool   { return p.phase("start") }
func (p *phaseBehavior) Running(BehaviorEvent) bool { return p.phase("running") }
func (p *phaseBehavior) Stop(BehaviorEvent) bool    { return p.phase("stop") }
func (p *phaseBehavior) Cancel(BehaviorEvent) bool  { return p.phase("cancel") }

func TestCheckPhaseOrder(t *testing.T) {
	tests := []struct {
		claim     string
		wantAsked []string
		want      bool
	}{
		{"start", []string{"start"}, true},
		{"running", []string{"start", "running"}, true},
		{"stop", []string{"start", "running", "stop"}, true},
		{"cancel", []string{"start", "running", "stop", "cancel"}, true},
		{"", []string{"start", "running", "stop", "cancel"}, false},
	}
	for _, tt := range tests {
		t.Run("claim "+tt.claim, func(t *testing.T) {
			b := &phaseBehavior{behaviorBase: newBehaviorBase(), claims: map[string]bool{tt.claim: true}}
			if got := Check(b, BehaviorEvent{Kind: MouseDown}); got != tt.want {
				t.Errorf("Check = %v, want %v", got, tt.want)
			}
			if !slices.Equal(b.asked, tt.wantAsked) {
				t.Errorf("phases asked = %v, want %v", b.asked, tt.wantAsked)
			}
		})
	}
}

func TestTriggerSetters(t *testing.T) {
	b := newBehaviorBase()
	if b.Triggers() != DefaultTriggers() {
		t.Fatalf("new behavior triggers = %+v", b.Triggers())
	}
	start := BehaviorEvent{Kind: MouseDown, Key: MouseRight, Modifiers: ModAlt}
	stop := BehaviorEvent{Kind: MouseUp, Key: MouseRight}
	cancel := BehaviorEvent{Kind: KeyDown, Key: 'q'}
	b.SetStartEvent(start)
	b.SetStopEvent(stop)
	b.SetCancelEvent(cancel)
	b.SetGroup(NewWindow(10, 10, nil))
	if got := b.Triggers(); got != (Triggers{Start: start, Stop: stop, Cancel: cancel}) {
		t.Errorf("triggers = %+v", got)
	}
	if !b.canStart(BehaviorEvent{Kind: MouseDown, Key: MouseRight, Modifiers: ModAlt | ModShift}) {
		t.Error("alt+shift right press should match an alt right start")
	}
	if b.canStart(BehaviorEvent{Kind: MouseDown, Key: MouseRight}) {
		t.Error("plain right press should not match an alt right start")
	}
	b.SetGroup(nil)
	if b.canStart(start) {
		t.Error("a detached behavior started")
	}
}
