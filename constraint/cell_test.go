package constraint

import (
	"errors"
	"testing"
)

func TestUnconstrainedSetGet(t *testing.T) {
	g := NewGraph()
	for _, v := range []int{0, 1, -7, 42} {
		c := NewCell(g, "x", 5)
		c.Set(v)
		if got := c.Get(); got != v {
			t.Errorf("Get() after Set(%d) = %d", v, got)
		}
	}
}

func TestNewCellNilGraphPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil graph")
		}
	}()
	NewCell[int](nil, "x", 0)
}

func TestFormulaFollowsDependency(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 1)
	b := NewCell(g, "b", 0)
	if err := b.SetConstraint(NewFormula(func() int { return a.Get() * 2 }, a)); err != nil {
		t.Fatalf("SetConstraint: %v", err)
	}
	if got := b.Get(); got != 2 {
		t.Errorf("b = %d, want 2", got)
	}
	a.Set(5)
	if got := b.Get(); got != 10 {
		t.Errorf("b after a=5 = %d, want 10", got)
	}
}

func TestFormulaIgnoresDirectWrite(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 3)
	b := NewCell(g, "b", 0)
	if err := b.SetConstraint(NewFormula(func() int { return a.Get() + 1 }, a)); err != nil {
		t.Fatal(err)
	}
	b.Set(100)
	if got := b.Get(); got != 4 {
		t.Errorf("b = %d after direct write, want 4", got)
	}
	if !b.IsConstrained() {
		t.Error("b should still be constrained")
	}
}

func TestMultiWayWriteIsVisible(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 10)
	b := NewCell(g, "b", 20)
	if err := a.SetConstraint(NewMultiWay(func() int { return b.Get() / 2 }, b)); err != nil {
		t.Fatal(err)
	}
	if err := b.SetConstraint(NewMultiWay(func() int { return a.Get() * 2 }, a)); err != nil {
		t.Fatalf("multi-way cycle rejected: %v", err)
	}

	a.Set(7)
	if got := a.Get(); got != 7 {
		t.Errorf("a = %d, want 7", got)
	}
	if got := b.Get(); got != 14 {
		t.Errorf("b = %d, want 14", got)
	}

	b.Set(40)
	if got := b.Get(); got != 40 {
		t.Errorf("b = %d, want 40", got)
	}
	if got := a.Get(); got != 20 {
		t.Errorf("a = %d, want 20", got)
	}
}

func TestMultiWayPinReleasedByUpstreamChange(t *testing.T) {
	g := NewGraph()
	src := NewCell(g, "src", 1)
	c := NewCell(g, "c", 0)
	if err := c.SetConstraint(NewMultiWay(func() int { return src.Get() + 1 }, src)); err != nil {
		t.Fatal(err)
	}

	c.Set(50)
	if got := c.Get(); got != 50 {
		t.Fatalf("c = %d after write, want 50", got)
	}
	if got := c.Get(); got != 50 {
		t.Fatalf("c = %d on second read, want 50", got)
	}

	src.Set(10)
	if got := c.Get(); got != 11 {
		t.Errorf("c = %d after upstream change, want 11", got)
	}
}

func TestReplaceConstraintForcesDependents(t *testing.T) {
	g := NewGraph()
	src := NewCell(g, "src", 3)
	dep := NewCell(g, "dep", 0)
	if err := dep.SetConstraint(NewFormula(func() int { return src.Get() }, src)); err != nil {
		t.Fatal(err)
	}

	var calls, forcedCalls int
	dep.OnChange(func(forced bool) {
		calls++
		if forced {
			forcedCalls++
		}
	})

	// Same visible value, new formula.
	if err := src.SetConstraint(NewFormula(func() int { return 3 })); err != nil {
		t.Fatal(err)
	}
	if calls != 1 || forcedCalls != 1 {
		t.Errorf("calls = %d, forced = %d; want 1, 1", calls, forcedCalls)
	}
	if got := dep.Get(); got != 3 {
		t.Errorf("dep = %d, want 3", got)
	}
}

func TestUnchangedValueStopsWave(t *testing.T) {
	g := NewGraph()
	k := NewCell(g, "k", 0)
	mid := NewCell(g, "mid", 0)
	leaf := NewCell(g, "leaf", 0)
	if err := mid.SetConstraint(NewFormula(func() int { return k.Get() / 10 }, k)); err != nil {
		t.Fatal(err)
	}
	if err := leaf.SetConstraint(NewFormula(func() int { return mid.Get() + 1 }, mid)); err != nil {
		t.Fatal(err)
	}

	var fired int
	leaf.OnChange(func(bool) { fired++ })

	k.Set(1)
	if fired != 0 {
		t.Errorf("leaf fired %d times for an unchanged mid, want 0", fired)
	}
	k.Set(10)
	if fired != 1 {
		t.Errorf("leaf fired %d times, want 1", fired)
	}
	if got := leaf.Get(); got != 2 {
		t.Errorf("leaf = %d, want 2", got)
	}
}

func TestSetEqualValueDoesNotNotify(t *testing.T) {
	g := NewGraph()
	c := NewCell(g, "c", 4)
	var fired int
	c.OnChange(func(bool) { fired++ })
	c.Set(4)
	if fired != 0 {
		t.Errorf("fired = %d, want 0", fired)
	}
	c.Set(5)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestOneWayCycleRejected(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 1)
	b := NewCell(g, "b", 0)
	if err := b.SetConstraint(NewFormula(func() int { return a.Get() + 1 }, a)); err != nil {
		t.Fatal(err)
	}

	err := a.SetConstraint(NewFormula(func() int { return b.Get() + 1 }, b))
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("err = %v, want ErrCycle", err)
	}
	var ce *CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("err is %T, want *CycleError", err)
	}
	want := []string{"a", "b", "a"}
	if len(ce.Path) != len(want) {
		t.Fatalf("Path = %v, want %v", ce.Path, want)
	}
	for i := range want {
		if ce.Path[i] != want[i] {
			t.Errorf("Path[%d] = %q, want %q", i, ce.Path[i], want[i])
		}
	}
	if a.IsConstrained() {
		t.Error("a must be left unconstrained after a rejected cycle")
	}
	a.Set(9)
	if got := b.Get(); got != 10 {
		t.Errorf("b = %d, want 10", got)
	}
}

func TestSelfReferenceRejected(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 1)
	err := a.SetConstraint(NewFormula(func() int { return a.Get() + 1 }, a))
	if !errors.Is(err, ErrCycle) {
		t.Errorf("err = %v, want ErrCycle", err)
	}
}

func TestForeignCellRejected(t *testing.T) {
	a := NewCell(NewGraph(), "a", 1)
	b := NewCell(NewGraph(), "b", 0)
	err := b.SetConstraint(NewFormula(func() int { return a.Get() }, a))
	if !errors.Is(err, ErrForeignCell) {
		t.Errorf("err = %v, want ErrForeignCell", err)
	}
}

func TestSetConstraintNilFreesCell(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 2)
	b := NewCell(g, "b", 0)
	if err := b.SetConstraint(NewFormula(func() int { return a.Get() * 3 }, a)); err != nil {
		t.Fatal(err)
	}
	if got := b.Get(); got != 6 {
		t.Fatalf("b = %d, want 6", got)
	}
	if err := b.SetConstraint(nil); err != nil {
		t.Fatal(err)
	}
	if b.IsConstrained() {
		t.Error("b should be free")
	}
	a.Set(5)
	if got := b.Get(); got != 6 {
		t.Errorf("freed b = %d, want it to keep 6", got)
	}
	b.Set(1)
	if got := b.Get(); got != 1 {
		t.Errorf("b = %d, want 1", got)
	}
}

func TestReplacingConstraintDropsOldEdges(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 1)
	b := NewCell(g, "b", 0)
	if err := b.SetConstraint(NewFormula(func() int { return a.Get() }, a)); err != nil {
		t.Fatal(err)
	}
	if err := b.SetConstraint(NewFormula(func() int { return 7 })); err != nil {
		t.Fatal(err)
	}
	// a -> b is gone, so a may now depend on b.
	if err := a.SetConstraint(NewFormula(func() int { return b.Get() }, b)); err != nil {
		t.Errorf("unexpected error after edge removal: %v", err)
	}
}

func TestHandleRemove(t *testing.T) {
	g := NewGraph()
	c := NewCell(g, "c", 0)
	var fired int
	h := c.OnChange(func(bool) { fired++ })
	c.Set(1)
	h.Remove()
	h.Remove()
	c.Set(2)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestListenerWriteIsQueued(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 0)
	mirror := NewCell(g, "mirror", 0)
	var seen []int
	a.OnChange(func(bool) { mirror.Set(a.Get() * 10) })
	mirror.OnChange(func(bool) { seen = append(seen, mirror.Get()) })

	a.Set(1)
	a.Set(2)
	if len(seen) != 2 || seen[0] != 10 || seen[1] != 20 {
		t.Errorf("seen = %v, want [10 20]", seen)
	}
}

func TestReleaseRemovesNode(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 1)
	b := NewCell(g, "b", 0)
	if err := b.SetConstraint(NewFormula(func() int { return a.Get() }, a)); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 2 {
		t.Fatalf("Len = %d, want 2", g.Len())
	}
	b.Release()
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
	var fired int
	c := NewCell(g, "c", 0) // reuses b's slot
	c.OnChange(func(bool) { fired++ })
	a.Set(2)
	if fired != 0 {
		t.Errorf("released edge still delivered a wave")
	}
}

func TestDiamondEvaluatesOncePerWave(t *testing.T) {
	g := NewGraph()
	top := NewCell(g, "top", 1)
	left := NewCell(g, "left", 0)
	right := NewCell(g, "right", 0)
	bottom := NewCell(g, "bottom", 0)
	must(t, left.SetConstraint(NewFormula(func() int { return top.Get() + 1 }, top)))
	must(t, right.SetConstraint(NewFormula(func() int { return top.Get() * 2 }, top)))
	must(t, bottom.SetConstraint(NewFormula(func() int { return left.Get() + right.Get() }, left, right)))

	var fired int
	bottom.OnChange(func(bool) { fired++ })
	top.Set(5)
	if fired != 1 {
		t.Errorf("bottom fired %d times, want 1", fired)
	}
	if got := bottom.Get(); got != 16 {
		t.Errorf("bottom = %d, want 16", got)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	g := NewGraph()
	a := NewCell(g, "a", 0)
	h := a.OnChange(func(bool) {})
	a.Release()

	b := NewCell(g, "b", 0) // takes a's slot
	var calls int
	b.OnChange(func(bool) { calls++ })
	h.Remove()
	b.Set(1)
	if calls != 1 {
		t.Errorf("b listener calls = %d after removing a's handle, want 1", calls)
	}
}

func TestDoubleReleaseKeepsNewOccupant(t *testing.T) {
	g := NewGraph()
	src := NewCell(g, "src", 1)
	a := NewCell(g, "a", 0)
	a.Release()

	b := NewCell(g, "b", 0) // takes a's slot
	if err := b.SetConstraint(NewFormula(func() int { return src.Get() * 3 }, src)); err != nil {
		t.Fatal(err)
	}
	var calls int
	b.OnChange(func(bool) { calls++ })

	a.Release()
	if g.Len() != 2 {
		t.Fatalf("Len = %d after second release, want 2", g.Len())
	}
	src.Set(2)
	if calls != 1 {
		t.Errorf("b notified %d times after src change, want 1", calls)
	}
	if got := b.Get(); got != 6 {
		t.Errorf("b = %d, want 6", got)
	}
}

func TestReleasedCellIsInert(t *testing.T) {
	g := NewGraph()
	src := NewCell(g, "src", 1)
	a := NewCell(g, "a", 4)
	a.Release()
	other := NewCell(g, "other", 0) // takes a's slot

	a.Set(9)
	if got := a.Get(); got != 4 {
		t.Errorf("released a = %d, want last value 4", got)
	}
	if got := other.Get(); got != 0 {
		t.Errorf("write to released a reached other: %d", got)
	}
	if err := a.SetConstraint(NewFormula(func() int { return 1 })); !errors.Is(err, ErrReleased) {
		t.Errorf("SetConstraint on released cell = %v, want ErrReleased", err)
	}
	err := other.SetConstraint(NewFormula(func() int { return a.Get() }, a))
	if !errors.Is(err, ErrReleased) {
		t.Errorf("depending on a released cell = %v, want ErrReleased", err)
	}
	a.OnChange(func(bool) { t.Error("listener on released cell fired") }).Remove()
	src.Set(2)
}

func TestMultiWayInstallUsesFormula(t *testing.T) {
	g := NewGraph()
	src := NewCell(g, "src", 5)
	c := NewCell(g, "c", 0)
	if err := c.SetConstraint(NewMultiWay(func() int { return src.Get() * 2 }, src)); err != nil {
		t.Fatal(err)
	}
	if got := c.Get(); got != 10 {
		t.Errorf("c = %d right after install, want 10", got)
	}

	// A later write still pins.
	c.Set(3)
	if got := c.Get(); got != 3 {
		t.Errorf("c = %d after write, want 3", got)
	}
}
