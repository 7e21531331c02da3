package constraint

import "fmt"

// Cell is one constrained property of type T. A cell starts unconstrained;
// SetConstraint swaps in a formula that computes its value from other cells.
//
// Values are pulled: Get re-evaluates the active constraint on every read.
// Writes and constraint replacement push a change wave through the graph so
// dependents re-derive and listeners hear about it.
type Cell[T comparable] struct {
	g     *Graph
	id    int
	gen   uint32
	name  string
	value T
	c     Constraint[T]
}

// NewCell adds an unconstrained cell holding v to g. The name is used in
// cycle errors and log records.
func NewCell[T comparable](g *Graph, name string, v T) *Cell[T] {
	if g == nil {
		panic("constraint: nil graph")
	}
	c := &Cell[T]{g: g, name: name, value: v, c: NewNoConstraint[T]()}
	c.id, c.gen = g.add(name, c.refresh)
	return c
}

// Name returns the cell's debug name.
func (c *Cell[T]) Name() string { return c.name }

// node returns the cell's slot, or -1 once the cell is released.
func (c *Cell[T]) node() (*Graph, int) {
	if c.released() {
		return c.g, -1
	}
	return c.g, c.id
}

func (c *Cell[T]) released() bool { return !c.g.alive(c.id, c.gen) }

// Graph returns the graph the cell belongs to.
func (c *Cell[T]) Graph() *Graph { return c.g }

// Get returns the cell's value, re-evaluating its constraint if constrained.
// A read that re-enters a cell already under evaluation returns the cell's
// last value, which is what breaks multi-way cycles. A released cell keeps
// returning its last value.
func (c *Cell[T]) Get() T {
	if !c.c.IsConstrained() || c.released() {
		return c.value
	}
	if c.g.nodes[c.id].evaluating {
		return c.value
	}
	c.g.nodes[c.id].evaluating = true
	defer func() { c.g.nodes[c.id].evaluating = false }()
	c.value = c.c.Evaluate()
	return c.value
}

// Set writes v. An unconstrained cell stores it; a multi-way constrained
// cell forwards it to its constraint; a one-way constrained cell ignores it.
// Writes to a released cell are ignored.
func (c *Cell[T]) Set(v T) {
	if c.value == v || c.released() {
		return
	}
	switch {
	case !c.c.IsConstrained():
		c.value = v
		c.c.SetValue(v)
	case c.c.HasCycle():
		c.c.SetValue(v)
		c.value = v
	default:
		return
	}
	c.g.notify(c.id, false)
}

// SetConstraint replaces the cell's constraint. The old constraint's edges
// are dropped, the new one is seeded with the current value, and dependents
// are re-evaluated even if the value does not change. A nil constraint
// frees the cell.
//
// A one-way constraint that would make the cell depend on itself is rejected
// with a *CycleError; a dependency from another graph with ErrForeignCell;
// a released cell or dependency with ErrReleased. The cell is unchanged on
// error.
func (c *Cell[T]) SetConstraint(nc Constraint[T]) error {
	if c.released() {
		return fmt.Errorf("set constraint on %q: %w", c.name, ErrReleased)
	}
	if nc == nil {
		nc = NewNoConstraint[T]()
	}
	deps := nc.Dependencies()
	ids := make([]int, 0, len(deps))
	for _, d := range deps {
		dg, did := d.node()
		if dg != c.g {
			return &ForeignCellError{Cell: c.Name(), Dependency: d.Name()}
		}
		if did < 0 {
			return fmt.Errorf("%q depends on %q: %w", c.name, d.Name(), ErrReleased)
		}
		if !nc.HasCycle() {
			if path := c.g.pathTo(c.id, did); path != nil {
				return c.cycleError(path)
			}
		}
		ids = append(ids, did)
	}

	c.g.unlinkDeps(c.id)
	for _, did := range ids {
		c.g.link(did, c.id)
	}
	c.c = nc
	// Seed without pinning: a new multi-way formula takes effect at once.
	nc.SetValue(c.value)
	nc.Invalidate()
	Logger().Debug("constraint replaced", "cell", c.Name(),
		"constrained", nc.IsConstrained(), "cyclic", nc.HasCycle(), "deps", len(ids))
	c.g.notify(c.id, true)
	return nil
}

// Constraint returns the active constraint.
func (c *Cell[T]) Constraint() Constraint[T] { return c.c }

// IsConstrained reports whether the active constraint computes the value.
func (c *Cell[T]) IsConstrained() bool { return c.c.IsConstrained() }

// OnChange registers fn to run whenever the cell's value is written or
// re-derived by a change wave. forced is true when the wave was caused by a
// constraint replacement. On a released cell it registers nothing and
// returns a Handle whose Remove does nothing.
func (c *Cell[T]) OnChange(fn func(forced bool)) Handle {
	if c.released() {
		return Handle{}
	}
	return c.g.watch(c.id, fn)
}

// Release removes the cell from its graph. Formulas that still list it as a
// dependency keep evaluating but no longer receive its change waves.
// Releasing twice is a no-op.
func (c *Cell[T]) Release() {
	if c.released() {
		return
	}
	c.g.remove(c.id)
}

// refresh re-derives the cell during a change wave.
func (c *Cell[T]) refresh() bool {
	c.c.Invalidate()
	old := c.value
	return c.Get() != old
}

func (c *Cell[T]) cycleError(path []int) error {
	names := make([]string, 0, len(path)+1)
	for _, id := range path {
		names = append(names, c.g.nodes[id].name)
	}
	names = append(names, c.Name())
	return &CycleError{Cell: c.Name(), Path: names}
}
