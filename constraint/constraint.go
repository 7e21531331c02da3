package constraint

// Source is anything a formula can depend on. Cells and animations are
// sources.
type Source interface {
	// Name returns the debug name of the underlying cell.
	Name() string
	node() (*Graph, int)
}

// Constraint computes, or declines to compute, the value of one cell.
//
// The three shipped variants are [NoConstraint] (an unconstrained cell),
// [Formula] (one-way) and [MultiWay] (cyclic, accepts direct writes).
type Constraint[T any] interface {
	// IsConstrained reports whether the cell's value comes from Evaluate.
	IsConstrained() bool
	// HasCycle reports whether the constraint opts into the forwarding
	// write protocol and may take part in dependency cycles.
	HasCycle() bool
	// Evaluate computes the current value.
	Evaluate() T
	// SetValue stores v in the constraint's local slot.
	SetValue(v T)
	// Invalidate is called when an upstream change drives the cell, before
	// it is re-evaluated.
	Invalidate()
	// Dependencies lists the sources Evaluate reads.
	Dependencies() []Source
}

// NoConstraint leaves a cell free: the cell's own value is authoritative.
type NoConstraint[T any] struct {
	value T
}

// NewNoConstraint returns the default, unconstrained constraint.
func NewNoConstraint[T any]() *NoConstraint[T] { return &NoConstraint[T]{} }

func (c *NoConstraint[T]) IsConstrained() bool    { return false }
func (c *NoConstraint[T]) HasCycle() bool         { return false }
func (c *NoConstraint[T]) Evaluate() T            { return c.value }
func (c *NoConstraint[T]) SetValue(v T)           { c.value = v }
func (c *NoConstraint[T]) Invalidate()            {}
func (c *NoConstraint[T]) Dependencies() []Source { return nil }

// Formula is a one-way constraint: the cell always takes fn's result and
// direct writes are ignored. A formula may not close a dependency cycle.
type Formula[T any] struct {
	fn    func() T
	deps  []Source
	value T
}

// NewFormula returns a one-way constraint computing fn from deps. Every cell
// fn reads must be listed in deps for changes to propagate.
func NewFormula[T any](fn func() T, deps ...Source) *Formula[T] {
	return &Formula[T]{fn: fn, deps: deps}
}

func (c *Formula[T]) IsConstrained() bool    { return true }
func (c *Formula[T]) HasCycle() bool         { return false }
func (c *Formula[T]) SetValue(v T)           { c.value = v }
func (c *Formula[T]) Invalidate()            {}
func (c *Formula[T]) Dependencies() []Source { return c.deps }

func (c *Formula[T]) Evaluate() T {
	c.value = c.fn()
	return c.value
}

// MultiWay is a cyclic constraint. A direct write pins the written value
// until the next change driven from upstream, at which point fn takes over
// again. Cells constrained by MultiWay may depend on each other.
type MultiWay[T any] struct {
	fn     func() T
	deps   []Source
	value  T
	pinned bool
}

// NewMultiWay returns a multi-way constraint computing fn from deps.
func NewMultiWay[T any](fn func() T, deps ...Source) *MultiWay[T] {
	return &MultiWay[T]{fn: fn, deps: deps}
}

func (c *MultiWay[T]) IsConstrained() bool    { return true }
func (c *MultiWay[T]) HasCycle() bool         { return true }
func (c *MultiWay[T]) Dependencies() []Source { return c.deps }
func (c *MultiWay[T]) Invalidate()            { c.pinned = false }

// SetValue pins v as the constraint's value.
func (c *MultiWay[T]) SetValue(v T) {
	c.value = v
	c.pinned = true
}

func (c *MultiWay[T]) Evaluate() T {
	if !c.pinned {
		c.value = c.fn()
	}
	return c.value
}
