// Package constraint is a small constraint propagation engine for binding
// object properties together.
//
// Every property is a [Cell]. A cell is free until a [Constraint] is
// installed with [Cell.SetConstraint]:
//
//	g := constraint.NewGraph()
//	left := constraint.NewCell(g, "left.x", 10)
//	right := constraint.NewCell(g, "right.x", 0)
//	err := right.SetConstraint(constraint.NewFormula(func() int {
//		return left.Get() + 40
//	}, left))
//
// Evaluation is pull-based: [Cell.Get] recomputes the formula on every read.
// Writes push a change wave along the dependency edges so that dependents
// re-derive and [Cell.OnChange] listeners run.
//
// One-way constraints ([Formula]) ignore direct writes and may not close a
// cycle; [Cell.SetConstraint] returns a [CycleError] instead. Multi-way
// constraints ([MultiWay]) accept writes and may depend on each other; a
// write pins the value until the next change driven from upstream.
//
// [Animation] wraps a [gween] tween as a source cell.
//
// [gween]: https://github.com/tanema/gween
package constraint
