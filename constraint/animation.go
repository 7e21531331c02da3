package constraint

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation is a source cell driven by a tween. Bind properties to it with a
// formula and call Update each frame; every step writes the tweened value
// into the cell, so bound properties follow.
//
// There is no global animation manager: callers drive Update themselves.
type Animation struct {
	cell  *Cell[float64]
	tween *gween.Tween
	Done  bool
}

// NewAnimation creates an animation from begin to end over duration seconds
// using the easing function fn. The cell holds begin until the first Update.
func NewAnimation(g *Graph, name string, begin, end float64, duration float32, fn ease.TweenFunc) *Animation {
	return &Animation{
		cell:  NewCell(g, name, begin),
		tween: gween.New(float32(begin), float32(end), duration, fn),
	}
}

// Update advances the tween by dt seconds and writes the new value.
func (a *Animation) Update(dt float32) {
	if a.Done {
		return
	}
	v, finished := a.tween.Update(dt)
	a.cell.Set(float64(v))
	a.Done = finished
}

// Reset rewinds the tween to its beginning.
func (a *Animation) Reset() {
	a.tween.Reset()
	v, _ := a.tween.Set(0)
	a.cell.Set(float64(v))
	a.Done = false
}

// Value returns the current tweened value.
func (a *Animation) Value() float64 { return a.cell.Get() }

// Cell returns the cell carrying the animated value.
func (a *Animation) Cell() *Cell[float64] { return a.cell }

// Name returns the name of the animated cell.
func (a *Animation) Name() string { return a.cell.Name() }

func (a *Animation) node() (*Graph, int) { return a.cell.node() }
