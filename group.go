package bramble

import "slices"

// Group is a GraphicalObject that owns an ordered list of children. Child
// order is paint order: the last child is drawn last and sits in front.
//
// A group also collects the behaviors registered on it and on its
// descendants. While the group is detached they stay pending in its list;
// once it is attached, every behavior is forwarded up the chain until the
// top-level Window holds it in its live list.
type Group interface {
	GraphicalObject

	// AddChild appends child and makes this group its owner. A child that
	// already has a group is rejected with ErrAlreadyHasGroup and neither
	// group changes.
	AddChild(child GraphicalObject) error
	// RemoveChild detaches child. ErrNotInGroup if child is not listed.
	RemoveChild(child GraphicalObject) error
	// BringChildToFront moves child to the end of the paint order.
	BringChildToFront(child GraphicalObject) error
	// ResizeToChildren sets the group's width and height to the furthest
	// right and bottom edges among its children.
	ResizeToChildren()
	// Children returns the child list in paint order. The returned slice
	// MUST NOT be mutated by the caller.
	Children() []GraphicalObject

	// ParentToChild maps a point from the parent's space into this group's
	// child space.
	ParentToChild(p Point) Point
	// ChildToParent is the inverse of ParentToChild, up to truncation.
	ChildToParent(p Point) Point

	// AddBehavior registers b. b is claimed by this group when it has no
	// group yet, and is forwarded to the parent when attached.
	AddBehavior(b Behavior)
	// RemoveBehavior unregisters b here and up the chain. A behavior owned
	// by this group is released.
	RemoveBehavior(b Behavior)
	// Behaviors returns the behaviors registered on this group and its
	// descendants. For a Window these are the live behaviors.
	Behaviors() []Behavior
}

// groupCore implements the child list, ownership and behavior relay shared
// by every Group. self is the outer Group value handed to children and
// behaviors.
type groupCore struct {
	self      Group
	parent    Group
	children  []GraphicalObject
	behaviors []Behavior
}

func (gc *groupCore) Group() Group { return gc.parent }

// SetGroup attaches or detaches the group. Behaviors collected while
// detached are forwarded to the new parent; on detach they are withdrawn
// from the old parent's chain and stay pending here.
func (gc *groupCore) SetGroup(g Group) error {
	if g != nil && gc.parent != nil {
		return ErrAlreadyHasGroup
	}
	old := gc.parent
	gc.parent = g
	pending := slices.Clone(gc.behaviors)
	if g == nil && old != nil {
		for _, b := range pending {
			old.RemoveBehavior(b)
		}
	}
	if g != nil {
		for _, b := range pending {
			g.AddBehavior(b)
		}
	}
	return nil
}

func (gc *groupCore) AddChild(child GraphicalObject) error {
	if child == nil {
		return ErrNilChild
	}
	if child.Group() != nil {
		return ErrAlreadyHasGroup
	}
	if isAncestor(child, gc.self) {
		return ErrGroupCycle
	}
	gc.children = append(gc.children, child)
	if err := child.SetGroup(gc.self); err != nil {
		gc.children = gc.children[:len(gc.children)-1]
		return err
	}
	if debugEnabled(gc.self) {
		debugCheckTreeDepth(gc.self)
		debugCheckChildCount(gc.self)
	}
	return nil
}

// AddChildren adds each child in order and stops at the first error.
func (gc *groupCore) AddChildren(children ...GraphicalObject) error {
	for _, c := range children {
		if err := gc.AddChild(c); err != nil {
			return err
		}
	}
	return nil
}

func (gc *groupCore) RemoveChild(child GraphicalObject) error {
	i := gc.indexOf(child)
	if i < 0 {
		return ErrNotInGroup
	}
	gc.children = slices.Delete(gc.children, i, i+1)
	return child.SetGroup(nil)
}

// RemoveChildren removes each child in order and stops at the first error.
func (gc *groupCore) RemoveChildren(children ...GraphicalObject) error {
	for _, c := range children {
		if err := gc.RemoveChild(c); err != nil {
			return err
		}
	}
	return nil
}

func (gc *groupCore) BringChildToFront(child GraphicalObject) error {
	i := gc.indexOf(child)
	if i < 0 {
		return ErrNotInGroup
	}
	gc.children = append(slices.Delete(gc.children, i, i+1), child)
	return nil
}

func (gc *groupCore) Children() []GraphicalObject {
	return gc.children
}

// NumChildren returns the number of children.
func (gc *groupCore) NumChildren() int {
	return len(gc.children)
}

// childExtent returns the furthest right and bottom edges of the children.
func (gc *groupCore) childExtent() (w, h int) {
	for _, c := range gc.children {
		b := c.BoundingBox()
		w = max(w, b.MaxX())
		h = max(h, b.MaxY())
	}
	return w, h
}

func (gc *groupCore) drawChildren(c Canvas, clip Rect) error {
	for _, child := range gc.children {
		if err := child.Draw(c, clip); err != nil {
			return err
		}
	}
	return nil
}

func (gc *groupCore) AddBehavior(b Behavior) {
	if b == nil {
		return
	}
	if b.Group() == nil {
		b.SetGroup(gc.self)
	}
	if !slices.Contains(gc.behaviors, b) {
		gc.behaviors = append(gc.behaviors, b)
	}
	if gc.parent != nil {
		gc.parent.AddBehavior(b)
	}
}

// AddBehaviors registers each behavior in order.
func (gc *groupCore) AddBehaviors(bs ...Behavior) {
	for _, b := range bs {
		gc.AddBehavior(b)
	}
}

func (gc *groupCore) RemoveBehavior(b Behavior) {
	if i := slices.Index(gc.behaviors, b); i >= 0 {
		gc.behaviors = slices.Delete(gc.behaviors, i, i+1)
	}
	if gc.parent != nil {
		gc.parent.RemoveBehavior(b)
	}
	if b != nil && b.Group() == gc.self {
		b.SetGroup(nil)
	}
}

// RemoveBehaviors unregisters each behavior in order.
func (gc *groupCore) RemoveBehaviors(bs ...Behavior) {
	for _, b := range bs {
		gc.RemoveBehavior(b)
	}
}

func (gc *groupCore) Behaviors() []Behavior {
	return gc.behaviors
}

func (gc *groupCore) indexOf(child GraphicalObject) int {
	if child == nil {
		return -1
	}
	return slices.Index(gc.children, child)
}

// isAncestor reports whether candidate is g or one of g's ancestors.
func isAncestor(candidate GraphicalObject, g Group) bool {
	for p := g; p != nil; p = p.Group() {
		if p == candidate {
			return true
		}
	}
	return false
}
