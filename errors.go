package bramble

import "errors"

var (
	// ErrAlreadyHasGroup is returned when an object that already belongs to a
	// group is added to another one.
	ErrAlreadyHasGroup = errors.New("bramble: object already has a group")

	// ErrNotInGroup is returned when an operation names an object that is not
	// a child of the group.
	ErrNotInGroup = errors.New("bramble: object is not in the group")

	// ErrGroupCycle is returned when adding a child would make a group its
	// own ancestor.
	ErrGroupCycle = errors.New("bramble: adding child would create a cycle")

	// ErrNilChild is returned when a nil object is passed as a child.
	ErrNilChild = errors.New("bramble: nil child")

	// ErrTopLevel is returned when a Window is given a parent group.
	ErrTopLevel = errors.New("bramble: window cannot be added to a group")

	// ErrInvalidGridSize is returned by NewMoveBehavior for a grid size below 1.
	ErrInvalidGridSize = errors.New("bramble: grid size must be a positive integer")

	// ErrUnsupportedShape is returned by NewShapeBehavior for an unknown kind.
	ErrUnsupportedShape = errors.New("bramble: unsupported shape kind")
)
