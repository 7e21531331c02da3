package constraint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCycle is matched by every *CycleError.
var ErrCycle = errors.New("constraint: dependency cycle")

// ErrForeignCell is matched by every *ForeignCellError.
var ErrForeignCell = errors.New("constraint: dependency belongs to another graph")

// ErrReleased reports use of a cell after Release.
var ErrReleased = errors.New("constraint: cell was released")

// CycleError reports a one-way constraint that would close a dependency
// cycle. Path lists the cells along the cycle, starting and ending with Cell.
type CycleError struct {
	Cell string
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("constraint: cycle on %q: %s", e.Cell, strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// ForeignCellError reports a dependency on a cell from a different graph.
type ForeignCellError struct {
	Cell       string
	Dependency string
}

func (e *ForeignCellError) Error() string {
	return fmt.Sprintf("constraint: %q cannot depend on %q from another graph", e.Cell, e.Dependency)
}

func (e *ForeignCellError) Unwrap() error { return ErrForeignCell }
