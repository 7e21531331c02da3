// Package bramble is a toolkit for interactive vector-graphics editors.
//
// Bramble provides a scene graph of nested groups with coordinate
// transforms and z-order, property cells bound together by constraints (see
// the constraint subpackage), and behaviors that turn raw mouse and keyboard
// events into interactions such as moving, creating and selecting shapes.
//
// # Quick start
//
// A [Window] is the root of the tree. Shapes and groups are added to it,
// behaviors are registered on the group whose children they act on, and
// input events are fed to [Window.Dispatch]:
//
//	g := constraint.NewGraph()
//	raster := bramble.NewRaster(640, 480)
//	win := bramble.NewWindow(640, 480, raster)
//
//	canvas := bramble.NewSimpleGroup(g, bramble.Rect{X: 20, Y: 20, Width: 600, Height: 440})
//	canvas.AddChild(bramble.NewFilledRect(g, bramble.Rect{Width: 40, Height: 40}, colornames.Tomato))
//	move, _ := bramble.NewMoveBehavior(10)
//	canvas.AddBehavior(move)
//	win.AddChild(canvas)
//
//	win.InjectDrag(30, 30, 130, 90, 8)
//
// The ebitenwin subpackage opens a real window, translates Ebitengine input
// into [BehaviorEvent] values and presents the [Raster].
//
// # Scene graph
//
// Every visual element is a [GraphicalObject]. Groups ([SimpleGroup],
// [ScaledGroup], [Window]) own an ordered child list; the last child is
// painted last. An object belongs to at most one group: adding an owned
// object fails with [ErrAlreadyHasGroup].
//
// Object properties are [constraint.Cell] values exposed as fields, so a
// property can be read, written or bound to other cells:
//
//	label.X.SetConstraint(constraint.NewFormula(func() int {
//		return box.X.Get() + box.Width.Get() + 8
//	}, box.X, box.Width))
//
// # Behaviors
//
// A [Behavior] runs the phases Start, Running, Stop and Cancel, driven by
// three trigger templates matched with [BehaviorEvent.Matches]. Behaviors
// registered on a detached group stay pending and go live when the group
// is attached to a window.
package bramble
