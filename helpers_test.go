package bramble

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/phanxgames/bramble/constraint"
)

// --- Recording canvas ---

// recordingCanvas logs every drawing call as a short string.
type recordingCanvas struct {
	ops     []string
	depth   int
	failOps bool
}

func (c *recordingCanvas) Push() { c.depth++; c.ops = append(c.ops, "push") }
func (c *recordingCanvas) Pop()  { c.depth--; c.ops = append(c.ops, "pop") }

func (c *recordingCanvas) Translate(x, y float64) {
	c.ops = append(c.ops, fmt.Sprintf("translate %g %g", x, y))
}

func (c *recordingCanvas) Scale(x, y float64) {
	c.ops = append(c.ops, fmt.Sprintf("scale %g %g", x, y))
}

func (c *recordingCanvas) ClipRect(x, y, w, h float64) {
	c.ops = append(c.ops, fmt.Sprintf("clip %g %g %g %g", x, y, w, h))
}

func (c *recordingCanvas) SetColor(col color.Color) {}

func (c *recordingCanvas) SetLineWidth(w float64) {
	c.ops = append(c.ops, fmt.Sprintf("linewidth %g", w))
}

func (c *recordingCanvas) DrawRectangle(x, y, w, h float64) {
	c.ops = append(c.ops, fmt.Sprintf("rect %g %g %g %g", x, y, w, h))
}

func (c *recordingCanvas) DrawEllipse(x, y, rx, ry float64) {
	c.ops = append(c.ops, fmt.Sprintf("ellipse %g %g %g %g", x, y, rx, ry))
}

var errCanvas = fmt.Errorf("canvas failure")

func (c *recordingCanvas) Fill() error {
	c.ops = append(c.ops, "fill")
	if c.failOps {
		return errCanvas
	}
	return nil
}

func (c *recordingCanvas) Stroke() error {
	c.ops = append(c.ops, "stroke")
	if c.failOps {
		return errCanvas
	}
	return nil
}

// --- Recording renderer ---

type recordingRenderer struct {
	redraws []GraphicalObject
}

func (r *recordingRenderer) Redraw(root GraphicalObject) {
	r.redraws = append(r.redraws, root)
}

// --- Recording behavior ---

// recordingBehavior claims every event whose kind is in claim and logs each
// event it sees under its name.
type recordingBehavior struct {
	behaviorBase
	name  string
	log   *[]string
	claim map[EventKind]bool
	onRun func(e BehaviorEvent)
}

func newRecordingBehavior(name string, log *[]string, claim ...EventKind) *recordingBehavior {
	b := &recordingBehavior{behaviorBase: newBehaviorBase(), name: name, log: log, claim: map[EventKind]bool{}}
	for _, k := range claim {
		b.claim[k] = true
	}
	return b
}

func (b *recordingBehavior) Start(e BehaviorEvent) bool {
	*b.log = append(*b.log, b.name+":"+e.Kind.String())
	if b.onRun != nil {
		b.onRun(e)
	}
	return b.claim[e.Kind]
}

func (b *recordingBehavior) Running(BehaviorEvent) bool { return false }
func (b *recordingBehavior) Stop(BehaviorEvent) bool    { return false }
func (b *recordingBehavior) Cancel(BehaviorEvent) bool  { return false }

// --- Fixtures ---

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

// newTestScene returns a 400x400 window holding a SimpleGroup that covers
// it entirely.
func newTestScene(t *testing.T) (*constraint.Graph, *Window, *SimpleGroup) {
	t.Helper()
	g := constraint.NewGraph()
	win := NewWindow(400, 400, nil)
	grp := NewSimpleGroup(g, Rect{Width: 400, Height: 400})
	mustNoErr(t, win.AddChild(grp))
	return g, win, grp
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func assertOrigin(t *testing.T, obj GraphicalObject, x, y int) {
	t.Helper()
	b := obj.BoundingBox()
	if b.X != x || b.Y != y {
		t.Errorf("origin = (%d, %d), want (%d, %d)", b.X, b.Y, x, y)
	}
}

func assertState(t *testing.T, b Behavior, want State) {
	t.Helper()
	if got := b.State(); got != want {
		t.Errorf("state = %s, want %s", got, want)
	}
}
