package bramble

import "image/color"

// Canvas is the immediate-mode drawing context objects render into.
// Coordinates are in the current user space; Push and Pop save and restore
// the transform and clip. *gg.Context satisfies Canvas.
type Canvas interface {
	Push()
	Pop()
	Translate(x, y float64)
	Scale(x, y float64)
	ClipRect(x, y, w, h float64)

	SetColor(c color.Color)
	SetLineWidth(w float64)
	DrawRectangle(x, y, w, h float64)
	DrawEllipse(x, y, rx, ry float64)
	Fill() error
	Stroke() error
}

// Renderer is the window's output surface. Redraw is a request to repaint
// root; implementations may batch requests.
type Renderer interface {
	Redraw(root GraphicalObject)
}
