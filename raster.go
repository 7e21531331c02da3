package bramble

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
)

// Raster is a Renderer that paints into an in-memory pixel buffer through a
// gg drawing context. Every Redraw clears the buffer to Background and draws
// the requested object clipped to the buffer.
type Raster struct {
	ctx        *gg.Context
	background color.Color
	frames     int
	lastErr    error
}

// NewRaster creates a width x height pixel buffer cleared to white.
func NewRaster(width, height int) *Raster {
	r := &Raster{ctx: gg.NewContext(width, height), background: color.White}
	r.ctx.ClearWithColor(gg.FromColor(r.background))
	return r
}

// SetBackground sets the color the buffer is cleared to before each redraw.
func (r *Raster) SetBackground(c color.Color) {
	r.background = c
}

// Redraw clears the buffer and draws root into it. A drawing error is
// logged and kept for Err.
func (r *Raster) Redraw(root GraphicalObject) {
	r.ctx.ClearWithColor(gg.FromColor(r.background))
	clip := Rect{Width: r.ctx.Width(), Height: r.ctx.Height()}
	r.lastErr = root.Draw(r.ctx, clip)
	if r.lastErr != nil {
		Logger().Error("redraw failed", "error", r.lastErr)
	}
	r.frames++
}

// Err returns the error from the most recent Redraw, if any.
func (r *Raster) Err() error { return r.lastErr }

// Frames returns the number of redraws performed.
func (r *Raster) Frames() int { return r.frames }

// Context returns the underlying drawing context.
func (r *Raster) Context() *gg.Context { return r.ctx }

// Image returns the current contents of the buffer.
func (r *Raster) Image() image.Image { return r.ctx.Image() }

// Size returns the buffer dimensions in pixels.
func (r *Raster) Size() (int, int) { return r.ctx.Width(), r.ctx.Height() }

// SavePNG writes the buffer to path as a PNG file.
func (r *Raster) SavePNG(path string) error {
	if err := r.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Screenshot writes the buffer to dir with a timestamped file name derived
// from label and returns the path written.
func (r *Raster) Screenshot(dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := r.SavePNG(path); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// Close releases the drawing context.
func (r *Raster) Close() error {
	return r.ctx.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
