// Package ebitenwin runs a bramble Window inside an Ebitengine window.
//
// Each tick the mouse, keyboard and wheel state is sampled, translated into
// bramble.BehaviorEvent values and dispatched to the window. The Raster the
// window renders into is uploaded to the screen whenever it has produced a
// new frame.
package ebitenwin

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/bramble"
)

// RunConfig configures Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height set the window size in device-independent pixels.
	// Zero takes the raster's size.
	Width, Height int
	// Background, when set, becomes the raster's clear color.
	Background color.Color
	// ShowFPS draws the frame and tick rates in the top-left corner.
	ShowFPS bool
	// OnUpdate, when set, runs once per tick before input is processed with
	// the tick duration in seconds. Returning true requests a redraw, for
	// example after advancing a constraint.Animation.
	OnUpdate func(dt float32) bool
}

// game adapts a bramble Window to ebiten.Game.
type game struct {
	win    *bramble.Window
	raster *bramble.Raster
	cfg    RunConfig

	poller  poller
	prev    snapshot
	frame   *ebiten.Image
	shownAt int // raster frame count last uploaded
}

// Run opens a window and blocks until it is closed. win should use raster as
// its renderer; Run installs it if win has none.
func Run(win *bramble.Window, raster *bramble.Raster, cfg RunConfig) error {
	if win == nil || raster == nil {
		return fmt.Errorf("ebitenwin: window and raster are required")
	}
	w, h := raster.Size()
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg.Width, cfg.Height = w, h
	}
	if cfg.Background != nil {
		raster.SetBackground(cfg.Background)
	}
	win.SetRenderer(raster)
	win.Redraw(win)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	g := &game{win: win, raster: raster, cfg: cfg, shownAt: -1}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenwin: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if g.cfg.OnUpdate != nil {
		dt := float32(1.0 / float64(ebiten.TPS()))
		if g.cfg.OnUpdate(dt) {
			g.win.Redraw(g.win)
		}
	}

	cur := g.poller.poll()
	for _, e := range translate(g.prev, cur) {
		g.win.Dispatch(e)
	}
	g.prev = cur
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if n := g.raster.Frames(); n != g.shownAt || g.frame == nil {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImageFromImage(g.raster.Image())
		g.shownAt = n
	}
	screen.DrawImage(g.frame, nil)

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.raster.Size()
}
