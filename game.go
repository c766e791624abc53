package screendown

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size in device-independent pixels.
	Width, Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// Debug enables debug logging to stderr.
	Debug bool
	// Script, when set, replays a scripted session (see LoadTestScript).
	Script *TestRunner
	// ExitWhenScriptDone closes the window once Script has finished.
	ExitWhenScriptDone bool
	// ScreenshotDir is where scripted screenshots are written.
	// Defaults to "screenshots".
	ScreenshotDir string
}

// Game hosts a View inside Ebitengine. It implements ebiten.Game.
//
// Ebitengine calls Draw every frame, but the view only renders (and so only
// advances) when a redraw has been requested through Invalidate. Between
// requests the last frame is blitted from an offscreen image.
type Game struct {
	view *View

	dirty     atomic.Bool
	offscreen *ebiten.Image
	surface   *ImageSurface

	showFPS       bool
	runner        *TestRunner
	exitOnDone    bool
	ScreenshotDir string

	screenshotQueue []string
}

// NewGame creates a host for a fresh view built from cfg.
func NewGame(cfg *Config) *Game {
	g := &Game{ScreenshotDir: "screenshots"}
	g.view = NewView(cfg, g)
	g.dirty.Store(true)
	return g
}

// View returns the hosted view.
func (g *Game) View() *View {
	return g.view
}

// Invalidate implements Invalidator by flagging the next Draw to render.
func (g *Game) Invalidate() error {
	g.dirty.Store(true)
	return nil
}

// SetShowFPS toggles the FPS/TPS overlay.
func (g *Game) SetShowFPS(show bool) {
	g.showFPS = show
}

// Update implements ebiten.Game. A mouse press or a new touch anywhere in
// the window is a tap; every other input is ignored.
func (g *Game) Update() error {
	if g.runner != nil {
		g.runner.step(g)
		if g.exitOnDone && g.runner.Done() {
			return ebiten.Termination
		}
	}
	if pointerPressed() {
		g.view.HandleTap()
		g.dirty.Store(true)
	}
	return nil
}

func pointerPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if g.offscreen == nil || g.offscreen.Bounds().Dx() != b.Dx() || g.offscreen.Bounds().Dy() != b.Dy() {
		if g.offscreen != nil {
			g.offscreen.Deallocate()
		}
		g.offscreen = ebiten.NewImage(b.Dx(), b.Dy())
		g.surface = NewImageSurface(g.offscreen)
		g.dirty.Store(true)
	}
	if g.dirty.Swap(false) {
		g.surface.OffsetStack.Reset()
		g.view.Render(g.surface)
	}
	screen.DrawImage(g.offscreen, nil)
	g.flushScreenshots(screen)
	if g.showFPS {
		drawFPS(screen)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close stops the view's animator.
func (g *Game) Close() {
	g.view.Close()
}

// Run opens a window and runs the widget until the window is closed.
func Run(cfg *Config, rc RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if rc.Width <= 0 || rc.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", rc.Width, rc.Height)
	}

	g := NewGame(cfg)
	defer g.Close()
	g.showFPS = rc.ShowFPS
	g.view.SetDebugMode(rc.Debug)
	if rc.ScreenshotDir != "" {
		g.ScreenshotDir = rc.ScreenshotDir
	}
	if rc.Script != nil {
		g.SetTestRunner(rc.Script)
		g.exitOnDone = rc.ExitWhenScriptDone
	}

	if rc.Title != "" {
		ebiten.SetWindowTitle(rc.Title)
	}
	ebiten.SetWindowSize(rc.Width, rc.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
