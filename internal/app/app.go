//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	ebiten ebiten.Key
	key    Key
}{
	{ebiten.KeySpace, KeyPause},
	{ebiten.KeyC, KeyClear},
	{ebiten.KeyG, KeyGrid},
	{ebiten.KeyU, KeyUI},
	{ebiten.KeyS, KeySave},
	{ebiten.KeyL, KeyLoad},
	{ebiten.KeyN, KeyStep},
	{ebiten.KeyR, KeyReset},
}

// Game adapts a Life grid to the ebiten.Game interface. Update runs the
// input controller and advances the grid once per tick; Draw only reads.
type Game struct {
	grid    Grid
	ctl     *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
	keys  []Key

	lastDraw time.Time
}

// New constructs a Game for the provided grid.
func New(grid Grid, cfg *Config) *Game {
	h, w := grid.Dimensions()
	return &Game{
		grid:    grid,
		ctl:     NewController(grid, cfg),
		painter: render.NewGridPainter(w, h, cfg.Scale, color.White, color.Black),
		overlay: ui.NewOverlay(w, h, cfg.Scale),
		hud:     ui.NewHUD(),
		scale:   cfg.Scale,
	}
}

// Update decodes input, applies it and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.keys = g.keys[:0]
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.ebiten) {
			g.keys = append(g.keys, b.key)
		}
	}
	mx, my := ebiten.CursorPosition()
	g.ctl.Apply(Input{
		CursorX: mx,
		CursorY: my,
		Left:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Keys:    g.keys,
	})

	g.ctl.Frame()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	var frame time.Duration
	if !g.lastDraw.IsZero() {
		frame = now.Sub(g.lastDraw)
	}
	g.lastDraw = now

	if err := g.painter.Blit(screen, g.grid); err != nil {
		g.ctl.logger.Printf("draw: %v", err)
	}

	view := g.ctl.View()
	if view.ShowGrid {
		g.overlay.Draw(screen)
	}
	if view.ShowUI {
		g.hud.Draw(screen, ui.Status{
			FPS:        ebiten.ActualFPS(),
			FrameTime:  frame,
			Paused:     g.grid.Paused(),
			Generation: g.grid.Generation(),
			Population: g.grid.Population(),
			Timestep:   g.grid.Timestep(),
		})
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	h, w := g.grid.Dimensions()
	return w * g.scale, h * g.scale
}
