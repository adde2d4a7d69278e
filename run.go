package mindmap

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// IconFont is optional glyph font data for node icons.
	IconFont []byte
	// LabelSize is the label font size; 0 selects DefaultLabelSize.
	LabelSize float64
	// OnFrame, if set, runs at the start of every update on the game
	// goroutine. Returning an error stops the loop.
	OnFrame func(v *View) error
}

// game adapts a View to ebiten.Game.
type game struct {
	view    *View
	face    *LabelFace
	cfg     RunConfig
	quitErr error
}

// Run opens a window and drives v until the window closes. It blocks.
func Run(v *View, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	if cfg.Title == "" {
		cfg.Title = "mindmap"
	}
	face, err := NewLabelFace(cfg.LabelSize, cfg.IconFont)
	if err != nil {
		return err
	}
	v.camera.SetViewport(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{view: v, face: face, cfg: cfg}
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return fmt.Errorf("mindmap: run: %w", err)
	}
	return g.quitErr
}

func (g *game) Update() error {
	if g.cfg.OnFrame != nil {
		if err := g.cfg.OnFrame(g.view); err != nil {
			g.quitErr = err
			return ebiten.Termination
		}
	}
	g.view.pollInput()
	g.view.Update(float32(1.0 / float64(ebiten.TPS())))
	if s := g.view.script; s != nil && s.Done() && len(g.view.screenshotQueue) == 0 {
		g.quitErr = s.Err()
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.face)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 4, screen.Bounds().Dy()-16)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.camera.SetViewport(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}
