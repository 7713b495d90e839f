//go:build !headless

// Package window runs the machine in a desktop window.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// layoutKeys are the ebiten keys in frontend.Layout order.
var layoutKeys = [machine.KeyCount]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV,
}

var (
	pixelOn  = color.RGBA{R: 0xE0, G: 0xF0, B: 0xD0, A: 0xFF}
	pixelOff = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xFF}
)

// Game implements ebiten.Game for a machine.
type Game struct {
	logger  *log.Logger
	machine frontend.Machine
	runner  frontend.Frame
	speaker frontend.Speaker
	pixels  []byte
	paused  bool
}

// New returns the game for the machine. The speaker can be nil.
func New(logger *log.Logger, m frontend.Machine, r frontend.Frame, speaker frontend.Speaker) *Game {
	return &Game{
		logger:  logger,
		machine: m,
		runner:  r,
		speaker: speaker,
		pixels:  make([]byte, machine.DisplayWidth*machine.DisplayHeight*4),
	}
}

// Run opens the window and blocks until it is closed or the machine faults.
func Run(logger *log.Logger, m frontend.Machine, r frontend.Frame, speaker frontend.Speaker, scale int) error {
	ebiten.SetWindowSize(machine.DisplayWidth*scale, machine.DisplayHeight*scale)
	ebiten.SetWindowTitle("retrochip8")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(frontend.FrameRate)

	err := ebiten.RunGame(New(logger, m, r, speaker))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update polls the keyboard and runs one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for position, key := range layoutKeys {
		g.machine.SetKey(frontend.KeyAt(position), ebiten.IsKeyPressed(key))
	}

	return g.step(inpututil.IsKeyJustPressed(ebiten.KeyP))
}

// step runs one frame unless paused. The speaker follows the sound timer
// and is silenced while paused or after a machine fault.
func (g *Game) step(togglePause bool) error {
	if togglePause {
		g.paused = !g.paused
		g.logger.Info("Pause toggled", log.String("state", pauseState(g.paused)))
	}

	if g.paused {
		g.setSound(false)
		return nil
	}

	if err := g.runner.Frame(); err != nil {
		g.setSound(false)
		return err
	}
	g.setSound(g.machine.SoundActive())
	return nil
}

// Draw renders the framebuffer.
func (g *Game) Draw(screen *ebiten.Image) {
	g.render()
	screen.WritePixels(g.pixels)
}

// render converts the framebuffer to RGBA pixels.
func (g *Game) render() {
	fb := g.machine.Framebuffer()
	for y := range machine.DisplayHeight {
		for x := range machine.DisplayWidth {
			c := pixelOff
			if fb[y][x] {
				c = pixelOn
			}
			offset := (y*machine.DisplayWidth + x) * 4
			g.pixels[offset] = c.R
			g.pixels[offset+1] = c.G
			g.pixels[offset+2] = c.B
			g.pixels[offset+3] = c.A
		}
	}
}

// Layout returns the native display resolution, ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return machine.DisplayWidth, machine.DisplayHeight
}

func (g *Game) setSound(active bool) {
	if g.speaker != nil {
		g.speaker.SetActive(active)
	}
}

func pauseState(paused bool) string {
	if paused {
		return "paused"
	}
	return "running"
}
