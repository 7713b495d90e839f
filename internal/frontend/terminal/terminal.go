//go:build !headless

// Package terminal runs the machine inside a text terminal.
package terminal

import (
	"fmt"
	"time"

	tl "github.com/JoelOtter/termloop"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// KeyTimeout is how long a key stays pressed after the terminal reported it.
const KeyTimeout = 100 * time.Millisecond

// status line row below the display area
const statusRow = machine.DisplayHeight + 1

// directional keys of common games
var arrowKeys = map[tl.Key]int{
	tl.KeyArrowUp:    0x8,
	tl.KeyArrowDown:  0x2,
	tl.KeyArrowLeft:  0x4,
	tl.KeyArrowRight: 0x6,
	tl.KeyEnter:      0x5,
}

// display is a termloop entity that runs a frame on every draw.
type display struct {
	logger  *log.Logger
	machine frontend.Machine
	runner  frontend.Frame
	speaker frontend.Speaker
	hold    *frontend.KeyHold
	status  *tl.Text
	err     error
}

// Run takes over the terminal and blocks until Ctrl+C is pressed.
// A machine fault stops the emulation and is returned after the terminal
// is restored.
func Run(logger *log.Logger, m frontend.Machine, r frontend.Frame, speaker frontend.Speaker) error {
	d := &display{
		logger:  logger,
		machine: m,
		runner:  r,
		speaker: speaker,
		hold:    frontend.NewKeyHold(KeyTimeout),
		status:  tl.NewText(0, statusRow, "", tl.ColorDefault, tl.ColorDefault),
	}

	g := tl.NewGame()
	scr := g.Screen()
	scr.SetFps(frontend.FrameRate)
	scr.AddEntity(d)
	scr.AddEntity(d.status)
	g.Start()

	d.setSound(false)
	return d.err
}

// Tick handles input events.
func (d *display) Tick(ev tl.Event) {
	if ev.Type != tl.EventKey {
		return
	}

	key, ok := arrowKeys[ev.Key]
	if !ok {
		key, ok = frontend.KeyForRune(ev.Ch)
	}
	if ok {
		d.hold.Press(d.machine, key, time.Now())
	}
}

// Draw runs one frame and renders the framebuffer using two cells per pixel.
func (d *display) Draw(s *tl.Screen) {
	d.hold.Release(d.machine, time.Now())

	if d.err == nil {
		if err := d.runner.Frame(); err != nil {
			d.err = err
			d.logger.Debug("Machine halted", log.Err(err))
			d.status.SetText(fmt.Sprintf("halted: %s (Ctrl+C to exit)", err))
		}
		d.setSound(d.err == nil && d.machine.SoundActive())
	}

	fb := d.machine.Framebuffer()
	for y := range machine.DisplayHeight {
		for x := range machine.DisplayWidth {
			bg := tl.ColorBlack
			if fb[y][x] {
				bg = tl.ColorWhite
			}
			cell := &tl.Cell{Bg: bg, Ch: ' '}
			s.RenderCell(2*x, y, cell)
			s.RenderCell(2*x+1, y, cell)
		}
	}
}

func (d *display) setSound(active bool) {
	if d.speaker != nil {
		d.speaker.SetActive(active)
	}
}
