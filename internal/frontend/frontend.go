// Package frontend contains the parts shared by the interactive frontends.
package frontend

import (
	"time"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/runner"
)

// FrameRate is the number of frames the frontends display per second.
const FrameRate = runner.FrameRate

// Layout maps the left side of a QWERTY keyboard to the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
const Layout = "1234qwerasdfzxcv"

// layoutKeys holds the keypad index for every Layout position.
var layoutKeys = [machine.KeyCount]int{
	0x1, 0x2, 0x3, 0xC,
	0x4, 0x5, 0x6, 0xD,
	0x7, 0x8, 0x9, 0xE,
	0xA, 0x0, 0xB, 0xF,
}

// KeyAt returns the keypad index for a Layout position.
func KeyAt(position int) int {
	return layoutKeys[position]
}

// KeyForRune returns the keypad index of a typed character.
func KeyForRune(r rune) (int, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for i, c := range Layout {
		if c == r {
			return layoutKeys[i], true
		}
	}
	return 0, false
}

// Machine is the part of the machine that a frontend interacts with.
type Machine interface {
	SetKey(index int, pressed bool)
	Framebuffer() machine.Framebuffer
	SoundActive() bool
	Halted() bool
}

// Frame advances the emulation by one frame.
type Frame interface {
	Frame() error
}

// Speaker outputs the buzzer.
type Speaker interface {
	SetActive(active bool)
}

// KeyHold releases keys a fixed time after their last press. Terminals only
// report key presses, so a held key shows up as repeated presses.
type KeyHold struct {
	timeout time.Duration
	pressed map[int]time.Time
}

// NewKeyHold returns a key hold that releases keys after the timeout.
func NewKeyHold(timeout time.Duration) *KeyHold {
	return &KeyHold{
		timeout: timeout,
		pressed: make(map[int]time.Time),
	}
}

// Press marks the key as pressed at the given time.
func (h *KeyHold) Press(m Machine, key int, now time.Time) {
	h.pressed[key] = now
	m.SetKey(key, true)
}

// Release releases all keys whose last press is older than the timeout.
func (h *KeyHold) Release(m Machine, now time.Time) {
	for key, at := range h.pressed {
		if now.Sub(at) > h.timeout {
			delete(h.pressed, key)
			m.SetKey(key, false)
		}
	}
}
