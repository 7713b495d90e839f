//go:build !headless

package window

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type testMachine struct {
	fb    machine.Framebuffer
	sound bool
}

func (m *testMachine) SetKey(int, bool)                 {}
func (m *testMachine) Framebuffer() machine.Framebuffer { return m.fb }
func (m *testMachine) SoundActive() bool                { return m.sound }
func (m *testMachine) Halted() bool                     { return false }

type testRunner struct {
	frames int
	err    error
}

func (r *testRunner) Frame() error {
	if r.err != nil {
		return r.err
	}
	r.frames++
	return nil
}

type testSpeaker struct {
	active bool
	calls  int
}

func (s *testSpeaker) SetActive(active bool) {
	s.active = active
	s.calls++
}

func newTestGame(t *testing.T) (*Game, *testMachine, *testRunner, *testSpeaker) {
	t.Helper()
	m := &testMachine{}
	r := &testRunner{}
	speaker := &testSpeaker{}
	return New(log.NewTestLogger(t), m, r, speaker), m, r, speaker
}

func TestGame_Step(t *testing.T) {
	g, m, r, speaker := newTestGame(t)

	m.sound = true
	assert.NoError(t, g.step(false))
	assert.Equal(t, 1, r.frames)
	assert.True(t, speaker.active)

	m.sound = false
	assert.NoError(t, g.step(false))
	assert.Equal(t, 2, r.frames)
	assert.False(t, speaker.active)
}

func TestGame_Pause(t *testing.T) {
	g, m, r, speaker := newTestGame(t)
	m.sound = true

	assert.NoError(t, g.step(true))
	assert.True(t, g.paused)
	assert.Equal(t, 0, r.frames)
	assert.False(t, speaker.active)

	assert.NoError(t, g.step(false))
	assert.Equal(t, 0, r.frames)

	assert.NoError(t, g.step(true))
	assert.False(t, g.paused)
	assert.Equal(t, 1, r.frames)
	assert.True(t, speaker.active)
}

func TestGame_FrameError(t *testing.T) {
	g, m, r, speaker := newTestGame(t)
	m.sound = true
	assert.NoError(t, g.step(false))
	assert.True(t, speaker.active)

	r.err = machine.ErrStackUnderflow
	err := g.step(false)
	assert.True(t, errors.Is(err, machine.ErrStackUnderflow))
	assert.False(t, speaker.active)
}

func TestGame_NilSpeaker(t *testing.T) {
	m := &testMachine{sound: true}
	r := &testRunner{}
	g := New(log.NewTestLogger(t), m, r, nil)

	assert.NoError(t, g.step(false))
	assert.NoError(t, g.step(true))
	assert.Equal(t, 1, r.frames)
}

func TestGame_Render(t *testing.T) {
	g, m, _, _ := newTestGame(t)
	m.fb[0][1] = true
	g.render()

	assert.Equal(t, pixelOff.R, g.pixels[0])
	assert.Equal(t, pixelOn.R, g.pixels[4])
	assert.Equal(t, pixelOn.A, g.pixels[7])
	assert.Len(t, g.pixels, machine.DisplayWidth*machine.DisplayHeight*4)
}

func TestGame_Layout(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	w, h := g.Layout(640, 320)
	assert.Equal(t, machine.DisplayWidth, w)
	assert.Equal(t, machine.DisplayHeight, h)
}
