//go:build !headless

package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Beeper plays the tone on the default audio device.
type Beeper struct {
	tone   *Tone
	ctx    *oto.Context
	player *oto.Player
	mu     sync.Mutex
}

// NewBeeper opens the audio device and starts the silent tone stream.
func NewBeeper(sampleRate int) (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	tone := NewTone(sampleRate, Frequency, Amplitude)
	player := ctx.NewPlayer(tone)
	player.Play()

	return &Beeper{
		tone:   tone,
		ctx:    ctx,
		player: player,
	}, nil
}

// SetActive turns the buzzer on or off.
func (b *Beeper) SetActive(active bool) {
	b.tone.SetActive(active)
}

// Close stops the audio stream.
func (b *Beeper) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.player == nil {
		return nil
	}
	err := b.player.Close()
	b.player = nil
	if err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
