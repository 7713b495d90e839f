// Package audio produces the CHIP-8 buzzer sound.
package audio

import (
	"encoding/binary"
	"io"
	"math"
	"sync/atomic"
)

// Tone defaults.
const (
	SampleRate    = 44100
	Frequency     = 440
	Amplitude     = 0.2
	bytesPerFrame = 4 // one float32 sample per mono frame
)

// Tone is a mono square wave encoded as little endian float32 samples.
// It outputs silence while inactive. Read is safe to call concurrently with
// SetActive.
type Tone struct {
	active     atomic.Bool
	sampleRate int
	frequency  int
	amplitude  float32
	phase      int
}

// NewTone returns an inactive square wave tone generator.
func NewTone(sampleRate, frequency int, amplitude float32) *Tone {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	if frequency <= 0 {
		frequency = Frequency
	}
	return &Tone{
		sampleRate: sampleRate,
		frequency:  frequency,
		amplitude:  amplitude,
	}
}

// SetActive turns the tone on or off.
func (t *Tone) SetActive(active bool) {
	t.active.Store(active)
}

// Active returns whether the tone is playing.
func (t *Tone) Active() bool {
	return t.active.Load()
}

// Read fills p with whole samples. A non-empty buffer too small for a single
// sample returns io.ErrShortBuffer.
func (t *Tone) Read(p []byte) (int, error) {
	if len(p) > 0 && len(p) < bytesPerFrame {
		return 0, io.ErrShortBuffer
	}
	samples := len(p) / bytesPerFrame
	active := t.active.Load()
	period := t.sampleRate / t.frequency
	if period < 2 {
		period = 2
	}

	for i := range samples {
		var sample float32
		if active {
			sample = t.amplitude
			if t.phase >= period/2 {
				sample = -t.amplitude
			}
			t.phase = (t.phase + 1) % period
		} else {
			t.phase = 0
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame:], math.Float32bits(sample))
	}
	return samples * bytesPerFrame, nil
}
