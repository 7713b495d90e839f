//go:build headless

package audio

// Beeper drives a tone that is never sent to an audio device.
type Beeper struct {
	tone *Tone
}

// NewBeeper returns a beeper without audio output.
func NewBeeper(sampleRate int) (*Beeper, error) {
	return &Beeper{tone: NewTone(sampleRate, Frequency, Amplitude)}, nil
}

// SetActive turns the buzzer on or off.
func (b *Beeper) SetActive(active bool) {
	b.tone.SetActive(active)
}

// Close is a no-op.
func (b *Beeper) Close() error {
	return nil
}
