package audio

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func readSamples(t *testing.T, tone *Tone, count int) []float32 {
	t.Helper()
	buf := make([]byte, count*bytesPerFrame)
	n, err := tone.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, len(buf), n)

	samples := make([]float32, count)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*bytesPerFrame:]))
	}
	return samples
}

func TestTone_Silent(t *testing.T) {
	tone := NewTone(SampleRate, Frequency, Amplitude)
	assert.False(t, tone.Active())

	for _, sample := range readSamples(t, tone, 256) {
		assert.Equal(t, float32(0), sample)
	}
}

func TestTone_SquareWave(t *testing.T) {
	tone := NewTone(8, 2, 0.5) // period of 4 samples
	tone.SetActive(true)
	assert.True(t, tone.Active())

	samples := readSamples(t, tone, 8)
	want := []float32{0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5}
	for i := range want {
		assert.Equal(t, want[i], samples[i])
	}
}

func TestTone_StopResetsPhase(t *testing.T) {
	tone := NewTone(8, 2, 0.5)
	tone.SetActive(true)
	readSamples(t, tone, 3)

	tone.SetActive(false)
	assert.Equal(t, float32(0), readSamples(t, tone, 1)[0])

	tone.SetActive(true)
	assert.Equal(t, float32(0.5), readSamples(t, tone, 1)[0])
}

func TestTone_PartialSample(t *testing.T) {
	tone := NewTone(SampleRate, Frequency, Amplitude)
	n, err := tone.Read(make([]byte, 6))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestTone_ShortBuffer(t *testing.T) {
	tone := NewTone(SampleRate, Frequency, Amplitude)
	n, err := tone.Read(make([]byte, bytesPerFrame-1))
	assert.True(t, errors.Is(err, io.ErrShortBuffer))
	assert.Equal(t, 0, n)

	n, err = tone.Read(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestNewTone_Defaults(t *testing.T) {
	tone := NewTone(0, 0, Amplitude)
	assert.Equal(t, SampleRate, tone.sampleRate)
	assert.Equal(t, Frequency, tone.frequency)
}
