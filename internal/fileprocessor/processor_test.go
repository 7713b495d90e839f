package fileprocessor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// drawZero draws the font glyph "0" in the top left corner and loops.
var drawZero = []byte{
	0x60, 0x00, // LD V0, 0
	0x61, 0x00, // LD V1, 0
	0xA0, 0x00, // LD I, $000
	0xD0, 0x15, // DRW V0, V1, 5
	0x12, 0x08, // JP $208
}

func headlessOptions(t *testing.T, rom []byte) options.Program {
	t.Helper()
	opts := options.NewProgram()
	opts.Input = writeROM(t, rom)
	opts.Frontend = options.FrontendHeadless
	opts.Frames = 10
	opts.Seed = 1
	opts.Quiet = true
	return opts
}

func writeROM(t *testing.T, rom []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(path, rom, 0600); err != nil {
		t.Fatalf("Failed to create rom file: %v", err)
	}
	return path
}

func TestProcessFile_Headless(t *testing.T) {
	opts := headlessOptions(t, drawZero)
	var buf bytes.Buffer

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, &buf)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, machine.DisplayHeight)
	assert.Equal(t, "####"+strings.Repeat(".", machine.DisplayWidth-4), lines[0])
	assert.Equal(t, "#..#"+strings.Repeat(".", machine.DisplayWidth-4), lines[1])
	assert.Equal(t, "####"+strings.Repeat(".", machine.DisplayWidth-4), lines[4])
	assert.Equal(t, strings.Repeat(".", machine.DisplayWidth), lines[5])
}

func TestProcessFile_HeadlessFault(t *testing.T) {
	opts := headlessOptions(t, []byte{0x00, 0xEE}) // RET with empty stack
	var buf bytes.Buffer

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, &buf)
	assert.True(t, errors.Is(err, machine.ErrStackUnderflow))
	assert.Equal(t, machine.DisplayHeight, strings.Count(buf.String(), "\n"))
}

func TestProcessFile_Disasm(t *testing.T) {
	opts := headlessOptions(t, drawZero)
	opts.Disasm = true
	var buf bytes.Buffer

	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, &buf)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "$206  D0 15")
}

func TestProcessFile_Errors(t *testing.T) {
	t.Run("oversized rom", func(t *testing.T) {
		opts := headlessOptions(t, make([]byte, machine.MaxROMSize+1))
		err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, &bytes.Buffer{})
		assert.True(t, errors.Is(err, machine.ErrROMTooLarge))
	})

	t.Run("missing rom", func(t *testing.T) {
		opts := options.NewProgram()
		opts.Input = filepath.Join(t.TempDir(), "missing.ch8")
		err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, &bytes.Buffer{})
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("canceled context", func(t *testing.T) {
		opts := headlessOptions(t, drawZero)
		opts.Frames = 0
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		err := ProcessFile(ctx, log.NewTestLogger(t), opts, &buf)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.NotEmpty(t, buf.String())
	})
}

func TestWriteFramebuffer(t *testing.T) {
	var fb machine.Framebuffer
	fb[0][0] = true

	var buf bytes.Buffer
	assert.NoError(t, WriteFramebuffer(&buf, &fb, true))
	assert.True(t, strings.HasPrefix(buf.String(), "█ "))

	buf.Reset()
	assert.NoError(t, WriteFramebuffer(&buf, &fb, false))
	assert.True(t, strings.HasPrefix(buf.String(), "#."))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.NewProgram(), "1.0.0", "abcdef123456", "2024-01-01")

	opts := options.NewProgram()
	opts.Quiet = true
	PrintBanner(logger, opts, "dev", "", "")
}
