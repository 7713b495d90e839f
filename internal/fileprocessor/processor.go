// Package fileprocessor handles loading a ROM file and running it
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// ProcessFile handles the complete workflow of loading the ROM file and
// either disassembling it or running it in the selected frontend. Output of
// the disassembler and the headless frontend is written to w.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, w io.Writer) error {
	rom, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}
	PrintInfo(logger, opts, rom)

	if opts.Disasm {
		if err := disasm.Listing(w, rom); err != nil {
			return fmt.Errorf("disassembling: %w", err)
		}
		return nil
	}

	m := machine.New(config.MachineOptions(opts)...)
	if err := m.Load(rom); err != nil {
		return fmt.Errorf("loading rom into machine: %w", err)
	}

	switch opts.Frontend {
	case options.FrontendHeadless:
		return runHeadless(ctx, logger, opts, m, w)

	case options.FrontendTerminal:
		r := runner.New(logger, m, config.RunnerConfig(opts))
		speaker, closeSpeaker := createSpeaker(logger, opts)
		defer closeSpeaker()
		return terminal.Run(logger, m, r, speaker)

	case options.FrontendWindow:
		r := runner.New(logger, m, config.RunnerConfig(opts))
		speaker, closeSpeaker := createSpeaker(logger, opts)
		defer closeSpeaker()
		return window.Run(logger, m, r, speaker, opts.Scale)

	default:
		return fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}

// runHeadless runs the configured number of frames without any input or
// audio and writes the final framebuffer. The framebuffer is also written
// when the machine faults or the run gets canceled.
func runHeadless(ctx context.Context, logger *log.Logger, opts options.Program, m *machine.Machine, w io.Writer) error {
	r := runner.New(logger, m, config.RunnerConfig(opts))
	runErr := r.Run(ctx, opts.Frames)

	logger.Debug("Headless run finished",
		log.Int("frames", int(r.Frames())),
		log.Hex("pc", m.PC()))

	fb := m.Framebuffer()
	if err := WriteFramebuffer(w, &fb, isTerminal(w)); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// WriteFramebuffer writes the framebuffer as text. Block glyphs are used for
// terminals, ASCII characters otherwise.
func WriteFramebuffer(w io.Writer, fb *machine.Framebuffer, blocks bool) error {
	var s string
	if blocks {
		s = fb.Render('█', ' ')
	} else {
		s = fb.String()
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("writing framebuffer: %w", err)
	}
	return nil
}

// createSpeaker opens the audio output unless sound is muted. Failing to open
// the audio device is not fatal, the emulation continues without sound.
func createSpeaker(logger *log.Logger, opts options.Program) (frontend.Speaker, func()) {
	if opts.Mute {
		return nil, func() {}
	}

	beeper, err := audio.NewBeeper(audio.SampleRate)
	if err != nil {
		logger.Warn("Audio output disabled", log.Err(err))
		return nil, func() {}
	}

	return beeper, func() {
		if err := beeper.Close(); err != nil {
			logger.Error("Closing audio output failed", log.Err(err))
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintInfo prints the information about the loaded ROM.
func PrintInfo(logger *log.Logger, opts options.Program, rom []byte) {
	if opts.Quiet {
		return
	}

	logger.Info("ROM loaded",
		log.String("file", opts.Input),
		log.Int("size", len(rom)),
		log.String("frontend", opts.Frontend),
	)
	if len(rom) == 0 {
		logger.Warn("ROM file is empty, the machine will fault on the first instruction")
	}
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8 - CHIP-8 virtual machine",
		log.String("version", buildinfo.Version(version, commit, date)))
}
