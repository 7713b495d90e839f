// Package runner drives a CHIP-8 machine frame by frame.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

// Machine is the part of the machine that the runner drives.
type Machine interface {
	Tick() error
	TickTimers()
	Halted() bool
	PC() uint16
	Peek() (uint16, error)
	AwaitingKey() (uint8, bool)
}

// Config contains the runner settings.
type Config struct {
	Speed    int  // instructions per second
	Trace    bool // log every executed instruction at debug level
	Realtime bool // pace Run to FrameRate wall clock frames
}

// Runner executes frames of instructions followed by a timer tick.
type Runner struct {
	logger  *log.Logger
	machine Machine
	pacer   *Pacer
	cfg     Config
	frames  uint64
}

// New returns a runner for the machine.
func New(logger *log.Logger, m Machine, cfg Config) *Runner {
	return &Runner{
		logger:  logger,
		machine: m,
		pacer:   NewPacer(cfg.Speed, FrameRate),
		cfg:     cfg,
	}
}

// Frame executes one frame worth of instructions and ticks the timers once.
// A machine fault stops the frame and is returned.
func (r *Runner) Frame() error {
	cycles := r.pacer.Next()
	for range cycles {
		if r.cfg.Trace {
			r.trace()
		}
		if err := r.machine.Tick(); err != nil {
			return fmt.Errorf("frame %d: %w", r.frames, err)
		}
	}
	r.machine.TickTimers()
	r.frames++
	return nil
}

// Run executes frames until the frame count is reached, the machine faults
// or the context is canceled. A frame count of 0 runs until cancellation.
func (r *Runner) Run(ctx context.Context, frames uint64) error {
	var ticker *time.Ticker
	if r.cfg.Realtime {
		ticker = time.NewTicker(time.Second / FrameRate)
		defer ticker.Stop()
	}

	r.logger.Debug("Running machine",
		log.Int("speed", r.pacer.Speed()),
		log.Int("frames", int(frames)))

	for frames == 0 || r.frames < frames {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("running machine: %w", ctx.Err())
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return fmt.Errorf("running machine: %w", err)
		}

		if err := r.Frame(); err != nil {
			r.logger.Error("Machine halted",
				log.Hex("pc", r.machine.PC()),
				log.Err(err))
			return err
		}
	}
	return nil
}

// Frames returns the number of completed frames.
func (r *Runner) Frames() uint64 {
	return r.frames
}

func (r *Runner) trace() {
	if _, waiting := r.machine.AwaitingKey(); waiting {
		return
	}
	pc := r.machine.PC()
	opcode, err := r.machine.Peek()
	if err != nil {
		return
	}
	r.logger.Debug(disasm.Format(opcode),
		log.Hex("pc", pc),
		log.Hex("opcode", opcode))
}
