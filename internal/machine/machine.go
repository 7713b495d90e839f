package machine

import (
	"fmt"
)

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// flag is the register that receives carry, borrow and collision results.
const flag = 0xF

// Machine is a CHIP-8 virtual machine. It is advanced only by explicit calls
// to Tick and TickTimers and is not safe for concurrent use.
type Machine struct {
	mem     memory
	v       [16]byte
	i       uint16
	pc      uint16
	stack   stack
	delay   uint8
	sound   uint8
	display Framebuffer
	keys    [KeyCount]bool

	waiting bool  // Fx0A is waiting for a key press
	waitReg uint8 // register receiving the pressed key

	fault error // set when halted

	quirks Quirks
	rnd    RandomSource
}

// New returns a reset machine. Without WithRandom or WithSeed the random
// source is seeded from the current time.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}
	if m.rnd == nil {
		m.rnd = newRandom(timeSeed())
	}
	m.Reset()
	return m
}

// Reset clears all machine state, writes the font table and clears the
// halted state. The program counter is set to ProgramStart.
func (m *Machine) Reset() {
	m.mem.reset()
	m.v = [16]byte{}
	m.i = 0
	m.pc = ProgramStart
	m.stack.reset()
	m.delay = 0
	m.sound = 0
	m.display.clear()
	m.keys = [KeyCount]bool{}
	m.waiting = false
	m.waitReg = 0
	m.fault = nil
}

// Load resets the machine and copies the ROM to ProgramStart. A ROM larger
// than MaxROMSize returns ErrROMTooLarge and leaves the machine unchanged.
func (m *Machine) Load(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes exceeds the maximum of %d bytes", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	m.Reset()
	copy(m.mem[ProgramStart:], rom)
	return nil
}

// Tick fetches, decodes and executes a single instruction.
// While a key wait is pending, Tick only checks the keypad.
// A returned error halts the machine; further calls return the same error
// until Reset or Load is called.
func (m *Machine) Tick() error {
	if m.fault != nil {
		return m.fault
	}
	if m.waiting {
		m.resumeKeyWait()
		return nil
	}

	address := m.pc
	opcode, err := m.mem.readWord(int(address))
	if err != nil {
		return m.halt(fmt.Errorf("fetching opcode at $%04X: %w", address, err))
	}
	m.pc += 2

	ins, err := Decode(opcode)
	if err != nil {
		return m.halt(&OpcodeError{Opcode: opcode, Address: address})
	}
	if err := m.execute(ins); err != nil {
		return m.halt(fmt.Errorf("executing %s at $%03X: %w", ins.Op, address, err))
	}
	return nil
}

// TickTimers decrements the delay and sound timers, saturating at zero.
// It is meant to be called at 60 Hz independent of the instruction rate.
func (m *Machine) TickTimers() {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}
}

// SetKey updates the state of a keypad key. Indexes outside 0-15 are ignored.
func (m *Machine) SetKey(index int, pressed bool) {
	if index < 0 || index >= KeyCount {
		return
	}
	m.keys[index] = pressed
}

// Key returns whether the keypad key is pressed.
func (m *Machine) Key(index int) bool {
	if index < 0 || index >= KeyCount {
		return false
	}
	return m.keys[index]
}

// Framebuffer returns a snapshot of the display.
func (m *Machine) Framebuffer() Framebuffer {
	return m.display
}

// SoundActive returns whether the sound timer is running and a tone should play.
func (m *Machine) SoundActive() bool {
	return m.sound > 0
}

// Halted returns whether the machine stopped on a fault.
func (m *Machine) Halted() bool {
	return m.fault != nil
}

// Fault returns the error that halted the machine, or nil.
func (m *Machine) Fault() error {
	return m.fault
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// I returns the index register.
func (m *Machine) I() uint16 {
	return m.i
}

// V returns the value of register x, 0x0-0xF.
func (m *Machine) V(x int) byte {
	return m.v[x&0xF]
}

// Registers returns a copy of the general purpose registers.
func (m *Machine) Registers() [16]byte {
	return m.v
}

// DelayTimer returns the delay timer value.
func (m *Machine) DelayTimer() uint8 {
	return m.delay
}

// SoundTimer returns the sound timer value.
func (m *Machine) SoundTimer() uint8 {
	return m.sound
}

// StackDepth returns the number of return addresses on the call stack.
func (m *Machine) StackDepth() int {
	return m.stack.sp
}

// AwaitingKey returns the register that receives the next key press while
// an Fx0A key wait is pending.
func (m *Machine) AwaitingKey() (uint8, bool) {
	return m.waitReg, m.waiting
}

// Quirks returns the configured quirks.
func (m *Machine) Quirks() Quirks {
	return m.quirks
}

// Peek returns the opcode at the program counter without executing it.
func (m *Machine) Peek() (uint16, error) {
	return m.mem.readWord(int(m.pc))
}

// Memory returns a copy of the main memory.
func (m *Machine) Memory() []byte {
	buf := make([]byte, MemorySize)
	copy(buf, m.mem[:])
	return buf
}

func (m *Machine) halt(err error) error {
	m.fault = err
	return err
}

// pressedKey returns the lowest index of a pressed key.
func (m *Machine) pressedKey() (uint8, bool) {
	for i, pressed := range m.keys {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}

// resumeKeyWait completes a pending Fx0A once a key is pressed. The program
// counter still points at the Fx0A instruction and is moved past it.
func (m *Machine) resumeKeyWait() {
	key, ok := m.pressedKey()
	if !ok {
		return
	}
	m.v[m.waitReg] = key
	m.waiting = false
	m.pc += 2
}
