// Package machine implements the CHIP-8 virtual machine core.
//
// # Architecture
//
// The machine consists of 4KB of memory, 16 general purpose 8-bit registers
// (V0-VF), a 16-bit index register I, a program counter, a 16 entry call
// stack, a delay and a sound timer, a 64x32 monochrome display and a 16 key
// hexadecimal keypad. VF doubles as the carry, borrow and collision flag.
//
// # Memory Layout
//
//	0x000-0x04F: built-in font, 16 glyphs of 5 bytes
//	0x050-0x1FF: reserved
//	0x200-0xFFF: program space (MaxROMSize bytes)
//
// # Driving the Machine
//
// The machine does no timing of its own. A driver calls Tick once per
// emulated instruction and TickTimers at 60 Hz, forwards input with SetKey
// and renders the value returned by Framebuffer:
//
//	m := machine.New()
//	if err := m.Load(rom); err != nil {
//		return err
//	}
//	for frame := 0; ; frame++ {
//		for range cyclesPerFrame {
//			if err := m.Tick(); err != nil {
//				return err
//			}
//		}
//		m.TickTimers()
//	}
//
// # Faults
//
// Invalid opcodes, stack overflow and underflow and memory accesses outside
// the address space halt the machine. The error is returned by Tick and
// matches one of ErrInvalidOpcode, ErrStackOverflow, ErrStackUnderflow or
// ErrMemoryOutOfRange with errors.Is. A halted machine keeps returning the
// fault until Reset or Load is called.
//
// # Key Wait
//
// Fx0A does not block. If no key is pressed the program counter is left at
// the Fx0A instruction and the machine enters a waiting state; every
// following Tick only checks the keypad until a key is pressed.
package machine
