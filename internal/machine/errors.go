package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrROMTooLarge is returned when a ROM does not fit into program memory.
	ErrROMTooLarge = errors.New("rom too large")
	// ErrInvalidOpcode is returned when a fetched opcode matches no instruction.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrStackOverflow is returned when a call exceeds the stack depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is executed on an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrMemoryOutOfRange is returned on any memory access outside of the address space.
	ErrMemoryOutOfRange = errors.New("memory out of range")
)

// OpcodeError describes an opcode that could not be decoded.
type OpcodeError struct {
	Opcode  uint16
	Address uint16 // address the opcode was fetched from
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%s $%04X at $%03X", ErrInvalidOpcode, e.Opcode, e.Address)
}

// Unwrap makes the error match ErrInvalidOpcode.
func (e *OpcodeError) Unwrap() error {
	return ErrInvalidOpcode
}

// AddressError describes a memory access outside of the address space.
type AddressError struct {
	Address int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s: $%04X", ErrMemoryOutOfRange, e.Address)
}

// Unwrap makes the error match ErrMemoryOutOfRange.
func (e *AddressError) Unwrap() error {
	return ErrMemoryOutOfRange
}
