// Package disasm formats CHIP-8 opcodes as assembly for traces and listings.
// Mnemonics come from the retrogolib CHIP-8 opcode table, operands from the
// machine decoder.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Lookup returns the retrogolib instruction descriptor matching the opcode.
// It uses the same table match as the machine decoder.
func Lookup(opcode uint16) (*chip8.Instruction, bool) {
	return machine.Lookup(opcode)
}

// Name returns the mnemonic of the decoded instruction.
func Name(ins machine.Instruction) string {
	if desc, ok := Lookup(ins.Opcode); ok {
		return desc.Name
	}
	name, _, _ := strings.Cut(ins.Op.String(), " ")
	return strings.ToLower(name)
}

// Format returns the opcode as an assembly statement. Opcodes that do not
// decode are emitted as a data word.
func Format(opcode uint16) string {
	ins, err := machine.Decode(opcode)
	if err != nil {
		return fmt.Sprintf(".word $%04X", opcode)
	}

	name := Name(ins)
	if params := formatParams(ins); params != "" {
		return name + " " + params
	}
	return name
}

// IsSkip returns whether the opcode conditionally skips the next instruction.
func IsSkip(opcode uint16) bool {
	desc, ok := Lookup(opcode)
	if !ok {
		return false
	}
	return chip8.SkipInstructions.Contains(desc.Name)
}

// Listing writes a linear listing of the ROM as loaded at
// machine.ProgramStart, one opcode per line. Jump, call and index targets
// inside the ROM get a label line. A trailing odd byte is written as a data
// byte.
func Listing(w io.Writer, rom []byte) error {
	names := labels(rom)
	address := machine.ProgramStart
	for offset := 0; offset < len(rom); offset += opcodeSize {
		if name, ok := names[uint16(address)]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		var line string
		if offset+1 >= len(rom) {
			line = fmt.Sprintf("$%03X  %02X     .byte $%02X", address, rom[offset], rom[offset])
		} else {
			opcode := uint16(rom[offset])<<8 | uint16(rom[offset+1])
			line = fmt.Sprintf("$%03X  %02X %02X  %s", address, rom[offset], rom[offset+1], Format(opcode))
			if IsSkip(opcode) {
				line += "  ; skip"
			}
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
		address += opcodeSize
	}
	return nil
}

//nolint:cyclop // one case per operand layout
func formatParams(ins machine.Instruction) string {
	switch ins.Op {
	case machine.OpCls, machine.OpRet:
		return ""
	case machine.OpJump, machine.OpCall:
		return fmt.Sprintf("$%03X", ins.NNN)
	case machine.OpJumpV0:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case machine.OpLoadIndex:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case machine.OpSkipEqByte, machine.OpSkipNeByte, machine.OpLoadByte, machine.OpAddByte, machine.OpRandom:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.KK)
	case machine.OpSkipEqReg, machine.OpSkipNeReg, machine.OpLoadReg, machine.OpOr, machine.OpAnd,
		machine.OpXor, machine.OpAddReg, machine.OpSub, machine.OpSubn, machine.OpShr, machine.OpShl:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case machine.OpDraw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case machine.OpSkipKey, machine.OpSkipNotKey:
		return fmt.Sprintf("V%X", ins.X)
	case machine.OpLoadDelay:
		return fmt.Sprintf("V%X, DT", ins.X)
	case machine.OpWaitKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case machine.OpSetDelay:
		return fmt.Sprintf("DT, V%X", ins.X)
	case machine.OpSetSound:
		return fmt.Sprintf("ST, V%X", ins.X)
	case machine.OpAddIndex:
		return fmt.Sprintf("I, V%X", ins.X)
	case machine.OpLoadFont:
		return fmt.Sprintf("F, V%X", ins.X)
	case machine.OpStoreBCD:
		return fmt.Sprintf("B, V%X", ins.X)
	case machine.OpStoreRegs:
		return fmt.Sprintf("[I], V%X", ins.X)
	case machine.OpLoadRegs:
		return fmt.Sprintf("V%X, [I]", ins.X)
	default:
		return ""
	}
}
