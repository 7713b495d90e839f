package disasm

import (
	"fmt"
	"slices"

	"github.com/retroenv/retrochip8/internal/machine"
)

const (
	funcNaming  = "_func_%03x"
	labelNaming = "_label_%03x"
	dataNaming  = "_data_%03x"
)

// labels collects the jump, call and index targets inside the ROM and
// returns a generated label name per target address. Calls take precedence
// over jumps, jumps over data references.
func labels(rom []byte) map[uint16]string {
	const (
		kindData = iota + 1
		kindLabel
		kindFunc
	)

	end := machine.ProgramStart + len(rom)
	kinds := map[uint16]int{}
	mark := func(address uint16, kind int) {
		if int(address) < machine.ProgramStart || int(address) >= end {
			return
		}
		if kinds[address] < kind {
			kinds[address] = kind
		}
	}

	for offset := 0; offset+1 < len(rom); offset += opcodeSize {
		opcode := uint16(rom[offset])<<8 | uint16(rom[offset+1])
		ins, err := machine.Decode(opcode)
		if err != nil {
			continue
		}
		switch ins.Op {
		case machine.OpCall:
			mark(ins.NNN, kindFunc)
		case machine.OpJump:
			mark(ins.NNN, kindLabel)
		case machine.OpLoadIndex:
			mark(ins.NNN, kindData)
		}
	}

	addresses := make([]uint16, 0, len(kinds))
	for address := range kinds {
		addresses = append(addresses, address)
	}
	slices.Sort(addresses)

	names := make(map[uint16]string, len(addresses))
	for _, address := range addresses {
		switch kinds[address] {
		case kindFunc:
			names[address] = fmt.Sprintf(funcNaming, address)
		case kindLabel:
			names[address] = fmt.Sprintf(labelNaming, address)
		default:
			names[address] = fmt.Sprintf(dataNaming, address)
		}
	}
	return names
}
