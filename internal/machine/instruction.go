package machine

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Op identifies a decoded CHIP-8 instruction.
type Op uint8

// Instruction variants. The comment names the encoding.
const (
	OpInvalid       Op = iota
	OpCls              // 00E0
	OpRet              // 00EE
	OpJump             // 1nnn
	OpCall             // 2nnn
	OpSkipEqByte       // 3xkk
	OpSkipNeByte       // 4xkk
	OpSkipEqReg        // 5xy0
	OpLoadByte         // 6xkk
	OpAddByte          // 7xkk
	OpLoadReg          // 8xy0
	OpOr               // 8xy1
	OpAnd              // 8xy2
	OpXor              // 8xy3
	OpAddReg           // 8xy4
	OpSub              // 8xy5
	OpShr              // 8xy6
	OpSubn             // 8xy7
	OpShl              // 8xyE
	OpSkipNeReg        // 9xy0
	OpLoadIndex        // Annn
	OpJumpV0           // Bnnn
	OpRandom           // Cxkk
	OpDraw             // Dxyn
	OpSkipKey          // Ex9E
	OpSkipNotKey       // ExA1
	OpLoadDelay        // Fx07
	OpWaitKey          // Fx0A
	OpSetDelay         // Fx15
	OpSetSound         // Fx18
	OpAddIndex         // Fx1E
	OpLoadFont         // Fx29
	OpStoreBCD         // Fx33
	OpStoreRegs        // Fx55
	OpLoadRegs         // Fx65
)

var opNames = [...]string{
	OpInvalid:    "invalid",
	OpCls:        "CLS",
	OpRet:        "RET",
	OpJump:       "JP addr",
	OpCall:       "CALL addr",
	OpSkipEqByte: "SE Vx, byte",
	OpSkipNeByte: "SNE Vx, byte",
	OpSkipEqReg:  "SE Vx, Vy",
	OpLoadByte:   "LD Vx, byte",
	OpAddByte:    "ADD Vx, byte",
	OpLoadReg:    "LD Vx, Vy",
	OpOr:         "OR Vx, Vy",
	OpAnd:        "AND Vx, Vy",
	OpXor:        "XOR Vx, Vy",
	OpAddReg:     "ADD Vx, Vy",
	OpSub:        "SUB Vx, Vy",
	OpShr:        "SHR Vx, Vy",
	OpSubn:       "SUBN Vx, Vy",
	OpShl:        "SHL Vx, Vy",
	OpSkipNeReg:  "SNE Vx, Vy",
	OpLoadIndex:  "LD I, addr",
	OpJumpV0:     "JP V0, addr",
	OpRandom:     "RND Vx, byte",
	OpDraw:       "DRW Vx, Vy, nibble",
	OpSkipKey:    "SKP Vx",
	OpSkipNotKey: "SKNP Vx",
	OpLoadDelay:  "LD Vx, DT",
	OpWaitKey:    "LD Vx, K",
	OpSetDelay:   "LD DT, Vx",
	OpSetSound:   "LD ST, Vx",
	OpAddIndex:   "ADD I, Vx",
	OpLoadFont:   "LD F, Vx",
	OpStoreBCD:   "LD B, Vx",
	OpStoreRegs:  "LD [I], Vx",
	OpLoadRegs:   "LD Vx, [I]",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return opNames[OpInvalid]
}

// Instruction is a decoded opcode with its operand fields extracted.
// Fields that the variant does not use are zero.
type Instruction struct {
	Op     Op
	Opcode uint16 // raw encoding
	X      uint8  // register x, bits 8-11
	Y      uint8  // register y, bits 4-7
	N      uint8  // nibble, bits 0-3
	KK     uint8  // byte, bits 0-7
	NNN    uint16 // address, bits 0-11
}

// encoding ties a retrogolib opcode table value to its instruction variant.
// The mask is the exact encoding of the variant; table entries matching more
// loosely are narrowed to it.
type encoding struct {
	op   Op
	mask uint16
}

// encodings is keyed by chip8.OpcodeInfo.Value. Table entries with a value
// not listed here, such as SYS 0nnn and the SUPER-CHIP extensions, do not
// decode.
var encodings = map[uint16]encoding{
	0x00E0: {OpCls, 0xFFFF},
	0x00EE: {OpRet, 0xFFFF},
	0x1000: {OpJump, 0xF000},
	0x2000: {OpCall, 0xF000},
	0x3000: {OpSkipEqByte, 0xF000},
	0x4000: {OpSkipNeByte, 0xF000},
	0x5000: {OpSkipEqReg, 0xF00F},
	0x6000: {OpLoadByte, 0xF000},
	0x7000: {OpAddByte, 0xF000},
	0x8000: {OpLoadReg, 0xF00F},
	0x8001: {OpOr, 0xF00F},
	0x8002: {OpAnd, 0xF00F},
	0x8003: {OpXor, 0xF00F},
	0x8004: {OpAddReg, 0xF00F},
	0x8005: {OpSub, 0xF00F},
	0x8006: {OpShr, 0xF00F},
	0x8007: {OpSubn, 0xF00F},
	0x800E: {OpShl, 0xF00F},
	0x9000: {OpSkipNeReg, 0xF00F},
	0xA000: {OpLoadIndex, 0xF000},
	0xB000: {OpJumpV0, 0xF000},
	0xC000: {OpRandom, 0xF000},
	0xD000: {OpDraw, 0xF000},
	0xE09E: {OpSkipKey, 0xF0FF},
	0xE0A1: {OpSkipNotKey, 0xF0FF},
	0xF007: {OpLoadDelay, 0xF0FF},
	0xF00A: {OpWaitKey, 0xF0FF},
	0xF015: {OpSetDelay, 0xF0FF},
	0xF018: {OpSetSound, 0xF0FF},
	0xF01E: {OpAddIndex, 0xF0FF},
	0xF029: {OpLoadFont, 0xF0FF},
	0xF033: {OpStoreBCD, 0xF0FF},
	0xF055: {OpStoreRegs, 0xF0FF},
	0xF065: {OpLoadRegs, 0xF0FF},
}

// Lookup returns the retrogolib instruction descriptor of the opcode. An
// entry that decodes to an instruction variant is preferred over other
// matching entries.
func Lookup(opcode uint16) (*chip8.Instruction, bool) {
	op, desc := match(opcode)
	if op != OpInvalid {
		return desc, true
	}
	return desc, desc != nil
}

// match searches the retrogolib opcode table. It returns the instruction
// variant and its descriptor, or OpInvalid with the first matching
// descriptor, nil if no table entry matches.
func match(opcode uint16) (Op, *chip8.Instruction) {
	var first *chip8.Instruction
	for _, entry := range chip8.Opcodes[int(opcode>>12)] {
		if entry.Instruction == nil || entry.Info.Mask&opcode != entry.Info.Value {
			continue
		}
		if enc, ok := encodings[entry.Info.Value]; ok && enc.mask&opcode == entry.Info.Value {
			return enc.op, entry.Instruction
		}
		if first == nil {
			first = entry.Instruction
		}
	}
	return OpInvalid, first
}

// Decode maps a 16 bit opcode to its instruction variant using the
// retrogolib CHIP-8 opcode table. It has no side effects. Unknown encodings
// return an *OpcodeError with a zero Address.
func Decode(opcode uint16) (Instruction, error) {
	op, _ := match(opcode)
	if op == OpInvalid {
		return Instruction{Opcode: opcode}, &OpcodeError{Opcode: opcode}
	}

	ins := Instruction{Op: op, Opcode: opcode}
	x := uint8(opcode>>8) & 0xF
	y := uint8(opcode>>4) & 0xF

	switch op {
	case OpJump, OpCall, OpLoadIndex, OpJumpV0:
		ins.NNN = opcode & 0x0FFF

	case OpSkipEqByte, OpSkipNeByte, OpLoadByte, OpAddByte, OpRandom:
		ins.X, ins.KK = x, uint8(opcode)

	case OpSkipEqReg, OpSkipNeReg, OpLoadReg, OpOr, OpAnd, OpXor,
		OpAddReg, OpSub, OpShr, OpSubn, OpShl:
		ins.X, ins.Y = x, y

	case OpDraw:
		ins.X, ins.Y, ins.N = x, y, uint8(opcode)&0xF

	case OpSkipKey, OpSkipNotKey, OpLoadDelay, OpWaitKey, OpSetDelay, OpSetSound,
		OpAddIndex, OpLoadFont, OpStoreBCD, OpStoreRegs, OpLoadRegs:
		ins.X = x
	}
	return ins, nil
}
