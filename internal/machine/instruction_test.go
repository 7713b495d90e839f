package machine

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // table of all encodings
func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   Instruction
	}{
		{0x00E0, Instruction{Op: OpCls}},
		{0x00EE, Instruction{Op: OpRet}},
		{0x1ABC, Instruction{Op: OpJump, NNN: 0xABC}},
		{0x2DEF, Instruction{Op: OpCall, NNN: 0xDEF}},
		{0x3A12, Instruction{Op: OpSkipEqByte, X: 0xA, KK: 0x12}},
		{0x4B34, Instruction{Op: OpSkipNeByte, X: 0xB, KK: 0x34}},
		{0x5120, Instruction{Op: OpSkipEqReg, X: 1, Y: 2}},
		{0x6CFF, Instruction{Op: OpLoadByte, X: 0xC, KK: 0xFF}},
		{0x7D01, Instruction{Op: OpAddByte, X: 0xD, KK: 0x01}},
		{0x8120, Instruction{Op: OpLoadReg, X: 1, Y: 2}},
		{0x8121, Instruction{Op: OpOr, X: 1, Y: 2}},
		{0x8122, Instruction{Op: OpAnd, X: 1, Y: 2}},
		{0x8123, Instruction{Op: OpXor, X: 1, Y: 2}},
		{0x8124, Instruction{Op: OpAddReg, X: 1, Y: 2}},
		{0x8125, Instruction{Op: OpSub, X: 1, Y: 2}},
		{0x8126, Instruction{Op: OpShr, X: 1, Y: 2}},
		{0x8127, Instruction{Op: OpSubn, X: 1, Y: 2}},
		{0x812E, Instruction{Op: OpShl, X: 1, Y: 2}},
		{0x9340, Instruction{Op: OpSkipNeReg, X: 3, Y: 4}},
		{0xA123, Instruction{Op: OpLoadIndex, NNN: 0x123}},
		{0xB456, Instruction{Op: OpJumpV0, NNN: 0x456}},
		{0xC7AA, Instruction{Op: OpRandom, X: 7, KK: 0xAA}},
		{0xD125, Instruction{Op: OpDraw, X: 1, Y: 2, N: 5}},
		{0xE59E, Instruction{Op: OpSkipKey, X: 5}},
		{0xE6A1, Instruction{Op: OpSkipNotKey, X: 6}},
		{0xF107, Instruction{Op: OpLoadDelay, X: 1}},
		{0xF20A, Instruction{Op: OpWaitKey, X: 2}},
		{0xF315, Instruction{Op: OpSetDelay, X: 3}},
		{0xF418, Instruction{Op: OpSetSound, X: 4}},
		{0xF51E, Instruction{Op: OpAddIndex, X: 5}},
		{0xF629, Instruction{Op: OpLoadFont, X: 6}},
		{0xF733, Instruction{Op: OpStoreBCD, X: 7}},
		{0xF855, Instruction{Op: OpStoreRegs, X: 8}},
		{0xF965, Instruction{Op: OpLoadRegs, X: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.want.Op.String(), func(t *testing.T) {
			got, err := Decode(tt.opcode)
			assert.NoError(t, err)

			tt.want.Opcode = tt.opcode
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	opcodes := []uint16{
		0x0000, 0x0123, 0x00E1, 0x00FF,
		0x5121, 0x512F,
		0x8128, 0x812D, 0x812F,
		0x9341,
		0xE59F, 0xE5A2, 0xE500,
		0xF100, 0xF108, 0xF1FF, 0xF175,
	}

	for _, opcode := range opcodes {
		ins, err := Decode(opcode)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidOpcode))
		assert.Equal(t, OpInvalid, ins.Op)
		assert.Equal(t, opcode, ins.Opcode)
	}
}

func TestDecode_CoversAllOps(t *testing.T) {
	seen := map[Op]bool{}
	for opcode := 0; opcode <= 0xFFFF; opcode++ {
		ins, err := Decode(uint16(opcode))
		if err == nil {
			seen[ins.Op] = true
		}
	}

	assert.Equal(t, len(opNames)-1, len(seen))
	assert.False(t, seen[OpInvalid])
}

func TestLookup(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   string
	}{
		{0x00E0, chip8.ClsName},
		{0x00EE, chip8.RetName},
		{0xB200, chip8.JpName},
		{0x8126, chip8.ShrName},
		{0xF10A, chip8.LdName},
		{0xF11E, chip8.AddName},
	}

	for _, tt := range tests {
		desc, ok := Lookup(tt.opcode)
		assert.True(t, ok)
		assert.Equal(t, tt.want, desc.Name)
	}

	_, ok := Lookup(0x0123)
	assert.False(t, ok)
	_, ok = Lookup(0x5121)
	assert.False(t, ok)
}

func TestDecode_MatchesOpcodeTable(t *testing.T) {
	for nibble, entries := range chip8.Opcodes {
		for _, entry := range entries {
			ins, err := Decode(entry.Info.Value)
			assert.NoError(t, err)
			assert.Equal(t, uint16(nibble), entry.Info.Value>>12)
			assert.Equal(t, encodings[entry.Info.Value].op, ins.Op)
		}
	}
	assert.Len(t, encodings, len(opNames)-1)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "DRW Vx, Vy, nibble", OpDraw.String())
	assert.Equal(t, "invalid", Op(200).String())
}
