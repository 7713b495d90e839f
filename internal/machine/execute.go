package machine

import "fmt"

// execute runs the side effects of a decoded instruction. The program
// counter already points to the following instruction.
//
// Instructions writing VF as a flag compute the result and the flag from the
// operand values first, store the result and write VF last, so that VF
// holds the flag even when it is one of the operands.
//
//nolint:funlen,cyclop,gocyclo // one case per instruction
func (m *Machine) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCls:
		m.display.clear()

	case OpRet:
		address, err := m.stack.pop()
		if err != nil {
			return err
		}
		m.pc = address

	case OpJump:
		m.pc = ins.NNN

	case OpCall:
		if err := m.stack.push(m.pc); err != nil {
			return err
		}
		m.pc = ins.NNN

	case OpSkipEqByte:
		m.skipIf(m.v[x] == ins.KK)

	case OpSkipNeByte:
		m.skipIf(m.v[x] != ins.KK)

	case OpSkipEqReg:
		m.skipIf(m.v[x] == m.v[y])

	case OpSkipNeReg:
		m.skipIf(m.v[x] != m.v[y])

	case OpLoadByte:
		m.v[x] = ins.KK

	case OpAddByte:
		m.v[x] += ins.KK

	case OpLoadReg:
		m.v[x] = m.v[y]

	case OpOr, OpAnd, OpXor:
		m.logic(ins)

	case OpAddReg:
		sum := uint16(m.v[x]) + uint16(m.v[y])
		m.v[x] = uint8(sum)
		m.v[flag] = boolToByte(sum > 0xFF)

	case OpSub:
		a, b := m.v[x], m.v[y]
		m.v[x] = a - b
		m.v[flag] = boolToByte(a >= b)

	case OpSubn:
		a, b := m.v[x], m.v[y]
		m.v[x] = b - a
		m.v[flag] = boolToByte(b >= a)

	case OpShr:
		src := m.shiftSource(x, y)
		m.v[x] = src >> 1
		m.v[flag] = src & 0x01

	case OpShl:
		src := m.shiftSource(x, y)
		m.v[x] = src << 1
		m.v[flag] = src >> 7

	case OpLoadIndex:
		m.i = ins.NNN

	case OpJumpV0:
		m.pc = ins.NNN + uint16(m.v[0])

	case OpRandom:
		m.v[x] = uint8(m.rnd.Uint32()) & ins.KK

	case OpDraw:
		sprite, err := m.mem.span(int(m.i), int(ins.N))
		if err != nil {
			return err
		}
		collision := m.display.draw(int(m.v[x]), int(m.v[y]), sprite)
		m.v[flag] = boolToByte(collision)

	case OpSkipKey:
		m.skipIf(m.keys[m.v[x]&0xF])

	case OpSkipNotKey:
		m.skipIf(!m.keys[m.v[x]&0xF])

	case OpLoadDelay:
		m.v[x] = m.delay

	case OpWaitKey:
		if key, ok := m.pressedKey(); ok {
			m.v[x] = key
			return nil
		}
		m.waiting = true
		m.waitReg = x
		m.pc -= 2

	case OpSetDelay:
		m.delay = m.v[x]

	case OpSetSound:
		m.sound = m.v[x]

	case OpAddIndex:
		m.i += uint16(m.v[x])

	case OpLoadFont:
		m.i = FontStart + uint16(m.v[x]&0xF)*FontGlyphSize

	case OpStoreBCD:
		cells, err := m.mem.span(int(m.i), 3)
		if err != nil {
			return err
		}
		value := m.v[x]
		cells[0] = value / 100
		cells[1] = value / 10 % 10
		cells[2] = value % 10

	case OpStoreRegs:
		cells, err := m.mem.span(int(m.i), int(x)+1)
		if err != nil {
			return err
		}
		copy(cells, m.v[:x+1])
		m.advanceIndex(x)

	case OpLoadRegs:
		cells, err := m.mem.span(int(m.i), int(x)+1)
		if err != nil {
			return err
		}
		copy(m.v[:x+1], cells)
		m.advanceIndex(x)

	default:
		return fmt.Errorf("unsupported instruction %s: %w", ins.Op, ErrInvalidOpcode)
	}
	return nil
}

// logic executes the bitwise register operations.
func (m *Machine) logic(ins Instruction) {
	switch ins.Op {
	case OpOr:
		m.v[ins.X] |= m.v[ins.Y]
	case OpAnd:
		m.v[ins.X] &= m.v[ins.Y]
	case OpXor:
		m.v[ins.X] ^= m.v[ins.Y]
	}
	if m.quirks.LogicResetsVF {
		m.v[flag] = 0
	}
}

func (m *Machine) shiftSource(x, y uint8) byte {
	if m.quirks.ShiftUsesVY {
		return m.v[y]
	}
	return m.v[x]
}

func (m *Machine) advanceIndex(x uint8) {
	if m.quirks.LoadStoreIncrementsI {
		m.i += uint16(x) + 1
	}
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.pc += 2
	}
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
