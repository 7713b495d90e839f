package machine

// CHIP-8 memory layout constants.
//
//	0x000-0x04F: font sprites
//	0x050-0x1FF: reserved for the interpreter
//	0x200-0xFFF: program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the address ROMs are loaded to and execution starts at.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that fits into program space.
	MaxROMSize = MemorySize - ProgramStart

	// FontStart is the address of the first font glyph.
	FontStart = 0x000

	// FontGlyphSize is the number of bytes of a single font glyph.
	FontGlyphSize = 5
)

// font contains the sprites for the hex digits 0-F.
var font = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// memory is the range checked main memory of the machine.
type memory [MemorySize]byte

func (m *memory) reset() {
	*m = memory{}
	copy(m[FontStart:], font[:])
}

func (m *memory) read(address int) (byte, error) {
	if address < 0 || address >= MemorySize {
		return 0, &AddressError{Address: address}
	}
	return m[address], nil
}

func (m *memory) write(address int, value byte) error {
	if address < 0 || address >= MemorySize {
		return &AddressError{Address: address}
	}
	m[address] = value
	return nil
}

// span returns the slice [address, address+length) or an error naming the
// first address that is out of range.
func (m *memory) span(address, length int) ([]byte, error) {
	if address < 0 || address >= MemorySize {
		return nil, &AddressError{Address: address}
	}
	end := address + length
	if end > MemorySize {
		return nil, &AddressError{Address: MemorySize}
	}
	return m[address:end], nil
}

// readWord reads a big-endian 16 bit word.
func (m *memory) readWord(address int) (uint16, error) {
	hi, err := m.read(address)
	if err != nil {
		return 0, err
	}
	lo, err := m.read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
