package machine

import "strings"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Framebuffer is a snapshot of the monochrome display, indexed [y][x].
type Framebuffer [DisplayHeight][DisplayWidth]bool

// Pixel returns whether the pixel at x, y is set. Coordinates wrap around.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f[wrap(y, DisplayHeight)][wrap(x, DisplayWidth)]
}

// Lit returns the number of set pixels.
func (f *Framebuffer) Lit() int {
	n := 0
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				n++
			}
		}
	}
	return n
}

// Render returns the framebuffer as text, one line per row, using on and
// off as the pixel glyphs.
func (f *Framebuffer) Render(on, off rune) string {
	var sb strings.Builder
	sb.Grow(DisplayHeight * (DisplayWidth + 1))
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (f *Framebuffer) String() string {
	return f.Render('#', '.')
}

// draw XORs the sprite rows onto the framebuffer at the given position and
// returns whether any set pixel was cleared.
func (f *Framebuffer) draw(x, y int, sprite []byte) bool {
	collision := false
	for row, bits := range sprite {
		py := wrap(y+row, DisplayHeight)
		for bit := 0; bit < 8; bit++ {
			if bits&(0x80>>bit) == 0 {
				continue
			}
			px := wrap(x+bit, DisplayWidth)
			if f[py][px] {
				collision = true
			}
			f[py][px] = !f[py][px]
		}
	}
	return collision
}

func (f *Framebuffer) clear() {
	*f = Framebuffer{}
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
