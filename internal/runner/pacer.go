package runner

// FrameRate is the rate in Hz at which the timers are decremented and
// frontends present frames.
const FrameRate = 60

// Pacer splits an instructions per second rate into per frame cycle counts.
// Rates that are not a multiple of the frame rate are spread across frames
// so that any FrameRate consecutive frames execute exactly speed cycles.
type Pacer struct {
	speed     int
	frameRate int
	remainder int
}

// NewPacer returns a pacer for speed instructions per second at frameRate
// frames per second. Non positive values fall back to 1 instruction per
// second and FrameRate.
func NewPacer(speed, frameRate int) *Pacer {
	if speed < 1 {
		speed = 1
	}
	if frameRate < 1 {
		frameRate = FrameRate
	}
	return &Pacer{
		speed:     speed,
		frameRate: frameRate,
	}
}

// Next returns the number of cycles to execute in the next frame.
func (p *Pacer) Next() int {
	total := p.speed + p.remainder
	p.remainder = total % p.frameRate
	return total / p.frameRate
}

// Speed returns the configured instructions per second.
func (p *Pacer) Speed() int {
	return p.speed
}
