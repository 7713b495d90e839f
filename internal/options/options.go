// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// Default option values.
const (
	DefaultSpeed  = 700
	DefaultScale  = 10
	DefaultFrames = 600
)

// Parameters contains file path options.
type Parameters struct {
	Input string `arg:"positional" usage:"ROM file to run"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"frontend" usage:"frontend: window, terminal, headless" default:"window"`
	Speed    int    `flag:"speed" usage:"instructions per second" default:"700"`
	Scale    int    `flag:"scale" usage:"window pixel scale" default:"10"`
	Frames   uint64 `flag:"frames" usage:"frames to run in headless mode, 0 runs until interrupted" default:"600"`
	Seed     uint64 `flag:"seed" usage:"random seed, 0 seeds from the current time"`
	Mute     bool   `flag:"mute" usage:"disable sound"`
	Realtime bool   `flag:"realtime" usage:"pace headless mode to 60 frames per second"`
	Disasm   bool   `flag:"disasm" usage:"print a disassembly listing of the ROM and exit"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// QuirkFlags contains the interpreter compatibility options.
type QuirkFlags struct {
	ShiftUsesVY          bool `flag:"shift-vy" usage:"8xy6/8xyE shift Vy into Vx"`
	LoadStoreIncrementsI bool `flag:"loadstore-inc" usage:"Fx55/Fx65 increment I"`
	LogicResetsVF        bool `flag:"logic-vf" usage:"8xy1/8xy2/8xy3 reset VF"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	QuirkFlags
}

// NewProgram returns the program options with default values.
func NewProgram() Program {
	return Program{
		Flags: Flags{
			Frontend: FrontendWindow,
			Speed:    DefaultSpeed,
			Scale:    DefaultScale,
			Frames:   DefaultFrames,
		},
	}
}
