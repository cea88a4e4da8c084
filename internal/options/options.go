// Package options contains the program options.
package options

// Default option values.
const (
	DefaultDialect            = "superchip"
	DefaultInstructionsPerSec = 700
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output .asm file (default: stdout)"`
}

// Flags contains behavior options.
type Flags struct {
	Dialect            string `flag:"dialect" usage:"interpreter dialect: superchip, cosmac" default:"superchip"`
	InstructionsPerSec int    `flag:"ips" usage:"instructions executed per second" default:"700"`
	Seed               int64  `flag:"seed" usage:"random seed, 0 uses the current time"`
	Paused             bool   `flag:"paused" usage:"start the machine paused"`
	Trace              bool   `flag:"trace" usage:"log every executed instruction"`
	StatsView          bool   `flag:"statsview" usage:"launch the runtime statistics viewer"`
	Debug              bool   `flag:"debug" usage:"enable debug logging"`
	Quiet              bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains listing output formatting options.
type OutputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
	NoOffsets     bool `flag:"nooffsets" usage:"omit addresses in comments"`
	ZeroBytes     bool `flag:"z" usage:"include trailing zero bytes"`
}

// Program options of the emulator and the listing tool.
type Program struct {
	Parameters
	Flags
	OutputFlags
}
