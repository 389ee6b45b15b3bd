// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input    string `flag:"i" usage:"input ROM file"`
	DumpFile string `flag:"dump" usage:"write a raw memory dump to this file after execution"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend       string `flag:"f" usage:"frontend: window, terminal, headless" default:"window"`
	CyclesPerFrame int    `flag:"cycles" usage:"instructions executed per 60Hz frame" default:"10"`
	Scale          int    `flag:"scale" usage:"window pixel scale" default:"10"`
	Frames         int    `flag:"frames" usage:"number of frames to run, 0 for unlimited"`
	Trace          bool   `flag:"trace" usage:"log every executed instruction"`
	Disasm         bool   `flag:"disasm" usage:"print an instruction listing instead of running the program"`
	Debug          bool   `flag:"debug" usage:"enable debug logging"`
	Quiet          bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}
