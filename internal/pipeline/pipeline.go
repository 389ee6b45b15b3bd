// Package pipeline orchestrates the interpreter workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/dump"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete interpreter workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new interpreter pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the ROM file and runs it, or prints its listing if the
// disasm option is set. The writer receives the listing and the output of
// the terminal frontend.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (*machine.Machine, error) {
	image, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	if opts.Disasm {
		if err := disasm.Write(writer, image, memory.ProgramStart); err != nil {
			return nil, fmt.Errorf("disassembling: %w", err)
		}
		return nil, nil
	}

	fe, err := p.createFrontend(opts, writer)
	if err != nil {
		return nil, fmt.Errorf("creating frontend: %w", err)
	}

	return p.ExecuteWithImage(ctx, image, opts, fe)
}

// ExecuteWithImage runs an already loaded program image with the given
// frontend. This is useful for testing and programmatic usage.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, image []byte, opts options.Program,
	fe frontend.Frontend) (*machine.Machine, error) {

	m := machine.New(p.logger, config.MachineConfig(opts))
	loaded := m.Load(image)

	p.printInfo(opts, loaded)

	runErr := fe.Run(ctx, m)
	if runErr != nil {
		runErr = fmt.Errorf("running program: %w", runErr)
	}

	p.logFinalState(m)

	if opts.DumpFile != "" {
		if err := writeMemoryDump(opts.DumpFile, m.Memory()); err != nil {
			if runErr != nil {
				return m, runErr
			}
			return m, err
		}
		p.logger.Info("Memory dump written", log.String("file", opts.DumpFile))
	}

	return m, runErr
}

// createFrontend creates the frontend selected in the options.
func (p *Pipeline) createFrontend(opts options.Program, writer io.Writer) (frontend.Frontend, error) {
	switch strings.ToLower(opts.Frontend) {
	case frontend.Headless:
		return frontend.NewHeadless(p.logger, opts.Frames), nil
	case frontend.Terminal:
		return terminal.New(p.logger, os.Stdin, writer), nil
	case frontend.Window, "":
		return window.New(p.logger, opts.Scale), nil
	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, loaded int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", loaded),
		log.String("frontend", opts.Frontend),
		log.Int("cycles_per_frame", opts.CyclesPerFrame),
	)
}

// logFinalState logs the registers and the screen at debug level.
func (p *Pipeline) logFinalState(m *machine.Machine) {
	var registers, screen strings.Builder
	if err := dump.Registers(&registers, m.State()); err != nil {
		p.logger.Error("Dumping registers failed", log.Err(err))
		return
	}
	if err := dump.Screen(&screen, m.Screen()); err != nil {
		p.logger.Error("Dumping screen failed", log.Err(err))
		return
	}

	p.logger.Debug("Final machine state",
		log.Uint64("frames", m.Frames()),
		log.String("registers", registers.String()),
		log.String("screen", screen.String()))
}

func writeMemoryDump(path string, mem *memory.Memory) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dump file %s: %w", path, err)
	}

	if err := dump.Memory(file, mem); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing dump file %s: %w", path, err)
	}
	return nil
}
