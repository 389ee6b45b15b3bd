// Package main implements a CHIP-8 ROM listing tool
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

type optionFlags struct {
	input  string
	output string
	base   uint
	quiet  bool
}

func main() {
	opts := readArguments()
	logger := config.CreateLogger(false, opts.quiet)

	if err := listFile(opts); err != nil {
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := optionFlags{}

	flags.StringVar(&opts.output, "o", "", "name of the output file, printed on console if no name given")
	flags.UintVar(&opts.base, "base", memory.ProgramStart, "address the ROM is loaded at")
	flags.BoolVar(&opts.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) != 1 {
		fmt.Printf("usage: chip8disasm [options] <file to disassemble>\n\n")
		flags.PrintDefaults()
		fmt.Println()
		os.Exit(1)
	}
	opts.input = args[0]
	return opts
}

func listFile(opts optionFlags) error {
	image, err := loader.New().Load(opts.input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	if opts.base > 0xFFFF {
		return fmt.Errorf("invalid base address $%X", opts.base)
	}

	out := os.Stdout
	if opts.output != "" {
		out, err = os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = out.Close() }()
	}

	buf := bufio.NewWriter(out)
	if err := disasm.Write(buf, image, uint16(opts.base)); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}
