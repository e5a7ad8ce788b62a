// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"log"

	"github.com/ezrec/synvm/cpu"
	"github.com/ezrec/synvm/internal"
	"github.com/ezrec/synvm/io"
)

// Emulator state. CPU + program listing + terminal tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Tape io.Tape // Terminal IO channel.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.Term = &emu.Tape

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		emu.Tape.Defines(),
	)
}

// Reset the machine and reload the program image.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()
	err = emu.Cpu.Load(emu.Program.Image())

	return
}

// LineNo returns the source line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	debug := emu.Program.Debug(emu.Cpu.Pc)
	if debug.Opcode == nil {
		return 0
	}

	return debug.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
	}

	return
}

// Run executes the loaded program until it halts or faults.
func (emu *Emulator) Run() (err error) {
	if emu.Verbose {
		log.Printf("emulator: run %d words\n", emu.Cpu.Length)
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	return
}
