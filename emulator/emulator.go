// Copyright 2025, Mads Dregni <mads.dregni@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/dregni/mos6502/cpu"
	"github.com/dregni/mos6502/internal"
)

const (
	// DEFAULT_HALT is the opcode byte Run stops on unless told
	// otherwise. It has no table entry, so a zeroed memory fabric
	// halts rather than executes.
	DEFAULT_HALT = byte(0x00)
)

var _emulator_defines = map[string]string{
	"HALT": fmt.Sprintf("$%02x", DEFAULT_HALT),
}

// Emulator is an execution session: CPU plus the loaded program and its
// listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Listing of the loaded program, for line mapping.

	MaxTicks int // If nonzero, Run gives up after this many ticks.

	predefine map[string]string
	origin    uint16
	rom       []byte
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the session's system equates.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Predefine defines an equate passed to every subsequent Assemble.
// Caller equates override the session's system equates.
func (emu *Emulator) Predefine(equ string, value string) {
	if emu.predefine == nil {
		emu.predefine = make(map[string]string)
	}
	emu.predefine[equ] = value
}

// Assemble parses source with the session equates predefined, then
// installs the result and resets. The listing is kept so runtime errors
// can name their source line.
func (emu *Emulator) Assemble(src io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}
	for equ, value := range emu.Defines() {
		asm.Predefine(equ, value)
	}
	for equ, value := range emu.predefine {
		asm.Predefine(equ, value)
	}

	prog, err := asm.Parse(src)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.origin = prog.Origin
	emu.rom = prog.ROM()

	err = emu.Reset()

	return
}

// Reset returns the session to its power-on state: registers and memory
// cleared, and the installed rom reloaded at its origin.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if len(emu.rom) == 0 {
		return
	}

	err = emu.Cpu.Mem.Load(emu.origin, emu.rom)
	if err != nil {
		return
	}

	emu.Cpu.PC = emu.origin

	if emu.Verbose {
		log.Printf("loaded %d bytes at $%04x", len(emu.rom), emu.origin)
	}

	return
}

// Tick executes one instruction, decorating any fault with the failing
// address and, when the listing covers it, the source line.
func (emu *Emulator) Tick() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	addr := emu.Cpu.PC
	defer func() {
		if err != nil {
			var lineno int
			if line := emu.Program.LineAt(addr); line != nil {
				lineno = line.LineNo
			}
			err = &ErrRuntime{Addr: addr, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()

	return
}

// Run ticks until the byte at PC equals halt, the tick budget runs out,
// or execution faults. The halt byte itself is never executed.
func (emu *Emulator) Run(halt byte) (err error) {
	ticks := 0
	for emu.Cpu.Mem.Read(emu.Cpu.PC) != halt {
		if emu.MaxTicks > 0 && ticks >= emu.MaxTicks {
			err = fmt.Errorf("%w: %d ticks", ErrTickLimit, emu.MaxTicks)
			return
		}

		err = emu.Tick()
		if err != nil {
			return
		}
		ticks++
	}

	return
}
