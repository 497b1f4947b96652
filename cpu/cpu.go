package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/dregni/mos6502/mem"
)

// Cpu is the execution state: the register file plus the memory fabric.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	A  byte   // Accumulator.
	X  byte   // X index register.
	Y  byte   // Y index register.
	PC uint16 // Program counter.
	SP byte   // Stack pointer, an offset into STACK_PAGE.
	SR byte   // Status register. Carried, never computed.

	Mem mem.Memory // Flat 64 KiB fabric.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a CPU with a fresh memory fabric, ready to Load.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Mem: mem.New(),
	}

	cpu.Reset()

	return
}

// Defines for the cpu.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset returns the register file to its power-on state and clears
// memory. PC points at the load address, SP at the top of the stack
// page. Register arithmetic is uniformly mod 256; a reset is the only
// way registers leave the wrapped domain.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.SR = 0
	cpu.PC = LOAD_ADDR
	cpu.SP = 0xff
	cpu.Mem.Clear()
	cpu.Ticks = 0
}

// Load copies a ROM image to the load address and points PC at it.
// Memory outside the image is untouched.
func (cpu *Cpu) Load(rom []byte) (err error) {
	err = cpu.Mem.Load(LOAD_ADDR, rom)
	if err != nil {
		return
	}

	cpu.PC = LOAD_ADDR

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes at $%04x", len(rom), LOAD_ADDR)
	}

	return
}

// Snapshot returns an independent copy of the full execution state.
// The copy shares nothing with the live CPU.
func (cpu *Cpu) Snapshot() (snap Cpu) {
	snap = *cpu
	snap.Mem = cpu.Mem.Clone()
	return
}

// String returns a one-line rendering of the register file.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("a:%02x x:%02x y:%02x sp:%02x sr:%02x pc:%04x",
		cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.SR, cpu.PC)
	return
}

// Tick fetches and executes one instruction. The program counter ends
// one past the opcode byte on a decode failure, and past the whole
// instruction on success, so each successful tick consumes exactly
// 1 + operand-width bytes.
func (cpu *Cpu) Tick() (err error) {
	code := cpu.Mem.Read(cpu.PC)
	cpu.PC++

	entry := Decode(code)
	if !entry.Valid() {
		err = ErrOpcode(code)
		return
	}

	if cpu.Verbose {
		log.Printf("%04x: %02x %v %v [%v]", cpu.PC-1, code, entry.Op, entry.Mode, cpu)
	}

	cpu.execute(entry)
	cpu.PC += uint16(entry.Mode.OperandBytes())
	cpu.Ticks++

	return
}

// Run ticks until the byte at PC equals halt. The halt byte itself is
// never executed, so it need not decode to anything. Run is unbounded;
// callers needing a budget drive Tick themselves, as the emulator does.
func (cpu *Cpu) Run(halt byte) (err error) {
	for cpu.Mem.Read(cpu.PC) != halt {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// execute runs one decoded instruction. PC points at the first operand
// byte; advancing past the operand is the caller's job.
func (cpu *Cpu) execute(entry Entry) {
	switch entry.Mode {
	case MODE_IMPLIED:
		cpu.executeImplied(entry.Op)
	case MODE_ACCUMULATOR:
		cpu.A = shifted(entry.Op, cpu.A)
	default:
		cpu.executeAddressed(entry.Op, cpu.effectiveAddress(entry.Mode))
	}
}

// executeImplied runs the register-only operations.
func (cpu *Cpu) executeImplied(op Op) {
	switch op {
	case OP_INX:
		cpu.X++
	case OP_INY:
		cpu.Y++
	case OP_DEX:
		cpu.X--
	case OP_DEY:
		cpu.Y--
	case OP_TAX:
		cpu.X = cpu.A
	case OP_TAY:
		cpu.Y = cpu.A
	case OP_TXA:
		cpu.A = cpu.X
	case OP_TYA:
		cpu.A = cpu.Y
	case OP_TSX:
		cpu.X = cpu.SP
	case OP_TXS:
		cpu.SP = cpu.X
	case OP_PHA:
		cpu.push(cpu.A)
	case OP_PHP:
		cpu.push(cpu.SR)
	case OP_PLA:
		cpu.A = cpu.pop()
	case OP_PLP:
		cpu.SR = cpu.pop()
	}
}

// executeAddressed runs the operations that take an effective address.
func (cpu *Cpu) executeAddressed(op Op, addr uint16) {
	switch op {
	case OP_ADC:
		cpu.A += cpu.Mem.Read(addr)
	case OP_SBC:
		cpu.A -= cpu.Mem.Read(addr)
	case OP_AND:
		cpu.A &= cpu.Mem.Read(addr)
	case OP_EOR:
		cpu.A ^= cpu.Mem.Read(addr)
	case OP_ORA:
		cpu.A |= cpu.Mem.Read(addr)
	case OP_LDA:
		cpu.A = cpu.Mem.Read(addr)
	case OP_LDX:
		cpu.X = cpu.Mem.Read(addr)
	case OP_LDY:
		cpu.Y = cpu.Mem.Read(addr)
	case OP_STA:
		cpu.Mem.Write(addr, cpu.A)
	case OP_STX:
		cpu.Mem.Write(addr, cpu.X)
	case OP_STY:
		cpu.Mem.Write(addr, cpu.Y)
	case OP_INC:
		cpu.Mem.Write(addr, cpu.Mem.Read(addr)+1)
	case OP_DEC:
		cpu.Mem.Write(addr, cpu.Mem.Read(addr)-1)
	case OP_ASL, OP_LSR, OP_ROL, OP_ROR:
		cpu.Mem.Write(addr, shifted(op, cpu.Mem.Read(addr)))
	}
}

// shifted applies a shift or rotate to a byte. Rotates are 8-bit, bit 7
// and bit 0 trading places directly; no carry is involved.
func shifted(op Op, value byte) (out byte) {
	switch op {
	case OP_ASL:
		out = value << 1
	case OP_LSR:
		out = value >> 1
	case OP_ROL:
		out = value<<1 | value>>7
	case OP_ROR:
		out = value>>1 | value<<7
	}
	return
}
