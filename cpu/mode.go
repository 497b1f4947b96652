package cpu

import (
	"fmt"
)

// Mode identifies an addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMPLIED          = Mode(0)  // implied
	MODE_ACCUMULATOR      = Mode(1)  // accumulator
	MODE_IMMEDIATE        = Mode(2)  // immediate
	MODE_ZEROPAGE         = Mode(3)  // zeroPage
	MODE_ZEROPAGE_X       = Mode(4)  // zeroPageX
	MODE_ZEROPAGE_Y       = Mode(5)  // zeroPageY
	MODE_ABSOLUTE         = Mode(6)  // absolute
	MODE_ABSOLUTE_X       = Mode(7)  // absoluteX
	MODE_ABSOLUTE_Y       = Mode(8)  // absoluteY
	MODE_INDIRECT         = Mode(9)  // indirect
	MODE_INDEXED_INDIRECT = Mode(10) // indexedIndirect
	MODE_INDIRECT_INDEXED = Mode(11) // indirectIndexed
	MODE_RELATIVE         = Mode(12) // relative
)

// OperandBytes returns the number of operand bytes the mode occupies
// after the opcode byte.
func (mode Mode) OperandBytes() (n int) {
	switch mode {
	case MODE_IMPLIED, MODE_ACCUMULATOR:
		n = 0
	case MODE_ABSOLUTE, MODE_ABSOLUTE_X, MODE_ABSOLUTE_Y, MODE_INDIRECT:
		n = 2
	default:
		n = 1
	}
	return
}

// Operand renders an operand value in the mode's source syntax.
func (mode Mode) Operand(value uint16) (text string) {
	switch mode {
	case MODE_ACCUMULATOR:
		text = "A"
	case MODE_IMMEDIATE:
		text = fmt.Sprintf("#$%02x", byte(value))
	case MODE_ZEROPAGE, MODE_RELATIVE:
		text = fmt.Sprintf("$%02x", byte(value))
	case MODE_ZEROPAGE_X:
		text = fmt.Sprintf("$%02x,X", byte(value))
	case MODE_ZEROPAGE_Y:
		text = fmt.Sprintf("$%02x,Y", byte(value))
	case MODE_ABSOLUTE:
		text = fmt.Sprintf("$%04x", value)
	case MODE_ABSOLUTE_X:
		text = fmt.Sprintf("$%04x,X", value)
	case MODE_ABSOLUTE_Y:
		text = fmt.Sprintf("$%04x,Y", value)
	case MODE_INDIRECT:
		text = fmt.Sprintf("($%04x)", value)
	case MODE_INDEXED_INDIRECT:
		text = fmt.Sprintf("($%02x,X)", byte(value))
	case MODE_INDIRECT_INDEXED:
		text = fmt.Sprintf("($%02x),Y", byte(value))
	}
	return
}

// effectiveAddress resolves the mode's target address against the
// current state. PC must point at the first operand byte. Resolution
// reads registers and memory and never mutates either.
func (cpu *Cpu) effectiveAddress(mode Mode) (addr uint16) {
	switch mode {
	case MODE_IMMEDIATE:
		// The operand byte's own address.
		addr = cpu.PC
	case MODE_ZEROPAGE:
		addr = uint16(cpu.Mem.Read(cpu.PC))
	case MODE_ZEROPAGE_X:
		// Index addition wraps within the zero page.
		addr = uint16(cpu.Mem.Read(cpu.PC) + cpu.X)
	case MODE_ZEROPAGE_Y:
		addr = uint16(cpu.Mem.Read(cpu.PC) + cpu.Y)
	case MODE_ABSOLUTE:
		addr = cpu.Mem.ReadWord(cpu.PC)
	case MODE_ABSOLUTE_X:
		addr = cpu.Mem.ReadWord(cpu.PC) + uint16(cpu.X)
	case MODE_ABSOLUTE_Y:
		addr = cpu.Mem.ReadWord(cpu.PC) + uint16(cpu.Y)
	case MODE_INDIRECT:
		addr = cpu.Mem.ReadWord(cpu.Mem.ReadWord(cpu.PC))
	case MODE_INDEXED_INDIRECT:
		addr = cpu.readZeroPageWord(cpu.Mem.Read(cpu.PC) + cpu.X)
	case MODE_INDIRECT_INDEXED:
		addr = cpu.readZeroPageWord(cpu.Mem.Read(cpu.PC)) + uint16(cpu.Y)
	case MODE_RELATIVE:
		// Signed displacement from the operand byte's position. No
		// operation is wired to this mode; the resolver stands alone.
		addr = cpu.PC + uint16(int8(cpu.Mem.Read(cpu.PC)))
	}
	return
}

// readZeroPageWord reads the little-endian word at a zero-page address.
// The high byte fetch wraps within the page.
func (cpu *Cpu) readZeroPageWord(zp byte) (value uint16) {
	value = uint16(cpu.Mem.Read(uint16(zp))) | uint16(cpu.Mem.Read(uint16(zp+1)))<<8
	return
}
