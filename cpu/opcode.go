package cpu

import (
	"iter"
	"strings"
)

// Op identifies an implemented operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NONE = Op(0)  // ???
	OP_ADC  = Op(1)  // ADC
	OP_AND  = Op(2)  // AND
	OP_ASL  = Op(3)  // ASL
	OP_DEC  = Op(4)  // DEC
	OP_DEX  = Op(5)  // DEX
	OP_DEY  = Op(6)  // DEY
	OP_EOR  = Op(7)  // EOR
	OP_INC  = Op(8)  // INC
	OP_INX  = Op(9)  // INX
	OP_INY  = Op(10) // INY
	OP_LDA  = Op(11) // LDA
	OP_LDX  = Op(12) // LDX
	OP_LDY  = Op(13) // LDY
	OP_LSR  = Op(14) // LSR
	OP_ORA  = Op(15) // ORA
	OP_PHA  = Op(16) // PHA
	OP_PHP  = Op(17) // PHP
	OP_PLA  = Op(18) // PLA
	OP_PLP  = Op(19) // PLP
	OP_ROL  = Op(20) // ROL
	OP_ROR  = Op(21) // ROR
	OP_SBC  = Op(22) // SBC
	OP_STA  = Op(23) // STA
	OP_STX  = Op(24) // STX
	OP_STY  = Op(25) // STY
	OP_TAX  = Op(26) // TAX
	OP_TAY  = Op(27) // TAY
	OP_TSX  = Op(28) // TSX
	OP_TXA  = Op(29) // TXA
	OP_TXS  = Op(30) // TXS
	OP_TYA  = Op(31) // TYA
)

// Entry is one slot of the decode table: the (operation, addressing
// mode) pair assigned to an opcode byte.
type Entry struct {
	Op   Op
	Mode Mode
}

// Valid returns true if the entry decodes to an implemented instruction.
func (entry Entry) Valid() bool {
	return entry.Op != OP_NONE
}

// opcodeDef is one row of the instruction set listing.
type opcodeDef struct {
	op   Op
	mode Mode
	code byte
}

// opcodeDefs lists the NMOS 6502 encodings of the implemented subset.
// Both lookup directions are built from this one listing, so the
// assembler and the executor cannot drift apart.
var opcodeDefs = []opcodeDef{
	{OP_ADC, MODE_IMMEDIATE, 0x69},
	{OP_ADC, MODE_ZEROPAGE, 0x65},
	{OP_ADC, MODE_ZEROPAGE_X, 0x75},
	{OP_ADC, MODE_ABSOLUTE, 0x6d},
	{OP_ADC, MODE_ABSOLUTE_X, 0x7d},
	{OP_ADC, MODE_ABSOLUTE_Y, 0x79},
	{OP_ADC, MODE_INDEXED_INDIRECT, 0x61},
	{OP_ADC, MODE_INDIRECT_INDEXED, 0x71},

	{OP_AND, MODE_IMMEDIATE, 0x29},
	{OP_AND, MODE_ZEROPAGE, 0x25},
	{OP_AND, MODE_ZEROPAGE_X, 0x35},
	{OP_AND, MODE_ABSOLUTE, 0x2d},
	{OP_AND, MODE_ABSOLUTE_X, 0x3d},
	{OP_AND, MODE_ABSOLUTE_Y, 0x39},
	{OP_AND, MODE_INDEXED_INDIRECT, 0x21},
	{OP_AND, MODE_INDIRECT_INDEXED, 0x31},

	{OP_ASL, MODE_ACCUMULATOR, 0x0a},
	{OP_ASL, MODE_ZEROPAGE, 0x06},
	{OP_ASL, MODE_ZEROPAGE_X, 0x16},
	{OP_ASL, MODE_ABSOLUTE, 0x0e},
	{OP_ASL, MODE_ABSOLUTE_X, 0x1e},

	{OP_DEC, MODE_ZEROPAGE, 0xc6},
	{OP_DEC, MODE_ZEROPAGE_X, 0xd6},
	{OP_DEC, MODE_ABSOLUTE, 0xce},
	{OP_DEC, MODE_ABSOLUTE_X, 0xde},

	{OP_DEX, MODE_IMPLIED, 0xca},
	{OP_DEY, MODE_IMPLIED, 0x88},

	{OP_EOR, MODE_IMMEDIATE, 0x49},
	{OP_EOR, MODE_ZEROPAGE, 0x45},
	{OP_EOR, MODE_ZEROPAGE_X, 0x55},
	{OP_EOR, MODE_ABSOLUTE, 0x4d},
	{OP_EOR, MODE_ABSOLUTE_X, 0x5d},
	{OP_EOR, MODE_ABSOLUTE_Y, 0x59},
	{OP_EOR, MODE_INDEXED_INDIRECT, 0x41},
	{OP_EOR, MODE_INDIRECT_INDEXED, 0x51},

	{OP_INC, MODE_ZEROPAGE, 0xe6},
	{OP_INC, MODE_ZEROPAGE_X, 0xf6},
	{OP_INC, MODE_ABSOLUTE, 0xee},
	{OP_INC, MODE_ABSOLUTE_X, 0xfe},

	{OP_INX, MODE_IMPLIED, 0xe8},
	{OP_INY, MODE_IMPLIED, 0xc8},

	{OP_LDA, MODE_IMMEDIATE, 0xa9},
	{OP_LDA, MODE_ZEROPAGE, 0xa5},
	{OP_LDA, MODE_ZEROPAGE_X, 0xb5},
	{OP_LDA, MODE_ABSOLUTE, 0xad},
	{OP_LDA, MODE_ABSOLUTE_X, 0xbd},
	{OP_LDA, MODE_ABSOLUTE_Y, 0xb9},
	{OP_LDA, MODE_INDEXED_INDIRECT, 0xa1},
	{OP_LDA, MODE_INDIRECT_INDEXED, 0xb1},

	{OP_LDX, MODE_IMMEDIATE, 0xa2},
	{OP_LDX, MODE_ZEROPAGE, 0xa6},
	{OP_LDX, MODE_ZEROPAGE_Y, 0xb6},
	{OP_LDX, MODE_ABSOLUTE, 0xae},
	{OP_LDX, MODE_ABSOLUTE_Y, 0xbe},

	{OP_LDY, MODE_IMMEDIATE, 0xa0},
	{OP_LDY, MODE_ZEROPAGE, 0xa4},
	{OP_LDY, MODE_ZEROPAGE_X, 0xb4},
	{OP_LDY, MODE_ABSOLUTE, 0xac},
	{OP_LDY, MODE_ABSOLUTE_X, 0xbc},

	{OP_LSR, MODE_ACCUMULATOR, 0x4a},
	{OP_LSR, MODE_ZEROPAGE, 0x46},
	{OP_LSR, MODE_ZEROPAGE_X, 0x56},
	{OP_LSR, MODE_ABSOLUTE, 0x4e},
	{OP_LSR, MODE_ABSOLUTE_X, 0x5e},

	{OP_ORA, MODE_IMMEDIATE, 0x09},
	{OP_ORA, MODE_ZEROPAGE, 0x05},
	{OP_ORA, MODE_ZEROPAGE_X, 0x15},
	{OP_ORA, MODE_ABSOLUTE, 0x0d},
	{OP_ORA, MODE_ABSOLUTE_X, 0x1d},
	{OP_ORA, MODE_ABSOLUTE_Y, 0x19},
	{OP_ORA, MODE_INDEXED_INDIRECT, 0x01},
	{OP_ORA, MODE_INDIRECT_INDEXED, 0x11},

	{OP_PHA, MODE_IMPLIED, 0x48},
	{OP_PHP, MODE_IMPLIED, 0x08},
	{OP_PLA, MODE_IMPLIED, 0x68},
	{OP_PLP, MODE_IMPLIED, 0x28},

	{OP_ROL, MODE_ACCUMULATOR, 0x2a},
	{OP_ROL, MODE_ZEROPAGE, 0x26},
	{OP_ROL, MODE_ZEROPAGE_X, 0x36},
	{OP_ROL, MODE_ABSOLUTE, 0x2e},
	{OP_ROL, MODE_ABSOLUTE_X, 0x3e},

	{OP_ROR, MODE_ACCUMULATOR, 0x6a},
	{OP_ROR, MODE_ZEROPAGE, 0x66},
	{OP_ROR, MODE_ZEROPAGE_X, 0x76},
	{OP_ROR, MODE_ABSOLUTE, 0x6e},
	{OP_ROR, MODE_ABSOLUTE_X, 0x7e},

	{OP_SBC, MODE_IMMEDIATE, 0xe9},
	{OP_SBC, MODE_ZEROPAGE, 0xe5},
	{OP_SBC, MODE_ZEROPAGE_X, 0xf5},
	{OP_SBC, MODE_ABSOLUTE, 0xed},
	{OP_SBC, MODE_ABSOLUTE_X, 0xfd},
	{OP_SBC, MODE_ABSOLUTE_Y, 0xf9},
	{OP_SBC, MODE_INDEXED_INDIRECT, 0xe1},
	{OP_SBC, MODE_INDIRECT_INDEXED, 0xf1},

	{OP_STA, MODE_ZEROPAGE, 0x85},
	{OP_STA, MODE_ZEROPAGE_X, 0x95},
	{OP_STA, MODE_ABSOLUTE, 0x8d},
	{OP_STA, MODE_ABSOLUTE_X, 0x9d},
	{OP_STA, MODE_ABSOLUTE_Y, 0x99},
	{OP_STA, MODE_INDEXED_INDIRECT, 0x81},
	{OP_STA, MODE_INDIRECT_INDEXED, 0x91},

	{OP_STX, MODE_ZEROPAGE, 0x86},
	{OP_STX, MODE_ZEROPAGE_Y, 0x96},
	{OP_STX, MODE_ABSOLUTE, 0x8e},

	{OP_STY, MODE_ZEROPAGE, 0x84},
	{OP_STY, MODE_ZEROPAGE_X, 0x94},
	{OP_STY, MODE_ABSOLUTE, 0x8c},

	{OP_TAX, MODE_IMPLIED, 0xaa},
	{OP_TAY, MODE_IMPLIED, 0xa8},
	{OP_TSX, MODE_IMPLIED, 0xba},
	{OP_TXA, MODE_IMPLIED, 0x8a},
	{OP_TXS, MODE_IMPLIED, 0x9a},
	{OP_TYA, MODE_IMPLIED, 0x98},
}

var (
	table   [256]Entry
	opModes map[Op]map[Mode]byte
	opNames map[string]Op
)

func init() {
	opModes = make(map[Op]map[Mode]byte, int(OP_TYA))
	for _, def := range opcodeDefs {
		table[def.code] = Entry{Op: def.op, Mode: def.mode}

		modes := opModes[def.op]
		if modes == nil {
			modes = make(map[Mode]byte, 8)
			opModes[def.op] = modes
		}
		modes[def.mode] = def.code
	}

	opNames = make(map[string]Op, int(OP_TYA))
	for op := range Ops() {
		opNames[op.String()] = op
	}
}

// Decode returns the table entry for an opcode byte. Unassigned bytes
// decode to an invalid entry.
func Decode(code byte) (entry Entry) {
	entry = table[code]
	return
}

// Encode returns the opcode byte assigned to an (operation, mode) pair.
func Encode(op Op, mode Mode) (code byte, ok bool) {
	code, ok = opModes[op][mode]
	return
}

// OpByName looks up a mnemonic, case-insensitively.
func OpByName(name string) (op Op, ok bool) {
	op, ok = opNames[strings.ToUpper(name)]
	return
}

// HasMode returns true if mode is legal for the operation.
func (op Op) HasMode(mode Mode) (ok bool) {
	_, ok = opModes[op][mode]
	return
}

// Ops iterates the implemented operations in mnemonic order.
func Ops() iter.Seq[Op] {
	return func(yield func(Op) bool) {
		for op := OP_ADC; op <= OP_TYA; op++ {
			if !yield(op) {
				return
			}
		}
	}
}

// Modes iterates the operation's legal (mode, opcode byte) pairs in
// listing order.
func (op Op) Modes() iter.Seq2[Mode, byte] {
	return func(yield func(Mode, byte) bool) {
		for _, def := range opcodeDefs {
			if def.op != op {
				continue
			}
			if !yield(def.mode, def.code) {
				return
			}
		}
	}
}
