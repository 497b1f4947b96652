// Package cpu implements the instruction core for a subset of the MOS 6502:
// an assembler and an execution engine sharing a single opcode table.
//
// The processor state is an accumulator (A), two index registers (X and Y),
// a 16-bit program counter, a stack pointer into page $0100, and a status
// register that is carried but never computed (none of the implemented
// operations touch flags). About thirty mnemonics are wired over the
// standard addressing modes; branches, jumps, compares, and interrupts are
// outside the subset.
//
// The assembler is a single-pass line encoder: each operand is tokenized
// into a typed value and checked against the mnemonic's legal addressing
// modes. It supports comments, equates, data directives, and compile-time
// expression evaluation.
package cpu
