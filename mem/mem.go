// Copyright 2025, Mads Dregni <mads.dregni@gmail.com>

// Package mem provides the flat 64 KiB memory fabric shared by the
// assembler's load path and the execution core. Addresses are 16 bits,
// words are little-endian, and word access at the top of memory wraps
// around to address zero.
package mem

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Size of the address space, in bytes.
const Size = 0x10000

// Memory is a zero-initialized flat byte fabric spanning the full
// 16-bit address space. No banking, no protection, no mapped devices.
type Memory []byte

// New creates a zeroed Memory.
func New() (m Memory) {
	m = make(Memory, Size)
	return
}

// Read the byte at addr.
func (m Memory) Read(addr uint16) (value byte) {
	value = m[addr]
	return
}

// Write the byte at addr.
func (m Memory) Write(addr uint16, value byte) {
	m[addr] = value
}

// ReadWord reads the little-endian word at addr. The high byte comes
// from addr+1, wrapping at the top of the address space.
func (m Memory) ReadWord(addr uint16) (value uint16) {
	value = uint16(m[addr]) | uint16(m[addr+1])<<8
	return
}

// WriteWord writes value at addr, low byte first.
func (m Memory) WriteWord(addr uint16, value uint16) {
	m[addr] = byte(value)
	m[addr+1] = byte(value >> 8)
}

// Load copies data into memory starting at addr. Memory outside the
// image is untouched. Images that would run past the top of the address
// space are rejected whole.
func (m Memory) Load(addr uint16, data []byte) (err error) {
	if len(data) > Size-int(addr) {
		err = fmt.Errorf("%w: %d bytes at $%04x", ErrLoadRange, len(data), addr)
		return
	}

	copy(m[addr:], data)

	return
}

// Clone returns an independent copy of the memory image.
func (m Memory) Clone() (image Memory) {
	image = slices.Clone(m)
	return
}

// Clear zeroes the entire fabric.
func (m Memory) Clear() {
	clear(m)
}

// Dump yields hexdump lines, 16 bytes each, covering length bytes
// starting at start.
func (m Memory) Dump(start uint16, length int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for length > 0 {
			n := min(length, 16)
			var line strings.Builder
			fmt.Fprintf(&line, "%04x:", start)
			for range n {
				fmt.Fprintf(&line, " %02x", m[start])
				start++
			}
			length -= n
			if !yield(line.String()) {
				return
			}
		}
	}
}
