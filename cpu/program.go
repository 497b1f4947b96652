package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Line is one assembled source line: its number, load address, original
// text, and emitted bytes. Lines that emit nothing (.equ, comments,
// blanks) are not recorded.
type Line struct {
	LineNo int
	Addr   uint16
	Source string
	Bytes  []byte
}

// Program is an assembled listing together with its load origin.
type Program struct {
	Origin uint16
	Lines  []Line
}

// ROM returns the flat byte image: every line's bytes concatenated in
// source order.
func (prog *Program) ROM() (rom []byte) {
	rom = make([]byte, 0, prog.Size())
	for _, line := range prog.Lines {
		rom = append(rom, line.Bytes...)
	}

	return
}

// Size of the assembled image, in bytes.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		size += len(line.Bytes)
	}

	return
}

// LineAt maps an execution address back to the source line whose bytes
// cover it. Addresses outside the image map to nil.
func (prog *Program) LineAt(addr uint16) (line *Line) {
	for n := range prog.Lines {
		candidate := &prog.Lines[n]
		if addr >= candidate.Addr && int(addr) < int(candidate.Addr)+len(candidate.Bytes) {
			line = candidate
			break
		}
	}

	return
}

// Listing yields formatted listing lines: address, emitted bytes, and
// the original source.
func (prog *Program) Listing() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range prog.Lines {
			var hex strings.Builder
			for n, b := range line.Bytes {
				if n > 0 {
					hex.WriteByte(' ')
				}
				fmt.Fprintf(&hex, "%02x", b)
			}
			if !yield(fmt.Sprintf("%04x  %-9s %s", line.Addr, hex.String(), line.Source)) {
				return
			}
		}
	}
}
