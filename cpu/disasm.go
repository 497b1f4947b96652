package cpu

import (
	"fmt"
	"iter"
)

// Disassemble decodes a flat code image back into source form, yielding
// each instruction's address with its rendered line. Bytes that do not
// decode, and instructions truncated by the end of the image, come back
// as .byte directives so the listing always covers the whole image.
func Disassemble(data []byte, origin uint16) iter.Seq2[uint16, string] {
	return func(yield func(uint16, string) bool) {
		offset := 0
		for offset < len(data) {
			addr := origin + uint16(offset)
			code := data[offset]

			entry := Decode(code)
			width := entry.Mode.OperandBytes()
			if !entry.Valid() || offset+width >= len(data) {
				if !yield(addr, fmt.Sprintf(".byte $%02x", code)) {
					return
				}
				offset += 1
				continue
			}

			var value uint16
			switch width {
			case 1:
				value = uint16(data[offset+1])
			case 2:
				value = uint16(data[offset+1]) | uint16(data[offset+2])<<8
			}

			text := entry.Op.String()
			if operand := entry.Mode.Operand(value); operand != "" {
				text += " " + operand
			}

			if !yield(addr, text) {
				return
			}
			offset += 1 + width
		}
	}
}
