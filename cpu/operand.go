package cpu

import (
	"strconv"
	"strings"
)

// OperandKind classifies the shape of tokenized operand text.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE        = OperandKind(0)  // none
	OPERAND_ACCUMULATOR = OperandKind(1)  // A
	OPERAND_IMMEDIATE   = OperandKind(2)  // #$nn
	OPERAND_BYTE        = OperandKind(3)  // $nn
	OPERAND_BYTE_X      = OperandKind(4)  // $nn,X
	OPERAND_BYTE_Y      = OperandKind(5)  // $nn,Y
	OPERAND_WORD        = OperandKind(6)  // $nnnn
	OPERAND_WORD_X      = OperandKind(7)  // $nnnn,X
	OPERAND_WORD_Y      = OperandKind(8)  // $nnnn,Y
	OPERAND_INDIRECT    = OperandKind(9)  // ($nnnn)
	OPERAND_INDIRECT_X  = OperandKind(10) // ($nn,X)
	OPERAND_INDIRECT_Y  = OperandKind(11) // ($nn),Y
)

// Operand is a tokenized operand: its shape plus the parsed value.
type Operand struct {
	Kind  OperandKind
	Value uint16
}

// operandModes maps each operand shape to the addressing mode it names.
// The no-operand shape is resolved against the operation in mode().
var operandModes = map[OperandKind]Mode{
	OPERAND_ACCUMULATOR: MODE_ACCUMULATOR,
	OPERAND_IMMEDIATE:   MODE_IMMEDIATE,
	OPERAND_BYTE:        MODE_ZEROPAGE,
	OPERAND_BYTE_X:      MODE_ZEROPAGE_X,
	OPERAND_BYTE_Y:      MODE_ZEROPAGE_Y,
	OPERAND_WORD:        MODE_ABSOLUTE,
	OPERAND_WORD_X:      MODE_ABSOLUTE_X,
	OPERAND_WORD_Y:      MODE_ABSOLUTE_Y,
	OPERAND_INDIRECT:    MODE_INDIRECT,
	OPERAND_INDIRECT_X:  MODE_INDEXED_INDIRECT,
	OPERAND_INDIRECT_Y:  MODE_INDIRECT_INDEXED,
}

// mode selects the addressing mode the operand shape names for op, and
// checks it against the operation's legal set. No operand text selects
// Accumulator for operations that have an accumulator form, Implied
// otherwise.
func (operand Operand) mode(op Op) (mode Mode, ok bool) {
	if operand.Kind == OPERAND_NONE {
		mode = MODE_IMPLIED
		if op.HasMode(MODE_ACCUMULATOR) {
			mode = MODE_ACCUMULATOR
		}
	} else {
		mode = operandModes[operand.Kind]
	}

	ok = op.HasMode(mode)

	return
}

// encodeOperand emits the opcode byte and operand bytes for an
// (operation, operand) pair. Words are little-endian.
func encodeOperand(op Op, operand Operand) (out []byte, ok bool) {
	mode, ok := operand.mode(op)
	if !ok {
		return
	}

	code, _ := Encode(op, mode)

	out = append(out, code)
	switch mode.OperandBytes() {
	case 1:
		out = append(out, byte(operand.Value))
	case 2:
		out = append(out, byte(operand.Value), byte(operand.Value>>8))
	}

	return
}

// tokenizeOperand turns operand text into a typed Operand. Decorations
// (#, parentheses, index suffixes) select the shape; the embedded value
// field picks byte versus word width by its hex digit count.
func (asm *Assembler) tokenizeOperand(text string) (operand Operand, err error) {
	var value uint16
	var wide bool

	switch {
	case len(text) == 0:
		operand.Kind = OPERAND_NONE
		return

	case strings.EqualFold(text, "A"):
		operand.Kind = OPERAND_ACCUMULATOR
		return

	case strings.HasPrefix(text, "#"):
		operand.Kind = OPERAND_IMMEDIATE
		value, wide, err = asm.fieldValue(text[1:])
		if err == nil && wide {
			err = ErrParseValue(text)
		}

	case strings.HasPrefix(text, "("):
		inner := text[1:]
		if field, ok := cutSuffixFold(inner, ",X)"); ok {
			operand.Kind = OPERAND_INDIRECT_X
			value, wide, err = asm.fieldValue(field)
			if err == nil && wide {
				err = ErrParseValue(text)
			}
		} else if field, ok := cutSuffixFold(inner, "),Y"); ok {
			operand.Kind = OPERAND_INDIRECT_Y
			value, wide, err = asm.fieldValue(field)
			if err == nil && wide {
				err = ErrParseValue(text)
			}
		} else if field, ok := cutSuffixFold(inner, ")"); ok {
			operand.Kind = OPERAND_INDIRECT
			value, wide, err = asm.fieldValue(field)
			if err == nil && !wide {
				err = ErrParseValue(text)
			}
		} else {
			err = ErrParseValue(text)
		}

	default:
		if field, ok := cutSuffixFold(text, ",X"); ok {
			operand.Kind = OPERAND_BYTE_X
			value, wide, err = asm.fieldValue(field)
			if wide {
				operand.Kind = OPERAND_WORD_X
			}
		} else if field, ok := cutSuffixFold(text, ",Y"); ok {
			operand.Kind = OPERAND_BYTE_Y
			value, wide, err = asm.fieldValue(field)
			if wide {
				operand.Kind = OPERAND_WORD_Y
			}
		} else {
			operand.Kind = OPERAND_BYTE
			value, wide, err = asm.fieldValue(text)
			if wide {
				operand.Kind = OPERAND_WORD
			}
		}
	}

	if err != nil {
		operand = Operand{}
		return
	}

	operand.Value = value

	return
}

// fieldValue parses a $-prefixed hex field, resolving equates first.
// The digit count picks the operand width: exactly two digits is a byte
// field, exactly four a word field.
func (asm *Assembler) fieldValue(field string) (value uint16, wide bool, err error) {
	if equate, ok := asm.Equate[field]; ok {
		field = equate
	}

	digits, ok := strings.CutPrefix(field, "$")
	if !ok {
		err = ErrParseValue(field)
		return
	}

	switch len(digits) {
	case 2:
	case 4:
		wide = true
	default:
		err = ErrParseValue(field)
		return
	}

	v64, perr := strconv.ParseUint(digits, 16, 16)
	if perr != nil {
		err = ErrParseValue(field)
		return
	}

	value = uint16(v64)

	return
}

// cutSuffixFold strips a case-insensitive suffix.
func cutSuffixFold(text string, suffix string) (rest string, ok bool) {
	if len(text) >= len(suffix) && strings.EqualFold(text[len(text)-len(suffix):], suffix) {
		rest = text[:len(text)-len(suffix)]
		ok = true
	}
	return
}
