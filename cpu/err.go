package cpu

import (
	"errors"

	"github.com/dregni/mos6502/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrDataSyntax      = errors.New(f("data directive syntax"))
	ErrValueRange      = errors.New(f("value out of range"))
)

// ErrMnemonic reports a word that is not an implemented mnemonic.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("unknown mnemonic '%v'", string(em))
}

// ErrOperand reports operand text that matches none of the mnemonic's
// addressing modes.
type ErrOperand struct {
	Mnemonic string
	Operand  string
}

func (eo ErrOperand) Error() string {
	return f("no %v addressing mode matches '%v'", eo.Mnemonic, eo.Operand)
}

// ErrOpcode reports an opcode byte with no table entry.
type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("illegal opcode $%02x", byte(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax decorates any assembly failure with the offending source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
