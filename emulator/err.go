package emulator

import (
	"errors"

	"github.com/dregni/mos6502/translate"
)

var f = translate.From

var (
	// Session errors
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Addr   uint16
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo > 0 {
		return f("$%04x line %d %v", err.Addr, err.LineNo, err.Err)
	}

	return f("$%04x %v", err.Addr, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
