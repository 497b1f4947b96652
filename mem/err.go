package mem

import (
	"errors"

	"github.com/dregni/mos6502/translate"
)

var f = translate.From

var (
	ErrLoadRange = errors.New(f("image exceeds memory"))
)
