package io

import (
	"errors"

	"github.com/dregni/mos6502/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageSize = errors.New(f("image too large"))
)
