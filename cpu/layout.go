package cpu

import (
	"fmt"
)

const (
	ZERO_PAGE  = uint16(0x0000) // Page addressed by the single-byte modes.
	STACK_PAGE = uint16(0x0100) // Page addressed by the stack pointer.
	LOAD_ADDR  = uint16(0x0200) // Load address for assembled images.
)

// Defines for the memory layout, exposed to assembly as equates.
var _cpu_defines = map[string]string{
	"ZERO_PAGE":  fmt.Sprintf("$%04x", ZERO_PAGE),
	"STACK_PAGE": fmt.Sprintf("$%04x", STACK_PAGE),
	"LOAD_ADDR":  fmt.Sprintf("$%04x", LOAD_ADDR),
}
