package emulator

import (
	"slices"

	"github.com/dregni/mos6502/cpu"
	"github.com/dregni/mos6502/io"
)

// LoadImage installs a rom image at its origin and resets the session.
// No listing accompanies an image, so runtime errors carry only the
// failing address.
func (emu *Emulator) LoadImage(img *io.Image) (err error) {
	emu.Program = &cpu.Program{Origin: img.Origin}
	emu.origin = img.Origin
	emu.rom = slices.Clone(img.Data)

	err = emu.Reset()

	return
}

// Image returns the installed rom in container form.
func (emu *Emulator) Image() (img *io.Image) {
	img = &io.Image{
		Origin: emu.origin,
		Data:   slices.Clone(emu.rom),
	}

	return
}
