package io

import (
	"encoding/binary"
	"io"
)

// Image is a rom image: a block of assembled code, and the address it
// expects to be loaded at. Its serialized form is a four byte header of
// origin and payload length, both little-endian, followed by the payload.
type Image struct {
	Origin uint16
	Data   []byte
}

var _ io.WriterTo = (*Image)(nil)
var _ io.ReaderFrom = (*Image)(nil)

// WriteTo writes the image to w in its serialized form.
func (img *Image) WriteTo(w io.Writer) (n int64, err error) {
	if len(img.Data) > 0xffff {
		err = ErrImageSize
		return
	}

	err = binary.Write(w, binary.LittleEndian, img.Origin)
	if err != nil {
		return
	}
	n += 2

	err = binary.Write(w, binary.LittleEndian, uint16(len(img.Data)))
	if err != nil {
		return
	}
	n += 2

	wrote, err := w.Write(img.Data)
	n += int64(wrote)

	return
}

// ReadFrom replaces the image with one deserialized from r. On error the
// image is left unmodified.
func (img *Image) ReadFrom(r io.Reader) (n int64, err error) {
	var origin, size uint16

	err = binary.Read(r, binary.LittleEndian, &origin)
	if err != nil {
		return
	}
	n += 2

	err = binary.Read(r, binary.LittleEndian, &size)
	if err != nil {
		return
	}
	n += 2

	data := make([]byte, size)
	read, err := io.ReadFull(r, data)
	n += int64(read)
	if err != nil {
		return
	}

	img.Origin = origin
	img.Data = data

	return
}
