package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Origin: LOAD_ADDR,
		Lines: []Line{
			{LineNo: 1, Addr: 0x0200, Source: "LDA #$01", Bytes: []byte{0xa9, 0x01}},
			{LineNo: 2, Addr: 0x0202, Source: "STA $2345", Bytes: []byte{0x8d, 0x45, 0x23}},
			{LineNo: 4, Addr: 0x0205, Source: "INX", Bytes: []byte{0xe8}},
		},
	}
}

func TestProgram_LineAt(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	table := [](struct {
		addr uint16
		line int
	}){
		{0x0200, 1},
		{0x0201, 1},
		{0x0202, 2},
		{0x0204, 2},
		{0x0205, 4},
	}

	for _, entry := range table {
		line := prog.LineAt(entry.addr)
		if assert.NotNil(line, entry.addr) {
			assert.Equal(entry.line, line.LineNo, entry.addr)
		}
	}
}

func TestProgram_LineAt_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	assert.Nil(prog.LineAt(0x01ff))
	assert.Nil(prog.LineAt(0x0206))
	assert.Nil(prog.LineAt(0xffff))
}

func TestProgram_LineAt_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Origin: LOAD_ADDR}
	assert.Nil(prog.LineAt(0x0200))
}

func TestProgram_ROM(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	assert.Equal([]byte{0xa9, 0x01, 0x8d, 0x45, 0x23, 0xe8}, prog.ROM())
	assert.Equal(6, prog.Size())
}

func TestProgram_ROM_Empty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Origin: LOAD_ADDR}

	assert.Equal([]byte{}, prog.ROM())
	assert.Equal(0, prog.Size())
}

func TestProgram_Listing(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	lines := []string{}
	for line := range prog.Listing() {
		lines = append(lines, line)
	}

	expected := []string{
		"0200  a9 01     LDA #$01",
		"0202  8d 45 23  STA $2345",
		"0205  e8        INX",
	}
	assert.Equal(expected, lines)
}

func TestProgram_Listing_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	count := 0
	for range prog.Listing() {
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(1, count)
}

func TestProgram_Integration_ParseAndROM(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	program := strings.Join([]string{
		"LDA #$01",
		"STA $2345 ; park it",
		"",
		"INX",
	}, "\n")

	prog, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	assert.Equal([]byte{0xa9, 0x01, 0x8d, 0x45, 0x23, 0xe8}, prog.ROM())
	assert.Equal(LOAD_ADDR, prog.Origin)

	line := prog.LineAt(0x0203)
	if assert.NotNil(line) {
		assert.Equal(2, line.LineNo)
		assert.Equal("STA $2345", line.Source)
	}

	line = prog.LineAt(0x0205)
	if assert.NotNil(line) {
		assert.Equal(4, line.LineNo)
	}
}
