package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTable_Roundtrip(t *testing.T) {
	assert := assert.New(t)

	for op := range Ops() {
		for mode, code := range op.Modes() {
			entry := Decode(code)
			assert.Equal(Entry{Op: op, Mode: mode}, entry, op.String())

			encoded, ok := Encode(op, mode)
			assert.True(ok, op.String())
			assert.Equal(code, encoded, op.String())
		}
	}
}

func TestOpcodeTable_Unique(t *testing.T) {
	assert := assert.New(t)

	var seen [256]bool
	for op := range Ops() {
		for _, code := range op.Modes() {
			assert.False(seen[code], "%v assigned twice", code)
			seen[code] = true
		}
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code  byte
		op    Op
		mode  Mode
		valid bool
	}){
		{0x69, OP_ADC, MODE_IMMEDIATE, true},
		{0xa9, OP_LDA, MODE_IMMEDIATE, true},
		{0xbd, OP_LDA, MODE_ABSOLUTE_X, true},
		{0x0a, OP_ASL, MODE_ACCUMULATOR, true},
		{0x96, OP_STX, MODE_ZEROPAGE_Y, true},
		{0xca, OP_DEX, MODE_IMPLIED, true},
		{0x00, OP_NONE, MODE_IMPLIED, false}, // BRK is not implemented
		{0xea, OP_NONE, MODE_IMPLIED, false}, // neither is NOP
		{0x4c, OP_NONE, MODE_IMPLIED, false}, // nor JMP
		{0xff, OP_NONE, MODE_IMPLIED, false},
	}

	for _, entry := range table {
		decoded := Decode(entry.code)
		assert.Equal(entry.op, decoded.Op, entry.code)
		assert.Equal(entry.mode, decoded.Mode, entry.code)
		assert.Equal(entry.valid, decoded.Valid(), entry.code)
	}
}

func TestEncode_Illegal(t *testing.T) {
	assert := assert.New(t)

	_, ok := Encode(OP_LDA, MODE_IMPLIED)
	assert.False(ok)

	_, ok = Encode(OP_STA, MODE_IMMEDIATE)
	assert.False(ok)

	_, ok = Encode(OP_NONE, MODE_IMPLIED)
	assert.False(ok)
}

func TestOpByName(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		op   Op
		ok   bool
	}){
		{"LDA", OP_LDA, true},
		{"lda", OP_LDA, true},
		{"Lda", OP_LDA, true},
		{"TYA", OP_TYA, true},
		{"ADC", OP_ADC, true},
		{"NOP", OP_NONE, false},
		{"JMP", OP_NONE, false},
		{"???", OP_NONE, false},
		{"", OP_NONE, false},
	}

	for _, entry := range table {
		op, ok := OpByName(entry.name)
		assert.Equal(entry.ok, ok, entry.name)
		assert.Equal(entry.op, op, entry.name)
	}
}

func TestOp_HasMode(t *testing.T) {
	assert := assert.New(t)

	assert.True(OP_LDA.HasMode(MODE_IMMEDIATE))
	assert.True(OP_ASL.HasMode(MODE_ACCUMULATOR))
	assert.True(OP_INX.HasMode(MODE_IMPLIED))
	assert.False(OP_LDA.HasMode(MODE_ACCUMULATOR))
	assert.False(OP_STA.HasMode(MODE_IMMEDIATE))
	assert.False(OP_LDA.HasMode(MODE_INDIRECT))
}

func TestOps(t *testing.T) {
	assert := assert.New(t)

	prev := OP_NONE
	count := 0
	for op := range Ops() {
		assert.Greater(op, prev)
		prev = op
		count++
	}

	assert.Equal(int(OP_TYA), count)
}

func TestOps_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range Ops() {
		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(3, count)
}

func TestOp_Modes(t *testing.T) {
	assert := assert.New(t)

	modes := map[Mode]byte{}
	for mode, code := range OP_STX.Modes() {
		modes[mode] = code
	}

	assert.Equal(map[Mode]byte{
		MODE_ZEROPAGE:   0x86,
		MODE_ZEROPAGE_Y: 0x96,
		MODE_ABSOLUTE:   0x8e,
	}, modes)
}

func TestOp_Modes_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for range OP_LDA.Modes() {
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(1, count)
}

func TestOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LDA", OP_LDA.String())
	assert.Equal("TYA", OP_TYA.String())
	assert.Equal("???", OP_NONE.String())
	assert.Equal("Op(99)", Op(99).String())

	assert.Equal("zeroPageX", MODE_ZEROPAGE_X.String())
	assert.Equal("indexedIndirect", MODE_INDEXED_INDIRECT.String())
}
