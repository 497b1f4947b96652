package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		kind  OperandKind
		value uint16
	}){
		{"", OPERAND_NONE, 0},
		{"A", OPERAND_ACCUMULATOR, 0},
		{"a", OPERAND_ACCUMULATOR, 0},
		{"#$23", OPERAND_IMMEDIATE, 0x23},
		{"$23", OPERAND_BYTE, 0x23},
		{"$23,X", OPERAND_BYTE_X, 0x23},
		{"$23,x", OPERAND_BYTE_X, 0x23},
		{"$23,Y", OPERAND_BYTE_Y, 0x23},
		{"$1234", OPERAND_WORD, 0x1234},
		{"$1234,X", OPERAND_WORD_X, 0x1234},
		{"$1234,Y", OPERAND_WORD_Y, 0x1234},
		{"($1234)", OPERAND_INDIRECT, 0x1234},
		{"($12,X)", OPERAND_INDIRECT_X, 0x12},
		{"($12,x)", OPERAND_INDIRECT_X, 0x12},
		{"($12),Y", OPERAND_INDIRECT_Y, 0x12},
		{"($12),y", OPERAND_INDIRECT_Y, 0x12},
	}

	asm := &Assembler{}
	for _, entry := range table {
		operand, err := asm.tokenizeOperand(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.kind, operand.Kind, entry.text)
		assert.Equal(entry.value, operand.Value, entry.text)
	}
}

func TestTokenizeOperand_Err(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"#$1234",
		"#$123",
		"#",
		"$123",
		"$12345",
		"$",
		"$1g",
		"12",
		"(",
		"()",
		"($12)",
		"($1234,X)",
		"($1234),Y",
		"($12,Y)",
		"nothing",
	}

	asm := &Assembler{}
	for _, text := range table {
		operand, err := asm.tokenizeOperand(text)
		assert.Error(err, text)
		assert.Equal(Operand{}, operand, text)
	}
}

func TestTokenizeOperand_Equate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{
		Equate: map[string]string{
			"PTR":    "$40",
			"SCREEN": "$0400",
		},
	}

	table := [](struct {
		text  string
		kind  OperandKind
		value uint16
	}){
		{"PTR", OPERAND_BYTE, 0x40},
		{"#PTR", OPERAND_IMMEDIATE, 0x40},
		{"PTR,X", OPERAND_BYTE_X, 0x40},
		{"(PTR),Y", OPERAND_INDIRECT_Y, 0x40},
		{"(PTR,X)", OPERAND_INDIRECT_X, 0x40},
		{"SCREEN", OPERAND_WORD, 0x0400},
		{"SCREEN,Y", OPERAND_WORD_Y, 0x0400},
		{"(SCREEN)", OPERAND_INDIRECT, 0x0400},
	}

	for _, entry := range table {
		operand, err := asm.tokenizeOperand(entry.text)
		assert.NoError(err, entry.text)
		assert.Equal(entry.kind, operand.Kind, entry.text)
		assert.Equal(entry.value, operand.Value, entry.text)
	}

	// A word equate cannot feed a byte-only position.
	_, err := asm.tokenizeOperand("#SCREEN")
	assert.Error(err)
}

func TestOperand_Mode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op   Op
		kind OperandKind
		mode Mode
		ok   bool
	}){
		{OP_INX, OPERAND_NONE, MODE_IMPLIED, true},
		{OP_ASL, OPERAND_NONE, MODE_ACCUMULATOR, true},
		{OP_ASL, OPERAND_ACCUMULATOR, MODE_ACCUMULATOR, true},
		{OP_LDA, OPERAND_NONE, MODE_IMPLIED, false},
		{OP_LDA, OPERAND_IMMEDIATE, MODE_IMMEDIATE, true},
		{OP_LDA, OPERAND_BYTE, MODE_ZEROPAGE, true},
		{OP_LDA, OPERAND_WORD_X, MODE_ABSOLUTE_X, true},
		{OP_STA, OPERAND_IMMEDIATE, MODE_IMMEDIATE, false},
		{OP_LDX, OPERAND_BYTE_X, MODE_ZEROPAGE_X, false},
		{OP_LDA, OPERAND_INDIRECT, MODE_INDIRECT, false},
	}

	for _, entry := range table {
		mode, ok := Operand{Kind: entry.kind}.mode(entry.op)
		assert.Equal(entry.mode, mode, entry.kind.String())
		assert.Equal(entry.ok, ok, entry.kind.String())
	}
}

func TestEncodeOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op      Op
		operand Operand
		bytes   []byte
	}){
		{OP_ADC, Operand{OPERAND_IMMEDIATE, 0x23}, []byte{0x69, 0x23}},
		{OP_LDA, Operand{OPERAND_WORD, 0x2345}, []byte{0xad, 0x45, 0x23}},
		{OP_LDA, Operand{OPERAND_WORD_X, 0x2345}, []byte{0xbd, 0x45, 0x23}},
		{OP_STA, Operand{OPERAND_BYTE, 0x10}, []byte{0x85, 0x10}},
		{OP_ASL, Operand{OPERAND_NONE, 0}, []byte{0x0a}},
		{OP_ASL, Operand{OPERAND_ACCUMULATOR, 0}, []byte{0x0a}},
		{OP_INX, Operand{OPERAND_NONE, 0}, []byte{0xe8}},
		{OP_LDA, Operand{OPERAND_INDIRECT_Y, 0x40}, []byte{0xb1, 0x40}},
	}

	for _, entry := range table {
		bytes, ok := encodeOperand(entry.op, entry.operand)
		assert.True(ok, entry.op.String())
		assert.Equal(entry.bytes, bytes, entry.op.String())
	}

	_, ok := encodeOperand(OP_STA, Operand{Kind: OPERAND_IMMEDIATE, Value: 1})
	assert.False(ok)
}
