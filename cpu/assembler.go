// Copyright 2025, Mads Dregni <mads.dregni@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "$0000",
}

// Assembler is a single-pass line encoder for the implemented 6502
// subset. Each source line becomes at most one instruction or data
// directive; there are no labels and no forward references.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Line    []Line // List of assembled lines.

	Equate map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines an equate before parsing begins. Parse resets the
// equate table; predefines survive across runs.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		value16, _, verr := asm.fieldValue(str)
		if verr != nil {
			// Non-field equates are invisible to expressions.
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	if st_int64 < 0 || st_int64 > 0xffff {
		err = errors.Join(ErrValueRange, ErrParseExpression(expr))
		return
	}
	value = uint16(st_int64)
	return
}

// parseLine expands and splits a single comment-stripped line. Equate
// definitions are consumed here; the remaining instruction words are
// returned for encoding.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("$%04x", lineno)

	// Do $() evaluations, substituting canonical hex fields.
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		if value > 0xff {
			return fmt.Sprintf("$%04x", value)
		}
		return fmt.Sprintf("$%02x", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	return
}

// currentAddr gets the load address of the next emitted byte.
func (asm *Assembler) currentAddr() (addr uint16) {
	addr = LOAD_ADDR
	if len(asm.Line) > 0 {
		last := asm.Line[len(asm.Line)-1]
		addr = last.Addr + uint16(len(last.Bytes))
	}
	return
}

// Parse assembles an input stream into a Program. The first failure
// aborts the pass, decorated with the offending source line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Line = asm.Line[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.encodeLine(words, line, lineno)
		if err != nil {
			return
		}
	}

	prog = &Program{
		Origin: LOAD_ADDR,
		Lines:  slices.Clone(asm.Line),
	}

	return
}

// encodeLine encodes the instruction or data directive in words,
// appending an assembled Line on success. Empty lines emit nothing.
func (asm *Assembler) encodeLine(words []string, source string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	var bytes []byte

	switch words[0] {
	case ".byte":
		bytes, err = asm.parseData(words[1:], false)
	case ".word":
		bytes, err = asm.parseData(words[1:], true)
	default:
		bytes, err = asm.encodeInstruction(words)
	}
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("%04x: % x", asm.currentAddr(), bytes)
	}

	asm.Line = append(asm.Line, Line{
		LineNo: lineno,
		Addr:   asm.currentAddr(),
		Source: source,
		Bytes:  bytes,
	})

	return
}

// encodeInstruction encodes one mnemonic and its operand text.
func (asm *Assembler) encodeInstruction(words []string) (bytes []byte, err error) {
	op, ok := OpByName(words[0])
	if !ok {
		err = ErrMnemonic(words[0])
		return
	}

	text := strings.Join(words[1:], "")

	operand, err := asm.tokenizeOperand(text)
	if err != nil {
		err = errors.Join(ErrOperand{Mnemonic: op.String(), Operand: text}, err)
		return
	}

	bytes, ok = encodeOperand(op, operand)
	if !ok {
		err = ErrOperand{Mnemonic: op.String(), Operand: text}
		return
	}

	return
}

// parseData encodes a .byte or .word value list. Word values emit
// little-endian; a word field in a .byte list is out of range.
func (asm *Assembler) parseData(words []string, wide bool) (bytes []byte, err error) {
	if len(words) == 0 {
		err = ErrDataSyntax
		return
	}

	for _, field := range strings.Split(strings.Join(words, ""), ",") {
		if field == "" {
			err = ErrDataSyntax
			return
		}

		var value uint16
		var w bool
		value, w, err = asm.fieldValue(field)
		if err != nil {
			return
		}

		if wide {
			bytes = append(bytes, byte(value), byte(value>>8))
		} else {
			if w {
				err = ErrValueRange
				return
			}
			bytes = append(bytes, byte(value))
		}
	}

	return
}
