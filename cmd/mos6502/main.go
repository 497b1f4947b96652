// Copyright 2025, Mads Dregni <mads.dregni@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dregni/mos6502/cpu"
	"github.com/dregni/mos6502/emulator"
	"github.com/dregni/mos6502/io"
)

// defineList collects repeated -D name=value flags.
type defineList []string

func (dl *defineList) String() string {
	return strings.Join(*dl, ",")
}

func (dl *defineList) Set(value string) error {
	*dl = append(*dl, value)
	return nil
}

func main() {
	var compile string
	var output string
	var raw bool
	var listing bool
	var disasm string
	var run bool
	var halt uint
	var maxTicks int
	var defines defineList
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&output, "o", "", ".rom file to write")
	flag.BoolVar(&raw, "raw", false, "Write the bare payload, without the image header")
	flag.BoolVar(&listing, "l", false, "Print the assembled listing")
	flag.StringVar(&disasm, "d", "", ".rom file to disassemble")
	flag.BoolVar(&run, "r", false, "Run the loaded program")
	flag.UintVar(&halt, "halt", uint(emulator.DEFAULT_HALT), "Opcode byte to halt on")
	flag.IntVar(&maxTicks, "max", 0, "Tick budget for -r, 0 for unbounded")
	flag.Var(&defines, "D", "Predefine an equate as name=value (repeatable)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if halt > 0xff {
		log.Fatalf("%v: -halt out of range: %#x", os.Args[0], halt)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MaxTicks = maxTicks

	for _, define := range defines {
		equ, value, ok := strings.Cut(define, "=")
		if !ok {
			log.Fatalf("%v: -D wants name=value, got: %v", os.Args[0], define)
		}
		emu.Predefine(equ, value)
	}

	// Assemble a new program.
	if len(compile) != 0 {
		inf := os.Stdin
		if compile != "-" {
			var err error
			inf, err = os.Open(compile)
			if err != nil {
				log.Fatalf("%v: %v", compile, err)
			}
			defer inf.Close()
		}

		err := emu.Assemble(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	// Load a rom image and print its disassembly.
	if len(disasm) != 0 {
		inf := os.Stdin
		if disasm != "-" {
			var err error
			inf, err = os.Open(disasm)
			if err != nil {
				log.Fatalf("%v: %v", disasm, err)
			}
			defer inf.Close()
		}

		img := &io.Image{}
		_, err := img.ReadFrom(inf)
		if err != nil {
			log.Fatalf("%v: %v", disasm, err)
		}

		err = emu.LoadImage(img)
		if err != nil {
			log.Fatalf("%v: %v", disasm, err)
		}

		for addr, text := range cpu.Disassemble(img.Data, img.Origin) {
			fmt.Printf("%04x  %s\n", addr, text)
		}
	}

	if listing {
		for line := range emu.Program.Listing() {
			fmt.Println(line)
		}
	}

	if len(output) != 0 {
		ouf := os.Stdout
		if output != "-" {
			var err error
			ouf, err = os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
		}

		img := emu.Image()
		var err error
		if raw {
			_, err = ouf.Write(img.Data)
		} else {
			_, err = img.WriteTo(ouf)
		}
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if run {
		err := emu.Run(byte(halt))
		if err != nil {
			log.Fatal(err)
		}

		if verbose {
			log.Printf("%v", emu.Cpu)
			img := emu.Image()
			for line := range emu.Cpu.Mem.Dump(img.Origin, len(img.Data)) {
				log.Printf("%v", line)
			}
		}
	}
}
