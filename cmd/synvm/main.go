// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/synvm/cpu"
	"github.com/ezrec/synvm/emulator"
)

func main() {
	var compile string
	var binary string
	var save bool
	var input string
	var output string
	var verbose bool

	flag.StringVar(&compile, "c", "", "assembly source file to compile")
	flag.StringVar(&binary, "b", "a.bin", "binary image file to write with -s")
	flag.BoolVar(&save, "s", false, "Save binary image, do not execute")
	flag.StringVar(&input, "i", "-", "Terminal input")
	flag.StringVar(&output, "o", "-", "Terminal output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	prog := &cpu.Program{}

	switch {
	case len(compile) != 0:
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}

		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}

		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case flag.NArg() == 1:
		image := flag.Arg(0)

		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		prog, err = cpu.ReadProgram(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	default:
		if flag.NArg() > 1 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
		}
		log.Fatalf("%v: provide a binary image, or -c source to compile", os.Args[0])
	}

	if save {
		err := os.WriteFile(binary, prog.Binary(), 0o644)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		return
	}

	emu.Program = prog

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		if verbose {
			log.Printf("cpu state:\n%v", emu.Cpu)
		}
		log.Fatal(err)
	}
}
