package main

import (
	"fmt"
	"os"

	"github.com/reusee/psps/cmds"
	"github.com/reusee/psps/pspslang"
	"github.com/reusee/psps/vars"
)

const defaultProgramFile = "hello.pspspsps"

var (
	programFile = cmds.Var[string]("-file")
	bfFile      = cmds.Var[string]("-bf")
)

func init() {
	cmds.Describe("-file", "program file, default "+defaultProgramFile)
	cmds.Describe("-bf", "brainfuck program file, translated before running")
}

type LoadProgram func() (name string, program []pspslang.Opcode, err error)

func (Module) LoadProgram() LoadProgram {
	return func() (string, []pspslang.Opcode, error) {
		if *bfFile != "" {
			content, err := os.ReadFile(*bfFile)
			if err != nil {
				return "", nil, err
			}
			return *bfFile, pspslang.FromBrainfuck(string(content)), nil
		}

		path := vars.FirstNonZero(*programFile, defaultProgramFile)
		f, err := os.Open(path)
		if err != nil {
			return "", nil, err
		}
		defer f.Close()
		program, err := pspslang.LoadReader(f)
		if err != nil {
			return "", nil, fmt.Errorf("read %s: %w", path, err)
		}
		return path, program, nil
	}
}
