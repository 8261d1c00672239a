package pspsvm

import (
	"io"

	"github.com/reusee/psps/pspslang"
)

type Machine struct {
	Pointer int
	PC      int
	Tape    []byte
	Program []pspslang.Opcode

	// Narrate is called after each executed move, increment or decrement.
	Narrate func(op pspslang.Opcode)

	Input  io.Reader
	Output io.Writer
}

func New(tapeSize int, program []pspslang.Opcode) (*Machine, error) {
	if tapeSize < 1 {
		return nil, ErrEmptyTape
	}
	return &Machine{
		Tape:    make([]byte, tapeSize),
		Program: program,
	}, nil
}

func (m *Machine) IsDone() bool {
	return m.PC >= len(m.Program)
}

func (m *Machine) Cell() byte {
	return m.Tape[m.Pointer]
}
