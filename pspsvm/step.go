package pspsvm

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/reusee/psps/pspslang"
)

var replacementChar = []byte(string(utf8.RuneError))

func (m *Machine) Step() error {
	if m.IsDone() {
		return ErrProgramDone
	}

	op := m.Program[m.PC]
	switch op {

	case pspslang.MoveRight:
		m.Pointer = (m.Pointer + 1) % len(m.Tape)

	case pspslang.MoveLeft:
		if m.Pointer > 0 {
			m.Pointer--
		} else {
			m.Pointer = len(m.Tape) - 1
		}

	case pspslang.Increment:
		m.Tape[m.Pointer]++

	case pspslang.Decrement:
		m.Tape[m.Pointer]--

	case pspslang.Output:
		if err := m.output(m.Tape[m.Pointer]); err != nil {
			return m.stepError(op, err)
		}

	case pspslang.Input:
		b, err := m.input()
		if err != nil {
			return m.stepError(op, err)
		}
		m.Tape[m.Pointer] = b

	case pspslang.JumpForward:
		if m.Tape[m.Pointer] == 0 {
			pc, ok := m.match(m.PC, 1, pspslang.JumpForward, pspslang.JumpBack)
			if !ok {
				return m.stepError(op, ErrUnmatchedJumpForward)
			}
			m.PC = pc
		}

	case pspslang.JumpBack:
		if m.Tape[m.Pointer] != 0 {
			pc, ok := m.match(m.PC, -1, pspslang.JumpBack, pspslang.JumpForward)
			if !ok {
				return m.stepError(op, ErrUnmatchedJumpBack)
			}
			m.PC = pc
		}

	default:
		return m.stepError(op, fmt.Errorf("unknown opcode %d", op))
	}

	if m.Narrate != nil {
		switch op {
		case pspslang.MoveRight, pspslang.MoveLeft, pspslang.Increment, pspslang.Decrement:
			m.Narrate(op)
		}
	}

	m.PC++
	return nil
}

// match walks from the bracket at pc in direction dir and returns the index of
// the bracket closing it. Brackets of kind same nest, kind closing unnests.
func (m *Machine) match(pc int, dir int, same, closing pspslang.Opcode) (int, bool) {
	depth := 0
	for i := pc + dir; i >= 0 && i < len(m.Program); i += dir {
		switch m.Program[i] {
		case same:
			depth++
		case closing:
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}

func (m *Machine) output(cell byte) error {
	if m.Output == nil {
		return nil
	}
	var err error
	if cell < utf8.RuneSelf {
		_, err = m.Output.Write([]byte{cell})
	} else {
		_, err = m.Output.Write(replacementChar)
	}
	return err
}

func (m *Machine) input() (byte, error) {
	if m.Input == nil {
		return 0, ErrInputExhausted
	}
	var buf [1]byte
	if _, err := io.ReadFull(m.Input, buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: %w", ErrInputExhausted, err)
		}
		return 0, err
	}
	return buf[0], nil
}

func (m *Machine) stepError(op pspslang.Opcode, err error) error {
	return StepError{
		PC:  m.PC,
		Op:  op,
		Err: err,
	}
}
