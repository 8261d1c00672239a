package pspsvm

import (
	"errors"
	"fmt"

	"github.com/reusee/psps/pspslang"
)

var (
	ErrEmptyTape      = errors.New("tape size must be positive")
	ErrProgramDone    = errors.New("program already completed")
	ErrUnmatchedJump  = errors.New("unmatched jump")
	ErrInputExhausted = errors.New("input exhausted")

	ErrUnmatchedJumpForward = fmt.Errorf("%w: no JumpBack for JumpForward", ErrUnmatchedJump)
	ErrUnmatchedJumpBack    = fmt.Errorf("%w: no JumpForward for JumpBack", ErrUnmatchedJump)
)

type StepError struct {
	PC  int
	Op  pspslang.Opcode
	Err error
}

func (s StepError) Error() string {
	return fmt.Sprintf("%s at pc %d: %s", s.Op, s.PC, s.Err.Error())
}

func (s StepError) Unwrap() error {
	return s.Err
}
