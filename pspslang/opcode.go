package pspslang

import "strings"

type Opcode uint8

const (
	MoveRight Opcode = iota
	MoveLeft
	Increment
	Decrement
	JumpForward
	JumpBack
	Output
	Input
)

const (
	Marker     = 'p'
	Terminator = 's'

	// MinTokenLength is the length of the shortest token, MoveRight's.
	MinTokenLength = 3
)

var opcodes = [...]Opcode{
	MoveRight,
	MoveLeft,
	Increment,
	Decrement,
	JumpForward,
	JumpBack,
	Output,
	Input,
}

var opcodeNames = [...]string{
	MoveRight:   "MoveRight",
	MoveLeft:    "MoveLeft",
	Increment:   "Increment",
	Decrement:   "Decrement",
	JumpForward: "JumpForward",
	JumpBack:    "JumpBack",
	Output:      "Output",
	Input:       "Input",
}

// OpcodeAt maps an index in [0, 7] to its opcode.
func OpcodeAt(index int) (Opcode, bool) {
	if index < 0 || index >= len(opcodes) {
		return 0, false
	}
	return opcodes[index], true
}

func (o Opcode) String() string {
	if int(o) < len(opcodeNames) {
		return opcodeNames[o]
	}
	return "Opcode(?)"
}

// Token returns the canonical source token of the opcode.
func (o Opcode) Token() string {
	n := int(o) + MinTokenLength
	var b strings.Builder
	b.Grow(n)
	for i := range n {
		if i%2 == 0 {
			b.WriteByte(Marker)
		} else {
			b.WriteByte(Terminator)
		}
	}
	return b.String()
}
