package pspslang

var brainfuckOpcodes = map[rune]Opcode{
	'>': MoveRight,
	'<': MoveLeft,
	'+': Increment,
	'-': Decrement,
	'[': JumpForward,
	']': JumpBack,
	'.': Output,
	',': Input,
}

// FromBrainfuck translates brainfuck source, ignoring non-command characters.
func FromBrainfuck(src string) []Opcode {
	var program []Opcode
	for _, r := range src {
		if op, ok := brainfuckOpcodes[r]; ok {
			program = append(program, op)
		}
	}
	return program
}
