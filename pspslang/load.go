package pspslang

import (
	"bufio"
	"io"
	"strings"
)

// Load decodes every whitespace separated token of source.
// Tokens that do not decode are skipped, so any other text reads as a comment.
func Load(source string) []Opcode {
	var program []Opcode
	for _, token := range strings.FieldsFunc(source, isASCIISpace) {
		op, err := Decode(token)
		if err != nil {
			continue
		}
		program = append(program, op)
	}
	return program
}

func LoadReader(r io.Reader) ([]Opcode, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(newWordSplitter())
	var program []Opcode
	for scanner.Scan() {
		op, err := Decode(scanner.Text())
		if err != nil {
			continue
		}
		program = append(program, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return program, nil
}

func Encode(program []Opcode) string {
	tokens := make([]string, 0, len(program))
	for _, op := range program {
		tokens = append(tokens, op.Token())
	}
	return strings.Join(tokens, " ")
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// maxTokenLength is the length of the longest token, Input's.
const maxTokenLength = MinTokenLength + len(opcodes) - 1

// newWordSplitter returns a bufio.SplitFunc like bufio.ScanWords restricted to
// ASCII whitespace. Words longer than maxTokenLength are never returned; they
// are consumed up to the next space, so no buffer limit applies to them.
func newWordSplitter() bufio.SplitFunc {
	skipping := false
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		start := 0
		if skipping {
			for start < len(data) && !isASCIISpace(rune(data[start])) {
				start++
			}
			if start == len(data) {
				return start, nil, nil
			}
			skipping = false
		}
		for start < len(data) && isASCIISpace(rune(data[start])) {
			start++
		}
		for i := start; i < len(data); i++ {
			if isASCIISpace(rune(data[i])) {
				return i + 1, data[start:i], nil
			}
			if i-start >= maxTokenLength {
				skipping = true
				return i, nil, nil
			}
		}
		if atEOF && len(data) > start {
			return len(data), data[start:], nil
		}
		return start, nil, nil
	}
}
