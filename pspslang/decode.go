package pspslang

import "errors"

var ErrBadToken = errors.New("bad token")

func Decode(token string) (Opcode, error) {
	n, ok := tokenLength(token)
	if !ok || n < MinTokenLength {
		return 0, ErrBadToken
	}
	op, ok := OpcodeAt(n - MinTokenLength)
	if !ok {
		return 0, ErrBadToken
	}
	return op, nil
}

func tokenLength(token string) (int, bool) {
	for i := 0; i < len(token); i++ {
		expected := byte(Marker)
		if i%2 == 1 {
			expected = Terminator
		}
		if token[i] != expected {
			return 0, false
		}
	}
	return len(token), true
}
