package pspsvm

import "github.com/reusee/psps/pspslang"

// Run steps until the program is done or a step fails.
// There is no instruction budget; callers stop early by returning false.
func (m *Machine) Run(yield func(pspslang.Opcode, error) bool) {
	for !m.IsDone() {
		op := m.Program[m.PC]
		if err := m.Step(); err != nil {
			yield(op, err)
			return
		}
		if !yield(op, nil) {
			return
		}
	}
}
