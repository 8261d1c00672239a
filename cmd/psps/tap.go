package main

import (
	"fmt"

	"github.com/reusee/psps/pspsvm"
)

// machineGlobals snapshots machine for the tap. step advances the machine and
// reports the registers afterwards.
func machineGlobals(machine *pspsvm.Machine) map[string]any {
	return map[string]any{
		"pc":      machine.PC,
		"pointer": machine.Pointer,
		"tape":    machine.Tape,
		"program": machine.Program,
		"done":    machine.IsDone(),
		"step": func() string {
			if err := machine.Step(); err != nil {
				return err.Error()
			}
			return fmt.Sprintf("pc=%d pointer=%d cell=%d", machine.PC, machine.Pointer, machine.Cell())
		},
	}
}
