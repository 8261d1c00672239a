package pspsvm

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/psps/logs"
	"github.com/reusee/psps/pspsconfigs"
	"github.com/reusee/psps/pspslang"
)

type Module struct {
	dscope.Module
	Configs pspsconfigs.Module
	Logs    logs.Module
}

type Stdin io.Reader

type Stdout io.Writer

func (Module) Stdin() Stdin {
	return os.Stdin
}

func (Module) Stdout() Stdout {
	return os.Stdout
}

type NewMachine func(program []pspslang.Opcode) (*Machine, error)

func (Module) NewMachine(
	tapeSize pspsconfigs.TapeSize,
	narrate pspsconfigs.Narrate,
	stdin Stdin,
	stdout Stdout,
	logger logs.Logger,
) NewMachine {
	return func(program []pspslang.Opcode) (*Machine, error) {
		machine, err := New(int(tapeSize), program)
		if err != nil {
			return nil, err
		}
		machine.Input = stdin
		machine.Output = stdout
		if narrate {
			machine.Narrate = func(op pspslang.Opcode) {
				logger.Info(narration[op],
					"pointer", machine.Pointer,
					"cell", machine.Cell(),
				)
			}
		}
		return machine, nil
	}
}

var narration = map[pspslang.Opcode]string{
	pspslang.MoveRight: "moved right",
	pspslang.MoveLeft:  "moved left",
	pspslang.Increment: "incremented",
	pspslang.Decrement: "decremented",
}
