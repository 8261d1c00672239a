package main

import (
	"context"
	"fmt"

	"github.com/reusee/psps/logs"
	"github.com/reusee/psps/pspsconfigs"
	"github.com/reusee/psps/pspslang"
	"github.com/reusee/psps/pspsvm"
)

// Run executes program until it completes, fails or spends the step budget.
// The returned machine is nil only if it could not be constructed.
type Run func(ctx context.Context, name string, program []pspslang.Opcode) (*pspsvm.Machine, error)

func (Module) Run(
	newMachine pspsvm.NewMachine,
	budget pspsconfigs.StepBudget,
	stdout pspsvm.Stdout,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Run {
	return func(ctx context.Context, name string, program []pspslang.Opcode) (*pspsvm.Machine, error) {
		ctx, _ = newSpan(ctx, "")

		machine, err := newMachine(program)
		if err != nil {
			logger.ErrorContext(ctx, "new machine", "error", err)
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "run",
			"program", name,
			"instructions", len(program),
			"tape", len(machine.Tape),
			"budget", int(budget),
		)

		// a budget below 1 executes nothing
		steps := 0
		if int(budget) > 0 {
			for _, err := range machine.Run {
				if err != nil {
					logger.ErrorContext(ctx, "step failed",
						"error", err,
						"steps", steps,
					)
					return machine, logs.WrapSpan(ctx, err)
				}
				steps++
				if steps >= int(budget) {
					break
				}
			}
		}

		if machine.IsDone() {
			logger.DebugContext(ctx, "done", "steps", steps)
			fmt.Fprintln(stdout, "program completed.")
		} else {
			logger.WarnContext(ctx, "step budget exhausted", "steps", steps)
			fmt.Fprintln(stdout, "ran out of instructions.")
		}
		return machine, nil
	}
}
