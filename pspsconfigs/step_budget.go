package pspsconfigs

import (
	"github.com/reusee/psps/cmds"
	"github.com/reusee/psps/configs"
	"github.com/reusee/psps/vars"
)

// StepBudget bounds the instructions a driver executes before giving up.
type StepBudget int

const DefaultStepBudget = 0xffff

var stepBudgetFlag = cmds.Var[int]("-budget")

func init() {
	cmds.Describe("-budget", "maximum instructions to execute")
}

func (Module) StepBudget(
	loader configs.Loader,
) StepBudget {
	return StepBudget(vars.FirstNonZero(
		*stepBudgetFlag,
		configs.First[int](loader, "step_budget"),
		DefaultStepBudget,
	))
}
