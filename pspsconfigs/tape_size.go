package pspsconfigs

import (
	"github.com/reusee/psps/cmds"
	"github.com/reusee/psps/configs"
	"github.com/reusee/psps/vars"
)

type TapeSize int

const DefaultTapeSize = 2048

var tapeSizeFlag = cmds.Var[int]("-tape")

func init() {
	cmds.Describe("-tape", "tape size in cells")
}

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
		DefaultTapeSize,
	))
}
