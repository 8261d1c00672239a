package pspsconfigs

import (
	"github.com/reusee/psps/cmds"
	"github.com/reusee/psps/configs"
)

type Narrate bool

var narrateFlag = cmds.Switch("-narrate")

func init() {
	cmds.Describe("-narrate", "log moves, increments and decrements")
}

func (Module) Narrate(
	loader configs.Loader,
) Narrate {
	return Narrate(*narrateFlag || configs.First[bool](loader, "narrate"))
}
