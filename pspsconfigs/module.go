package pspsconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/psps/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
