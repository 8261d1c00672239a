package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/psps/debugs"
	"github.com/reusee/psps/pspsvm"
)

type Module struct {
	dscope.Module
	VM     pspsvm.Module
	Debugs debugs.Module
}
