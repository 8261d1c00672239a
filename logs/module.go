package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives terminal log output. The program's own output goes elsewhere.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
