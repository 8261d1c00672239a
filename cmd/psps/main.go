package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/psps/cmds"
	"github.com/reusee/psps/debugs"
	"github.com/reusee/psps/logs"
	"github.com/reusee/psps/modes"
	"github.com/reusee/psps/pspslang"
	"github.com/reusee/psps/pspsvm"
)

var (
	emit    = cmds.Switch("-emit")
	tapFlag = cmds.Switch("-tap")
)

func init() {
	cmds.Describe("-emit", "print the program as canonical pspsps source instead of running it")
	cmds.Describe("-tap", "inspect the machine in a starlark repl after the run")
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	exitCode := 0
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		load LoadProgram,
		run Run,
		tap debugs.Tap,
		stdout pspsvm.Stdout,
		logger logs.Logger,
	) {
		ctx := context.Background()

		name, program, err := load()
		if err != nil {
			logger.Error("load program", "error", err)
			exitCode = 1
			return
		}

		if *emit {
			fmt.Fprintln(stdout, pspslang.Encode(program))
			return
		}

		machine, err := run(ctx, name, program)
		if err != nil {
			exitCode = 1
		}
		if *tapFlag && machine != nil {
			tap(ctx, name, machineGlobals(machine))
		}
	})
	os.Exit(exitCode)
}
