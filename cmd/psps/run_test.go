package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/psps/configs"
	"github.com/reusee/psps/logs"
	"github.com/reusee/psps/modes"
	"github.com/reusee/psps/pspsconfigs"
	"github.com/reusee/psps/pspslang"
	"github.com/reusee/psps/pspsvm"
)

func testScope(t *testing.T, stdout *bytes.Buffer, defs ...any) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, pspsconfigs.Schema)
		},
		func() pspsvm.Stdin {
			return strings.NewReader("")
		},
		func() pspsvm.Stdout {
			return stdout
		},
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Fork(defs...)
}

func TestRunHello(t *testing.T) {
	*programFile = "testdata/hello.pspspsps"
	defer func() {
		*programFile = ""
	}()

	stdout := new(bytes.Buffer)
	testScope(t, stdout).Call(func(
		load LoadProgram,
		run Run,
	) {
		name, program, err := load()
		if err != nil {
			t.Fatal(err)
		}
		if name != "testdata/hello.pspspsps" {
			t.Fatalf("got %s", name)
		}
		machine, err := run(context.Background(), name, program)
		if err != nil {
			t.Fatal(err)
		}
		if !machine.IsDone() {
			t.Fatal()
		}
		if str := stdout.String(); str != "Hello World!\nprogram completed.\n" {
			t.Fatalf("got %q", str)
		}
	})
}

func TestRunBrainfuckFile(t *testing.T) {
	*bfFile = "testdata/hello.bf"
	defer func() {
		*bfFile = ""
	}()

	stdout := new(bytes.Buffer)
	testScope(t, stdout).Call(func(
		load LoadProgram,
		run Run,
	) {
		_, bf, err := load()
		if err != nil {
			t.Fatal(err)
		}
		*bfFile = ""
		*programFile = "testdata/hello.pspspsps"
		defer func() {
			*programFile = ""
		}()
		_, psps, err := load()
		if err != nil {
			t.Fatal(err)
		}
		if pspslang.Encode(bf) != pspslang.Encode(psps) {
			t.Fatal("translation mismatch")
		}
	})
}

func TestRunBudget(t *testing.T) {
	stdout := new(bytes.Buffer)
	testScope(t, stdout,
		func() pspsconfigs.StepBudget {
			return 10
		},
	).Call(func(
		run Run,
	) {
		// +[]
		program := []pspslang.Opcode{
			pspslang.Increment,
			pspslang.JumpForward,
			pspslang.JumpBack,
		}
		machine, err := run(context.Background(), "loop", program)
		if err != nil {
			t.Fatal(err)
		}
		if machine.IsDone() {
			t.Fatal()
		}
		if str := stdout.String(); str != "ran out of instructions.\n" {
			t.Fatalf("got %q", str)
		}
	})
}

func TestRunNonPositiveBudget(t *testing.T) {
	for _, budget := range []pspsconfigs.StepBudget{0, -1} {
		stdout := new(bytes.Buffer)
		testScope(t, stdout,
			func() pspsconfigs.StepBudget {
				return budget
			},
		).Call(func(
			run Run,
		) {
			machine, err := run(context.Background(), "inc", pspslang.Load("pspsp pspsp"))
			if err != nil {
				t.Fatal(err)
			}
			if machine.PC != 0 || machine.Tape[0] != 0 {
				t.Fatalf("budget %d: executed %d instructions", budget, machine.PC)
			}
			if str := stdout.String(); str != "ran out of instructions.\n" {
				t.Fatalf("got %q", str)
			}
		})
	}
}

func TestRunExactBudget(t *testing.T) {
	stdout := new(bytes.Buffer)
	testScope(t, stdout,
		func() pspsconfigs.StepBudget {
			return 2
		},
	).Call(func(
		run Run,
	) {
		machine, err := run(context.Background(), "inc", pspslang.Load("pspsp pspsp"))
		if err != nil {
			t.Fatal(err)
		}
		if machine.Tape[0] != 2 {
			t.Fatalf("got %d", machine.Tape[0])
		}
		if str := stdout.String(); str != "program completed.\n" {
			t.Fatalf("got %q", str)
		}
	})
}

func TestRunFailure(t *testing.T) {
	stdout := new(bytes.Buffer)
	testScope(t, stdout).Call(func(
		run Run,
	) {
		machine, err := run(context.Background(), "bad", pspslang.Load("pspspsp"))
		if !errors.Is(err, pspsvm.ErrUnmatchedJumpForward) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
		if machine == nil || machine.PC != 0 {
			t.Fatalf("got %+v", machine)
		}
		if stdout.Len() != 0 {
			t.Fatalf("got %q", stdout.String())
		}
	})
}

func TestRunEmptyTape(t *testing.T) {
	testScope(t, new(bytes.Buffer),
		func() pspsconfigs.TapeSize {
			return 0
		},
	).Call(func(
		run Run,
	) {
		machine, err := run(context.Background(), "empty", nil)
		if !errors.Is(err, pspsvm.ErrEmptyTape) {
			t.Fatalf("got %v", err)
		}
		if machine != nil {
			t.Fatal()
		}
	})
}

func TestLoadMissingFile(t *testing.T) {
	*programFile = "testdata/nope.pspspsps"
	defer func() {
		*programFile = ""
	}()
	testScope(t, new(bytes.Buffer)).Call(func(
		load LoadProgram,
	) {
		if _, _, err := load(); err == nil {
			t.Fatal("should fail")
		}
	})
}

func TestMachineGlobals(t *testing.T) {
	machine, err := pspsvm.New(2, pspslang.Load("pspsp psp"))
	if err != nil {
		t.Fatal(err)
	}
	globals := machineGlobals(machine)
	if globals["pc"] != 0 || globals["done"] != false {
		t.Fatalf("got %v", globals)
	}
	step := globals["step"].(func() string)
	if str := step(); str != "pc=1 pointer=0 cell=1" {
		t.Fatalf("got %s", str)
	}
	step()
	if str := step(); !strings.Contains(str, "program already completed") {
		t.Fatalf("got %s", str)
	}
}
