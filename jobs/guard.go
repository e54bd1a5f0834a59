package jobs

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/timzifer/wellcad/wellcad"
)

// guardEnv is the document state visible to step guards.
type guardEnv struct {
	// Name is the document title.
	Name string `expr:"name"`
	// Logs lists the log titles in document order.
	Logs []string `expr:"logs"`
	// LogCount is the number of logs, the same as len(logs).
	LogCount int     `expr:"log_count"`
	Top      float64 `expr:"top"`
	Bottom   float64 `expr:"bottom"`
	// Version is the major version of the host.
	Version int `expr:"version"`
}

// compileGuard compiles a step guard. An empty guard yields a nil program.
// Unknown identifiers are rejected at compile time.
func compileGuard(source string) (*vm.Program, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}
	program, err := expr.Compile(source, expr.Env(guardEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile guard %q: %w", source, err)
	}
	return program, nil
}

func evalGuard(program *vm.Program, env guardEnv) (bool, error) {
	out, err := vm.Run(program, env)
	if err != nil {
		return false, err
	}
	ok, _ := out.(bool)
	return ok, nil
}

func snapshot(bh *wellcad.Borehole) (guardEnv, error) {
	var env guardEnv
	var err error
	if env.Name, err = bh.Name(); err != nil {
		return env, err
	}
	if env.LogCount, err = bh.NbOfLogs(); err != nil {
		return env, err
	}
	env.Logs = make([]string, 0, env.LogCount)
	for i := 0; i < env.LogCount; i++ {
		log, err := bh.Log(i)
		if err != nil {
			return env, err
		}
		title, err := log.Name()
		if err != nil {
			return env, err
		}
		env.Logs = append(env.Logs, title)
	}
	if env.Top, err = bh.TopDepth(); err != nil {
		return env, err
	}
	if env.Bottom, err = bh.BottomDepth(); err != nil {
		return env, err
	}
	if env.Version, err = bh.VersionMajor(); err != nil {
		return env, err
	}
	return env, nil
}
