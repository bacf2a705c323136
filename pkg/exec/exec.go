// Package exec hands the process over to another command once the host
// check has passed, so maccheck can sit in front of a program as its entrypoint.
package exec

import (
	"os"
	"os/exec"
)

// Executor replaces the current process with a command.
type Executor interface {
	// Exec runs name with args in place of the current process.
	// It only returns on failure.
	Exec(name string, args []string) error
}

// RealExecutor is the production Executor.
type RealExecutor struct{}

func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func environ() []string {
	return os.Environ()
}
