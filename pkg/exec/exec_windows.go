//go:build windows

package exec

import "errors"

// ErrExecNotSupported indicates Windows has no call that replaces the running process.
var ErrExecNotSupported = errors.New("exec mode not supported on Windows")

// Exec always fails on Windows.
func (e *RealExecutor) Exec(name string, args []string) error {
	return ErrExecNotSupported
}
