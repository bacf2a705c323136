//go:build unix

package exec

import (
	"fmt"
	"syscall"
)

// Exec replaces the current process using execve.
func (e *RealExecutor) Exec(name string, args []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	argv := append([]string{name}, args...)
	// #nosec G204 -- the command is the one the user put after "--".
	if err := syscall.Exec(binary, argv, environ()); err != nil {
		return fmt.Errorf("exec %s: %w", binary, err)
	}
	return nil
}
