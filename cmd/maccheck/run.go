package main

import (
	"errors"
	"io"

	"github.com/vertti/maccheck/pkg/check"
	"github.com/vertti/maccheck/pkg/maccheck"
	"github.com/vertti/maccheck/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns ErrCheckFailed if it failed.
// The returned error makes main exit with code 1.
func runCheck(w io.Writer, c check.Checker, style format) error {
	result := c.Run()

	switch style {
	case formatJSON:
		if err := output.PrintJSON(w, result, maccheck.KindOf(result.Err).String()); err != nil {
			return err
		}
	default:
		output.PrintResult(w, result)
	}

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
