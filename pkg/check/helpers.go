package check

import (
	"errors"
	"fmt"
)

// Fail sets the result to failed status, recording err and its message as a detail.
func (r *Result) Fail(err error) Result {
	return r.FailAll(err)
}

// FailAll sets the result to failed status with one detail per non-nil error.
// Err holds the joined errors.
func (r *Result) FailAll(errs ...error) Result {
	for _, err := range errs {
		if err != nil {
			r.Details = append(r.Details, err.Error())
		}
	}
	r.Status = StatusFail
	r.Err = errors.Join(errs...)
	return *r
}

// Pass sets the result to OK status.
func (r *Result) Pass() Result {
	r.Status = StatusOK
	r.Err = nil
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
