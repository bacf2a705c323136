package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "mac"
	Status  Status   // OK or FAIL
	Details []string // facts observed on the host, e.g. "os: 14.4.1"
	Err     error    // underlying error for failures, nil when OK
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
