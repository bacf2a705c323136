package maccheck

import (
	"errors"

	"github.com/vertti/maccheck/pkg/check"
	"github.com/vertti/maccheck/pkg/host"
)

// Check verifies the host is neither an unsupported macOS release nor an
// unsupported hardware model.
type Check struct {
	Info host.Info // nil reads the real host
	All  bool      // report every failure instead of stopping at the first
}

// Run executes the check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "mac",
	}

	info := c.Info
	if info == nil {
		info = &host.RealInfo{}
	}

	v, osErr := checkOSVersion(info)
	if osErr == nil || errors.Is(osErr, ErrUnsupportedOSVersion) {
		result.AddDetailf("os: %s", v)
	}
	if osErr != nil && !c.All {
		return result.Fail(osErr)
	}

	model, modelErr := checkModel(info)
	if modelErr == nil || errors.Is(modelErr, ErrUnsupportedModel) {
		result.AddDetailf("model: %s", model)
	}

	if osErr != nil || modelErr != nil {
		return result.FailAll(osErr, modelErr)
	}
	return result.Pass()
}
