// Package maccheck reports whether the current machine is an unsupported
// macOS release or hardware model.
//
// A host fails when its macOS product version is 14.4 or newer, or when its
// hardware model is MacBookPro16,1. The OS version is evaluated first and
// its failure takes precedence.
package maccheck

import (
	"errors"
	"fmt"

	"github.com/vertti/maccheck/pkg/host"
	"github.com/vertti/maccheck/pkg/version"
)

// UnsupportedModel is the hardware model identifier that always fails.
const UnsupportedModel = "MacBookPro16,1"

// MaxOSVersion is the first macOS release that fails. The bound is inclusive.
var MaxOSVersion = version.Version{Major: 14, Minor: 4}

var (
	// ErrUnsupportedOSVersion is returned for macOS 14.4 and newer.
	ErrUnsupportedOSVersion = errors.New("macOS version is not supported")
	// ErrUnsupportedModel is returned for the MacBookPro16,1 model.
	ErrUnsupportedModel = errors.New("hardware model is not supported")
	// ErrParseOSVersion is returned when the host reports a version that cannot be parsed.
	ErrParseOSVersion = errors.New("macOS version cannot be parsed")
)

// Verify checks the running host. It returns nil when the host is supported,
// otherwise the first failure found.
func Verify() error {
	return VerifyHost(&host.RealInfo{})
}

// VerifyHost checks the facts reported by info and returns the first failure.
func VerifyHost(info host.Info) error {
	if _, err := checkOSVersion(info); err != nil {
		return err
	}
	if _, err := checkModel(info); err != nil {
		return err
	}
	return nil
}

// VerifyAll checks every fact reported by info and joins all failures,
// OS version first. It returns nil when the host is supported.
func VerifyAll(info host.Info) error {
	_, osErr := checkOSVersion(info)
	_, modelErr := checkModel(info)
	return errors.Join(osErr, modelErr)
}

// checkOSVersion returns the parsed version even when it fails the threshold.
func checkOSVersion(info host.Info) (version.Version, error) {
	raw, err := info.OSVersion()
	if err != nil {
		return version.Version{}, fmt.Errorf("read macOS version: %w", err)
	}

	v, err := version.Parse(raw)
	if err != nil {
		return version.Version{}, fmt.Errorf("%w: %w", ErrParseOSVersion, err)
	}

	if v.GreaterThanOrEqual(MaxOSVersion) {
		return v, fmt.Errorf("%w: macOS %s is at or above %d.%d, which is not POSIX-compliant; use a release prior to %d.%d",
			ErrUnsupportedOSVersion, v, MaxOSVersion.Major, MaxOSVersion.Minor, MaxOSVersion.Major, MaxOSVersion.Minor)
	}
	return v, nil
}

// checkModel returns the model read from the host even when it fails.
func checkModel(info host.Info) (string, error) {
	model, err := info.Model()
	if err != nil {
		return "", fmt.Errorf("read hardware model: %w", err)
	}

	if model == UnsupportedModel {
		return model, fmt.Errorf("%w: %s", ErrUnsupportedModel, model)
	}
	return model, nil
}
