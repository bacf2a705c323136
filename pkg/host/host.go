// Package host reads the facts maccheck decides on: the macOS product
// version and the hardware model identifier.
package host

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrUnsupportedPlatform is returned by RealInfo when not running on macOS.
var ErrUnsupportedPlatform = errors.New("host facts are only available on macOS")

const (
	sysctlOSProductVersion = "kern.osproductversion"
	sysctlHWModel          = "hw.model"
)

// Info abstracts host identification for testability.
type Info interface {
	// OSVersion returns the OS product version, e.g. "14.4.1".
	OSVersion() (string, error)

	// Model returns the hardware model identifier, e.g. "MacBookPro16,1".
	Model() (string, error)
}

// Static reports fixed facts instead of reading them from the host.
type Static struct {
	Version       string
	HardwareModel string
}

func (s Static) OSVersion() (string, error) { return s.Version, nil }
func (s Static) Model() (string, error)     { return s.HardwareModel, nil }

// Overlay reports the non-empty fields of Static and reads the rest from Base.
type Overlay struct {
	Base Info
	Static
}

func (o Overlay) OSVersion() (string, error) {
	if o.Version != "" {
		return o.Version, nil
	}
	return o.Base.OSVersion()
}

func (o Overlay) Model() (string, error) {
	if o.HardwareModel != "" {
		return o.HardwareModel, nil
	}
	return o.Base.Model()
}

// RealInfo reads facts from sysctl and falls back to system_profiler
// when a sysctl key is missing or empty.
// A RealInfo is safe for concurrent use and must not be copied after first use.
type RealInfo struct {
	// Sysctl overrides the sysctl reader. Nil uses the platform one.
	Sysctl func(name string) (string, error)
	// Runner runs system_profiler. Nil uses RealRunner.
	Runner Runner

	once       sync.Once
	profile    Profile
	profileErr error
}

// OSVersion returns kern.osproductversion.
func (r *RealInfo) OSVersion() (string, error) {
	return r.read(sysctlOSProductVersion, func(p Profile) string { return p.OSVersion })
}

// Model returns hw.model.
func (r *RealInfo) Model() (string, error) {
	return r.read(sysctlHWModel, func(p Profile) string { return p.Model })
}

func (r *RealInfo) read(key string, field func(Profile) string) (string, error) {
	readSysctl := r.Sysctl
	if readSysctl == nil {
		readSysctl = sysctl
	}

	value, err := readSysctl(key)
	if err == nil {
		if value = clean(value); value != "" {
			return value, nil
		}
		err = fmt.Errorf("sysctl %s: empty value", key)
	}
	if errors.Is(err, ErrUnsupportedPlatform) {
		return "", err
	}

	logrus.WithError(err).WithField("key", key).Debugln("sysctl failed, falling back to system_profiler")

	p, perr := r.systemProfile()
	if perr != nil {
		return "", fmt.Errorf("read %s: %w", key, errors.Join(err, perr))
	}
	if value = field(p); value == "" {
		return "", fmt.Errorf("read %s: %w", key, errors.Join(err, errors.New("system_profiler: value not reported")))
	}
	return value, nil
}

func (r *RealInfo) systemProfile() (Profile, error) {
	r.once.Do(func() {
		runner := r.Runner
		if runner == nil {
			runner = &RealRunner{}
		}
		r.profile, r.profileErr = LoadProfile(runner)
	})
	return r.profile, r.profileErr
}

// clean strips the trailing NUL sysctl strings may carry and surrounding whitespace.
func clean(s string) string {
	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}
