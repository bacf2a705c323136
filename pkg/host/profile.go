package host

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vertti/maccheck/pkg/version"
)

const systemProfiler = "system_profiler"

var profileArgs = []string{"-json", "SPSoftwareDataType", "SPHardwareDataType"}

// Profile holds the facts read from system_profiler output.
type Profile struct {
	OSVersion string // e.g. "14.4.1", extracted from "macOS 14.4.1 (23E224)"
	Model     string // e.g. "MacBookPro16,1"
}

// LoadProfile runs system_profiler and parses its JSON output.
func LoadProfile(runner Runner) (Profile, error) {
	stdout, stderr, err := runner.RunCommand(systemProfiler, profileArgs...)
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return Profile{}, fmt.Errorf("%s: %w: %s", systemProfiler, err, msg)
		}
		return Profile{}, fmt.Errorf("%s: %w", systemProfiler, err)
	}
	return ParseProfile([]byte(stdout))
}

// ParseProfile extracts the OS version and model from
// `system_profiler -json SPSoftwareDataType SPHardwareDataType` output.
// Fields missing from the output are left empty.
func ParseProfile(data []byte) (Profile, error) {
	if !gjson.ValidBytes(data) {
		return Profile{}, errors.New("system_profiler: invalid JSON output")
	}

	res := gjson.GetManyBytes(data,
		"SPSoftwareDataType.0.os_version",
		"SPHardwareDataType.0.machine_model",
	)

	var p Profile
	if osVersion := res[0].String(); osVersion != "" {
		v, err := version.Extract(osVersion)
		if err != nil {
			return Profile{}, fmt.Errorf("system_profiler os_version: %w", err)
		}
		p.OSVersion = v.String()
	}
	p.Model = strings.TrimSpace(res[1].String())
	return p, nil
}
