package maccheck

import "errors"

// Kind classifies the outcome of a check.
type Kind int

const (
	KindOK            Kind = iota // host is supported
	KindOSVersion                 // macOS 14.4 or newer
	KindHardwareModel             // MacBookPro16,1
	KindProbe                     // host facts could not be read or parsed
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindOSVersion:
		return "os_version"
	case KindHardwareModel:
		return "hardware_model"
	case KindProbe:
		return "probe"
	default:
		return "unknown"
	}
}

// KindOf classifies an error returned by Verify, VerifyHost or VerifyAll.
// For joined errors the OS version kind wins over the model kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrUnsupportedOSVersion):
		return KindOSVersion
	case errors.Is(err, ErrUnsupportedModel):
		return KindHardwareModel
	default:
		return KindProbe
	}
}
