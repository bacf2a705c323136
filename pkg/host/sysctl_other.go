//go:build !darwin

package host

func sysctl(string) (string, error) {
	return "", ErrUnsupportedPlatform
}
