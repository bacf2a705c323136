//go:build darwin

package host

import "golang.org/x/sys/unix"

func sysctl(name string) (string, error) {
	return unix.Sysctl(name)
}
