//go:build !linux && !darwin && !windows

package sysinfo

import "context"

func screenDimensions(context.Context) (int, int, error) {
	return 0, 0, ErrUnsupported
}
