//go:build linux

package sysinfo

import (
	"context"
	"fmt"
	"os/exec"
)

func screenDimensions(ctx context.Context) (int, int, error) {
	out, err := exec.CommandContext(ctx, "xdpyinfo").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("running xdpyinfo: %w", err)
	}
	return parseXdpyinfo(string(out))
}
