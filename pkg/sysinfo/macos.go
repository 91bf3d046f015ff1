//go:build darwin

package sysinfo

import (
	"context"
	"fmt"
	"os/exec"
)

func screenDimensions(ctx context.Context) (int, int, error) {
	out, err := exec.CommandContext(ctx, "system_profiler", "SPDisplaysDataType", "-json").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("running system_profiler: %w", err)
	}
	return parseSystemProfiler(out)
}
