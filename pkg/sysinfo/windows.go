//go:build windows

package sysinfo

import (
	"context"
	"errors"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	getSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	smCXScreen = 0
	smCYScreen = 1
)

func screenDimensions(context.Context) (int, int, error) {
	if err := getSystemMetrics.Find(); err != nil {
		return 0, 0, err
	}
	width, _, _ := getSystemMetrics.Call(uintptr(smCXScreen))
	height, _, _ := getSystemMetrics.Call(uintptr(smCYScreen))
	if width == 0 || height == 0 {
		return 0, 0, errors.New("GetSystemMetrics returned no screen size")
	}
	return int(width), int(height), nil
}
