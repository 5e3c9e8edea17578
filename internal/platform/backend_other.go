//go:build !linux

package platform

import (
	"fmt"
	"log/slog"
	"runtime"
)

// New reports that no monitor backend exists for this platform. Callers can
// still convert configs without fullscreen, or against a monitor.List.
func New(display string, logger *slog.Logger) (Backend, error) {
	return nil, fmt.Errorf("no monitor backend for %s", runtime.GOOS)
}
