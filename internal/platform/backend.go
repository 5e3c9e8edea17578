package platform

import (
	"sort"

	"github.com/1broseidon/displayconf/internal/monitor"
)

// Backend exposes the live monitor environment to config conversion.
type Backend interface {
	monitor.Lister
	monitor.Access
	Close()
}

// Snapshot lists the monitors once and returns them as a resolvable list,
// so several conversions can share a single round trip to the server.
func Snapshot(l monitor.Lister) (monitor.List, error) {
	handles, err := l.Monitors()
	if err != nil {
		return nil, err
	}
	return monitor.List(handles), nil
}

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// rawMonitor is what a window system reports before indexes are assigned.
type rawMonitor struct {
	ID      int
	Name    string
	Bounds  Rect
	Primary bool
}

// assignIndexes orders monitors by backend ID and numbers them densely from
// zero. Disabled outputs leave gaps in backend IDs; config indexes have none.
func assignIndexes(raw []rawMonitor) []monitor.Handle {
	sorted := make([]rawMonitor, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	handles := make([]monitor.Handle, 0, len(sorted))
	for i, m := range sorted {
		handles = append(handles, monitor.Handle{
			Index:   i,
			Name:    m.Name,
			X:       m.Bounds.X,
			Y:       m.Bounds.Y,
			Width:   m.Bounds.Width,
			Height:  m.Bounds.Height,
			Primary: m.Primary,
		})
	}
	return handles
}
