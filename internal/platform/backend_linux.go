//go:build linux

package platform

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/displayconf/internal/monitor"
	"github.com/1broseidon/displayconf/internal/x11"
)

// LinuxBackend answers monitor queries over an X11 connection.
type LinuxBackend struct {
	conn   *x11.Connection
	logger *slog.Logger
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection, logger *slog.Logger) *LinuxBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &LinuxBackend{conn: conn, logger: logger}
}

// New opens a connection to display ("" means $DISPLAY).
func New(display string, logger *slog.Logger) (Backend, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return NewLinuxBackend(conn, logger), nil
}

// Close closes the underlying X11 connection.
func (b *LinuxBackend) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Monitors returns all active monitors.
func (b *LinuxBackend) Monitors() ([]monitor.Handle, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	mons, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	raw := make([]rawMonitor, 0, len(mons))
	for _, m := range mons {
		raw = append(raw, rawMonitor{
			ID:      m.ID,
			Name:    m.Name,
			Bounds:  Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height},
			Primary: m.Primary,
		})
	}
	handles := assignIndexes(raw)
	b.logger.Debug("enumerated monitors", "count", len(handles))
	return handles, nil
}

// Resolve looks id up against the monitors attached right now.
func (b *LinuxBackend) Resolve(id monitor.Ident) (monitor.Handle, error) {
	list, err := Snapshot(b)
	if err != nil {
		return monitor.Handle{}, err
	}
	h, err := list.Resolve(id)
	if err != nil {
		return monitor.Handle{}, err
	}
	b.logger.Debug("resolved monitor", "ident", id.String(), "name", h.Name, "index", h.Index)
	return h, nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("linux backend has no X11 connection")
	}
	return b.conn, nil
}
