package monitor

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotFound is matched by every ResolutionError.
var ErrNotFound = errors.New("monitor not found")

// Handle is a live monitor as reported by the windowing environment.
type Handle struct {
	Index   int    `json:"index" yaml:"index"`
	Name    string `json:"name" yaml:"name"`
	X       int    `json:"x" yaml:"x"`
	Y       int    `json:"y" yaml:"y"`
	Width   int    `json:"width" yaml:"width"`
	Height  int    `json:"height" yaml:"height"`
	Primary bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// Access resolves identifiers against the current monitor environment.
// Implementations must not mutate anything; Resolve is a read-only query.
type Access interface {
	Resolve(id Ident) (Handle, error)
}

// Lister enumerates the currently attached monitors.
type Lister interface {
	Monitors() ([]Handle, error)
}

// ResolutionError reports an identifier that matches no attached monitor.
type ResolutionError struct {
	Ident     Ident
	Available int
}

func (e *ResolutionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("resolve monitor %s: no match among %d attached monitor(s)", e.Ident, e.Available)
}

func (e *ResolutionError) Unwrap() error {
	return ErrNotFound
}

// List is a snapshot of attached monitors. It implements Access without
// touching the display server, so it doubles as the headless backend.
type List []Handle

var _ Access = List(nil)

// Resolve picks a monitor by index and/or name.
//
// With both set, the monitor at Index wins when its name matches; otherwise
// the name is looked up. There is no fallback to the primary monitor.
func (l List) Resolve(id Ident) (Handle, error) {
	if id.Index != nil && id.Name != "" {
		if h, ok := l.byIndex(*id.Index); ok && h.Name == id.Name {
			return h, nil
		}
		if h, ok := l.byName(id.Name); ok {
			return h, nil
		}
		return Handle{}, &ResolutionError{Ident: id, Available: len(l)}
	}
	if id.Name != "" {
		if h, ok := l.byName(id.Name); ok {
			return h, nil
		}
	}
	if id.Index != nil {
		if h, ok := l.byIndex(*id.Index); ok {
			return h, nil
		}
	}
	return Handle{}, &ResolutionError{Ident: id, Available: len(l)}
}

func (l List) byIndex(index int) (Handle, bool) {
	for _, h := range l {
		if h.Index == index {
			return h, true
		}
	}
	return Handle{}, false
}

func (l List) byName(name string) (Handle, bool) {
	for _, h := range l {
		if h.Name == name {
			return h, true
		}
	}
	return Handle{}, false
}

// Primary returns the monitor flagged as primary, or the first one.
func Primary(l List) (Handle, bool) {
	if len(l) == 0 {
		return Handle{}, false
	}
	for _, h := range l {
		if h.Primary {
			return h, true
		}
	}
	return l[0], true
}

// IdentOf returns the identifier that resolves back to h.
func IdentOf(h Handle) Ident {
	index := h.Index
	return Ident{Index: &index, Name: h.Name}
}

// Ident references a monitor by index, by name, or by both.
type Ident struct {
	Index *int
	Name  string
}

// ByIndex returns an index-only identifier.
func ByIndex(index int) Ident {
	return Ident{Index: &index}
}

// ByName returns a name-only identifier.
func ByName(name string) Ident {
	return Ident{Name: name}
}

func (id Ident) String() string {
	switch {
	case id.Index != nil && id.Name != "":
		return fmt.Sprintf("%d (%q)", *id.Index, id.Name)
	case id.Index != nil:
		return strconv.Itoa(*id.Index)
	case id.Name != "":
		return strconv.Quote(id.Name)
	default:
		return "<empty>"
	}
}
