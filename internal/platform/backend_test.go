package platform

import (
	"errors"
	"testing"

	"github.com/1broseidon/displayconf/internal/monitor"
)

func TestAssignIndexes_DenseInIDOrder(t *testing.T) {
	raw := []rawMonitor{
		{ID: 3, Name: "DP-2", Bounds: Rect{X: 4480, Width: 1920, Height: 1200}},
		{ID: 0, Name: "eDP-1", Bounds: Rect{Width: 1920, Height: 1080}},
		{ID: 1, Name: "HDMI-1", Bounds: Rect{X: 1920, Width: 2560, Height: 1440}, Primary: true},
	}

	got := assignIndexes(raw)
	want := []string{"eDP-1", "HDMI-1", "DP-2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d monitors, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name || got[i].Index != i {
			t.Fatalf("expected %s at index %d, got %+v", name, i, got[i])
		}
	}
	if !got[1].Primary || got[1].Width != 2560 || got[1].X != 1920 {
		t.Fatalf("expected geometry and primary flag to carry over, got %+v", got[1])
	}
	if raw[0].ID != 3 {
		t.Fatalf("expected input slice to be left untouched")
	}
}

type fakeLister struct {
	handles []monitor.Handle
	err     error
}

func (f fakeLister) Monitors() ([]monitor.Handle, error) {
	return f.handles, f.err
}

func TestSnapshot(t *testing.T) {
	list, err := Snapshot(fakeLister{handles: []monitor.Handle{{Index: 0, Name: "a"}}})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	h, err := list.Resolve(monitor.ByName("a"))
	if err != nil || h.Index != 0 {
		t.Fatalf("expected to resolve a, got %+v, %v", h, err)
	}

	boom := errors.New("boom")
	if _, err := Snapshot(fakeLister{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected lister error, got %v", err)
	}
}
