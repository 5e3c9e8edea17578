package monitor

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func testMonitors() List {
	return List{
		{Index: 0, Name: "eDP-1", Width: 1920, Height: 1080},
		{Index: 1, Name: "HDMI-1", X: 1920, Width: 2560, Height: 1440, Primary: true},
		{Index: 2, Name: "DP-2", X: 4480, Width: 1920, Height: 1200},
	}
}

func TestListResolve(t *testing.T) {
	tests := []struct {
		name    string
		id      Ident
		want    string
		wantErr bool
	}{
		{"by index", ByIndex(2), "DP-2", false},
		{"by name", ByName("HDMI-1"), "HDMI-1", false},
		{"index and matching name", Ident{Index: intPtr(0), Name: "eDP-1"}, "eDP-1", false},
		{"stale index, name still attached", Ident{Index: intPtr(0), Name: "DP-2"}, "DP-2", false},
		{"index out of range", ByIndex(7), "", true},
		{"unknown name", ByName("VGA-1"), "", true},
		{"index and unknown name", Ident{Index: intPtr(1), Name: "VGA-1"}, "", true},
		{"empty ident", Ident{}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testMonitors().Resolve(tt.id)
			if tt.wantErr {
				var rerr *ResolutionError
				if !errors.As(err, &rerr) {
					t.Fatalf("expected ResolutionError, got %v", err)
				}
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected errors.Is(err, ErrNotFound)")
				}
				if rerr.Available != 3 {
					t.Fatalf("expected 3 available monitors in error, got %d", rerr.Available)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve %s: %v", tt.id, err)
			}
			if got.Name != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got.Name)
			}
		})
	}
}

func TestListResolve_EmptyEnvironment(t *testing.T) {
	_, err := List(nil).Resolve(ByIndex(0))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "0 attached") {
		t.Fatalf("expected error to mention attached count, got %v", err)
	}
}

func TestPrimary(t *testing.T) {
	h, ok := Primary(testMonitors())
	if !ok || h.Name != "HDMI-1" {
		t.Fatalf("expected HDMI-1 primary, got %+v (ok=%v)", h, ok)
	}

	noPrimary := List{{Index: 0, Name: "a"}, {Index: 1, Name: "b"}}
	h, ok = Primary(noPrimary)
	if !ok || h.Name != "a" {
		t.Fatalf("expected first monitor as fallback, got %+v", h)
	}

	if _, ok := Primary(nil); ok {
		t.Fatalf("expected no primary for empty list")
	}
}

func TestIdentOf_ResolvesBack(t *testing.T) {
	mons := testMonitors()
	for _, h := range mons {
		got, err := mons.Resolve(IdentOf(h))
		if err != nil {
			t.Fatalf("resolve %s: %v", h.Name, err)
		}
		if got != h {
			t.Fatalf("expected %+v, got %+v", h, got)
		}
	}
}

func TestIdentYAML_Forms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Ident
	}{
		{"index", "1", ByIndex(1)},
		{"name", `"HDMI-1"`, ByName("HDMI-1")},
		{"bare name", "DP-2", ByName("DP-2")},
		{"quoted number is a name", `"3"`, ByName("3")},
		{"mapping", "{index: 2, name: DP-2}", Ident{Index: intPtr(2), Name: "DP-2"}},
		{"mapping name only", "{name: DP-2}", ByName("DP-2")},
		{"hex index", "0x1", ByIndex(1)},
		{"padded name kept verbatim", `" DP-1 "`, ByName(" DP-1 ")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Ident
			if err := yaml.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal %q: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestIdentYAML_Invalid(t *testing.T) {
	for _, in := range []string{"-1", "1.5", "true", `""`, "[1, 2]", "{}", "{index: x}", "{monitor: 1}", `{name: ""}`} {
		var got Ident
		if err := yaml.Unmarshal([]byte(in), &got); err == nil {
			t.Errorf("expected error for %q, got %s", in, got)
		}
	}
}

func TestIdentYAML_RoundTrip(t *testing.T) {
	for _, id := range []Ident{ByIndex(0), ByName("HDMI-1"), ByName("42"), ByName(" DP-1 "), {Index: intPtr(3), Name: "DP-3"}, {Index: intPtr(1), Name: "HDMI-1 "}} {
		data, err := yaml.Marshal(id)
		if err != nil {
			t.Fatalf("marshal %s: %v", id, err)
		}
		var got Ident
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal %q: %v", data, err)
		}
		if !reflect.DeepEqual(got, id) {
			t.Fatalf("round trip %s via %q gave %s", id, data, got)
		}
	}
}

func TestIdentJSON(t *testing.T) {
	data, err := ByIndex(4).MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "4" {
		t.Fatalf("expected 4, got %s", data)
	}
	data, err = Ident{Index: intPtr(1), Name: "DP-1"}.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"index":1,"name":"DP-1"}` {
		t.Fatalf("unexpected json %s", data)
	}
}

func intPtr(n int) *int { return &n }
