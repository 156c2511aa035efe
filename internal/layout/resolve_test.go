package layout

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/yourusername/gigarandr/internal/logging"
	"github.com/yourusername/gigarandr/internal/types"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logging.Logger
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.Logger = prev })
	return &buf
}

func dockedInventory() []types.Monitor {
	return []types.Monitor{
		{Name: "eDP-1", Width: 1920, Height: 1080},
		{Name: "HDMI-1", Width: 2560, Height: 1440},
		{Name: "DP-1", Width: 1280, Height: 1024},
	}
}

func TestResolve(t *testing.T) {
	monitors := dockedInventory()

	tests := []struct {
		keyword string
		want    string
		wantOK  bool
	}{
		{"laptop", "eDP-1", true},
		{"largest", "HDMI-1", true},
		{"smallest", "DP-1", true},
		{"external-1", "HDMI-1", true},
		{"external-2", "DP-1", true},
		{"external-3", "", false},
		{"external-0", "", false},
		{"external-abc", "", false},
		{"HDMI-1", "HDMI-1", true},
		{"HDMI-2", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, ok := Resolve(monitors, tt.keyword)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.keyword, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolve_NoLaptop(t *testing.T) {
	monitors := []types.Monitor{{Name: "HDMI-1", Width: 1920, Height: 1080}}
	if _, ok := Resolve(monitors, "laptop"); ok {
		t.Error("Resolve(laptop) should fail without a built-in panel")
	}
	if got, ok := Resolve(monitors, "external-1"); !ok || got != "HDMI-1" {
		t.Errorf("Resolve(external-1) = (%q, %v), want HDMI-1", got, ok)
	}
}

func TestResolve_LaptopPatterns(t *testing.T) {
	monitors := []types.Monitor{{Name: "LVDS1"}, {Name: "VGA1"}}
	if got, ok := Resolve(monitors, "laptop"); !ok || got != "LVDS1" {
		t.Errorf("Resolve(laptop) = (%q, %v), want LVDS1", got, ok)
	}

	custom := Resolver{LaptopPatterns: []string{"VGA"}}
	if got, ok := custom.Resolve(monitors, "laptop"); !ok || got != "VGA1" {
		t.Errorf("custom Resolve(laptop) = (%q, %v), want VGA1", got, ok)
	}
	if got, ok := custom.Resolve(monitors, "external-1"); !ok || got != "LVDS1" {
		t.Errorf("custom Resolve(external-1) = (%q, %v), want LVDS1", got, ok)
	}
}

func TestResolve_SizeTiesKeepFirst(t *testing.T) {
	monitors := []types.Monitor{
		{Name: "DP-1", Width: 1920, Height: 1080},
		{Name: "DP-2", Width: 1920, Height: 1080},
	}
	if got, _ := Resolve(monitors, "largest"); got != "DP-1" {
		t.Errorf("largest tie = %q, want DP-1", got)
	}
	if got, _ := Resolve(monitors, "smallest"); got != "DP-1" {
		t.Errorf("smallest tie = %q, want DP-1", got)
	}
}

func TestResolve_UnsizedMonitorsSkipped(t *testing.T) {
	monitors := []types.Monitor{
		{Name: "eDP-1", Width: 1920, Height: 1080},
		{Name: "VIRTUAL1"},
	}
	if got, _ := Resolve(monitors, "smallest"); got != "eDP-1" {
		t.Errorf("smallest = %q, want eDP-1", got)
	}
}

func TestResolve_InactiveUsesPreferredMode(t *testing.T) {
	monitors := []types.Monitor{
		{Name: "eDP-1", Width: 1920, Height: 1080},
		{Name: "DP-2", Modes: []types.Mode{{Width: 3840, Height: 2160, Preferred: true}}},
	}
	if got, _ := Resolve(monitors, "largest"); got != "DP-2" {
		t.Errorf("largest = %q, want DP-2", got)
	}
}

func TestResolve_NoSizedMonitorsWarns(t *testing.T) {
	logs := captureLogs(t)

	monitors := []types.Monitor{{Name: "VIRTUAL1"}, {Name: "VIRTUAL2"}}
	if _, ok := Resolve(monitors, "largest"); ok {
		t.Error("Resolve(largest) should fail without sized monitors")
	}
	if !strings.Contains(logs.String(), "no monitor reports a size") {
		t.Errorf("expected size warning, logs: %s", logs.String())
	}
}

func TestResolve_UnresolvedAlwaysWarns(t *testing.T) {
	for _, kw := range []string{"external-9", "external-x", "HDMI-7", "laptop"} {
		t.Run(kw, func(t *testing.T) {
			logs := captureLogs(t)
			Resolve([]types.Monitor{{Name: "HDMI-1"}}, kw)
			if !strings.Contains(logs.String(), `"level":"warn"`) {
				t.Errorf("Resolve(%q) logged no warning: %s", kw, logs.String())
			}
		})
	}
}

func randomInventory(r *rand.Rand) []types.Monitor {
	prefixes := []string{"eDP-", "HDMI-", "DP-", "LVDS-", "VGA-"}
	n := r.Intn(6)
	monitors := make([]types.Monitor, 0, n)
	for i := 0; i < n; i++ {
		m := types.Monitor{Name: fmt.Sprintf("%s%d", prefixes[r.Intn(len(prefixes))], i)}
		if r.Intn(4) > 0 {
			m.Width = 640 + r.Intn(4)*640
			m.Height = 480 + r.Intn(4)*360
		}
		monitors = append(monitors, m)
	}
	return monitors
}

func TestResolveProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	var res Resolver

	for iter := 0; iter < 500; iter++ {
		monitors := randomInventory(r)

		// laptop resolves iff some monitor matches the panel pattern
		hasLaptop := false
		for _, m := range monitors {
			if res.IsLaptop(m.Name) {
				hasLaptop = true
			}
		}
		name, ok := res.Resolve(monitors, "laptop")
		if ok != hasLaptop || (ok && !res.IsLaptop(name)) {
			t.Fatalf("laptop on %+v = (%q, %v)", monitors, name, ok)
		}

		// largest/smallest are extremal over sized monitors
		var sized []types.Monitor
		for _, m := range monitors {
			if m.Sized() {
				sized = append(sized, m)
			}
		}
		largest, okL := res.Resolve(monitors, "largest")
		smallest, okS := res.Resolve(monitors, "smallest")
		if okL != (len(sized) > 0) || okS != (len(sized) > 0) {
			t.Fatalf("largest/smallest ok mismatch on %+v", monitors)
		}
		if okL {
			la := types.FindMonitor(monitors, largest).Area()
			sa := types.FindMonitor(monitors, smallest).Area()
			for _, m := range sized {
				if la < m.Area() || sa > m.Area() {
					t.Fatalf("not extremal on %+v: largest=%s smallest=%s", monitors, largest, smallest)
				}
			}
		}

		// external-N indexes the non-laptop subsequence
		var externals []string
		for _, m := range monitors {
			if !res.IsLaptop(m.Name) {
				externals = append(externals, m.Name)
			}
		}
		for n := -1; n <= len(externals)+1; n++ {
			got, ok := res.Resolve(monitors, fmt.Sprintf("external-%d", n))
			if n <= 0 || n > len(externals) {
				if ok {
					t.Fatalf("external-%d on %+v should fail, got %q", n, monitors, got)
				}
				continue
			}
			if !ok || got != externals[n-1] {
				t.Fatalf("external-%d on %+v = (%q, %v), want %q", n, monitors, got, ok, externals[n-1])
			}
		}
	}
}
