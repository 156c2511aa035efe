package types

import "testing"

func TestMonitorSize(t *testing.T) {
	tests := []struct {
		name   string
		mon    Monitor
		wantW  int
		wantH  int
		wantOK bool
	}{
		{
			name:   "active geometry",
			mon:    Monitor{Name: "eDP-1", Width: 1920, Height: 1080},
			wantW:  1920,
			wantH:  1080,
			wantOK: true,
		},
		{
			name: "inactive uses preferred mode",
			mon: Monitor{Name: "HDMI-1", Modes: []Mode{
				{Width: 3840, Height: 2160},
				{Width: 2560, Height: 1440, Preferred: true},
			}},
			wantW:  2560,
			wantH:  1440,
			wantOK: true,
		},
		{
			name: "inactive without preferred uses first mode",
			mon: Monitor{Name: "DP-1", Modes: []Mode{
				{Width: 1280, Height: 1024},
				{Width: 1024, Height: 768},
			}},
			wantW:  1280,
			wantH:  1024,
			wantOK: true,
		},
		{
			name:   "unknown",
			mon:    Monitor{Name: "VIRTUAL1"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, ok := tt.mon.Size()
			if ok != tt.wantOK || w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = (%d, %d, %v), want (%d, %d, %v)", w, h, ok, tt.wantW, tt.wantH, tt.wantOK)
			}
		})
	}
}

func TestMonitorArea(t *testing.T) {
	m := Monitor{Width: 1920, Height: 1080}
	if got := m.Area(); got != 1920*1080 {
		t.Errorf("Area() = %d, want %d", got, 1920*1080)
	}
	if got := (Monitor{}).Area(); got != 0 {
		t.Errorf("Area() of unsized monitor = %d, want 0", got)
	}
}

func TestMonitorGeometryString(t *testing.T) {
	m := Monitor{Width: 1920, Height: 1080, X: 0, Y: 1440}
	if got := m.GeometryString(); got != "1920x1080+0+1440" {
		t.Errorf("GeometryString() = %q", got)
	}
	if got := (Monitor{}).GeometryString(); got != "-" {
		t.Errorf("GeometryString() of unsized monitor = %q, want -", got)
	}
}

func TestModeMaxRate(t *testing.T) {
	md := Mode{Width: 1920, Height: 1080, Rates: []float64{60, 144.0, 59.94}}
	if got := md.MaxRate(); got != 144 {
		t.Errorf("MaxRate() = %v, want 144", got)
	}
	if got := (Mode{}).MaxRate(); got != 0 {
		t.Errorf("MaxRate() with no rates = %v, want 0", got)
	}
}

func TestFindMonitor(t *testing.T) {
	monitors := []Monitor{{Name: "eDP-1"}, {Name: "HDMI-1"}}
	if m := FindMonitor(monitors, "HDMI-1"); m == nil || m.Name != "HDMI-1" {
		t.Errorf("FindMonitor(HDMI-1) = %v", m)
	}
	if m := FindMonitor(monitors, "DP-1"); m != nil {
		t.Errorf("FindMonitor(DP-1) = %v, want nil", m)
	}
}
