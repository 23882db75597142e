package cmd

import (
	"testing"

	"github.com/marcus/overlay/pkg/overlay"
)

func TestParseRect(t *testing.T) {
	tests := []struct {
		input   string
		want    overlay.Rect
		wantErr bool
	}{
		{"10,10,50,20", overlay.Rect{X: 10, Y: 10, W: 50, H: 20}, false},
		{" 0, 0, 400, 300 ", overlay.Rect{W: 400, H: 300}, false},
		{"-5,2,10,3", overlay.Rect{X: -5, Y: 2, W: 10, H: 3}, false},
		{"1,2,3", overlay.Rect{}, true},
		{"a,b,c,d", overlay.Rect{}, true},
		{"", overlay.Rect{}, true},
	}

	for _, tt := range tests {
		got, err := parseRect(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRect(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRect(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRect(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	got, err := parseSize("20,12")
	if err != nil {
		t.Fatalf("parseSize error: %v", err)
	}
	if got != (overlay.Size{W: 20, H: 12}) {
		t.Errorf("parseSize = %+v, want {20 12}", got)
	}

	if _, err := parseSize("20"); err == nil {
		t.Error("parseSize(\"20\") should fail")
	}
}

func TestPlacementFlag(t *testing.T) {
	var f placementFlag
	if err := f.Set("bottom-end"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if overlay.Placement(f) != overlay.PlacementBottomEnd {
		t.Errorf("Set(\"bottom-end\") = %s", f.String())
	}
	if err := f.Set("diagonal"); err == nil {
		t.Error("Set(\"diagonal\") should fail")
	}
}

func TestResolveViewportFlag(t *testing.T) {
	got, err := resolveViewport("0,0,400,300")
	if err != nil {
		t.Fatalf("resolveViewport error: %v", err)
	}
	if got != (overlay.Rect{W: 400, H: 300}) {
		t.Errorf("resolveViewport = %+v, want {0 0 400 300}", got)
	}
}
