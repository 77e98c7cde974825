package cover

import (
	"math"
	"testing"

	"github.com/user/captionframe/pkg/pipeline"
)

const eps = 1e-9

func TestFit(t *testing.T) {
	tests := []struct {
		name     string
		frameW   int
		frameH   int
		bmpW     int
		bmpH     int
		expected pipeline.CoverRect
	}{
		{
			name:   "landscape photo into portrait frame",
			frameW: 1080, frameH: 1350,
			bmpW: 4000, bmpH: 3000,
			expected: pipeline.CoverRect{DrawWidth: 1800, DrawHeight: 1350, BaseX: -360, BaseY: 0},
		},
		{
			name:   "tall photo into square frame",
			frameW: 1080, frameH: 1080,
			bmpW: 1000, bmpH: 2000,
			expected: pipeline.CoverRect{DrawWidth: 1080, DrawHeight: 2160, BaseX: 0, BaseY: -540},
		},
		{
			name:   "same aspect ratio",
			frameW: 1080, frameH: 1920,
			bmpW: 540, bmpH: 960,
			expected: pipeline.CoverRect{DrawWidth: 1080, DrawHeight: 1920, BaseX: 0, BaseY: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.frameW, tt.frameH, tt.bmpW, tt.bmpH)
			if math.Abs(got.DrawWidth-tt.expected.DrawWidth) > eps ||
				math.Abs(got.DrawHeight-tt.expected.DrawHeight) > eps ||
				math.Abs(got.BaseX-tt.expected.BaseX) > eps ||
				math.Abs(got.BaseY-tt.expected.BaseY) > eps {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestFit_AlwaysCovers(t *testing.T) {
	frames := pipeline.FramePresets()
	sizes := [][2]int{{1, 1}, {640, 480}, {480, 640}, {3000, 10}, {10, 3000}, {1080, 1350}, {1234, 987}}

	for _, f := range frames {
		for _, s := range sizes {
			rect := Fit(f.Width, f.Height, s[0], s[1])
			if rect.DrawWidth < float64(f.Width)-eps {
				t.Errorf("%s %dx%d: draw width %f < frame width %d", f.Key, s[0], s[1], rect.DrawWidth, f.Width)
			}
			if rect.DrawHeight < float64(f.Height)-eps {
				t.Errorf("%s %dx%d: draw height %f < frame height %d", f.Key, s[0], s[1], rect.DrawHeight, f.Height)
			}
			exactW := math.Abs(rect.DrawWidth-float64(f.Width)) < eps
			exactH := math.Abs(rect.DrawHeight-float64(f.Height)) < eps
			if !exactW && !exactH {
				t.Errorf("%s %dx%d: expected one axis to match the frame, got %+v", f.Key, s[0], s[1], rect)
			}
			// Aspect ratio preserved
			want := float64(s[0]) / float64(s[1])
			if got := rect.DrawWidth / rect.DrawHeight; math.Abs(got-want) > 1e-6 {
				t.Errorf("%s %dx%d: aspect %f, want %f", f.Key, s[0], s[1], got, want)
			}
		}
	}
}

func TestClamp_KeepsFrameCovered(t *testing.T) {
	offsets := []pipeline.PanOffset{
		{X: 0, Y: 0},
		{X: 10000, Y: 10000},
		{X: -10000, Y: -10000},
		{X: 1e12, Y: -1e12},
		{X: -37.5, Y: 12.25},
		{X: math.NaN(), Y: 5},
	}
	sizes := [][2]int{{4000, 3000}, {3000, 4000}, {1080, 1350}, {200, 5000}}

	for _, f := range pipeline.FramePresets() {
		for _, s := range sizes {
			rect := Fit(f.Width, f.Height, s[0], s[1])
			for _, off := range offsets {
				c := Clamp(off, f.Width, f.Height, s[0], s[1])
				x, y := Origin(rect, c)
				if x > eps || y > eps {
					t.Errorf("%s %v offset %+v: origin (%f,%f) leaves a gap top/left", f.Key, s, off, x, y)
				}
				if x+rect.DrawWidth < float64(f.Width)-eps || y+rect.DrawHeight < float64(f.Height)-eps {
					t.Errorf("%s %v offset %+v: far edge (%f,%f) leaves a gap bottom/right",
						f.Key, s, off, x+rect.DrawWidth, y+rect.DrawHeight)
				}
			}
		}
	}
}

func TestClamp_InRangeUnchanged(t *testing.T) {
	// 4000x3000 into 1080x1350: 720px of horizontal slack, centered.
	off := pipeline.PanOffset{X: -200, Y: 0}
	got := Clamp(off, 1080, 1350, 4000, 3000)
	if got != off {
		t.Errorf("expected %+v, got %+v", off, got)
	}
}

func TestClamp_HugeDeltaIsFullyClamped(t *testing.T) {
	got := Clamp(pipeline.PanOffset{X: 10000, Y: 10000}, 1080, 1350, 4000, 3000)
	want := pipeline.PanOffset{X: 360, Y: 0}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	got = Clamp(pipeline.PanOffset{X: -10000, Y: -10000}, 1080, 1350, 4000, 3000)
	want = pipeline.PanOffset{X: -360, Y: 0}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestBounds(t *testing.T) {
	rect := Fit(1080, 1080, 1000, 2000)
	lo, hi := Bounds(1080, 1080, rect)
	if lo.X != 0 || hi.X != 0 {
		t.Errorf("expected no horizontal slack, got [%f, %f]", lo.X, hi.X)
	}
	if lo.Y != -540 || hi.Y != 540 {
		t.Errorf("expected vertical range [-540, 540], got [%f, %f]", lo.Y, hi.Y)
	}
}
