package zoomview

import "testing"

func TestBaseMatrix(t *testing.T) {
	tests := []struct {
		name               string
		st                 ScaleType
		contentW, contentH float64
		want               Matrix
	}{
		{"fitCenter pillarboxes", ScaleFitCenter, 100, 100, Matrix{A: 1, C: 50, E: 1, F: 0}},
		{"fitCenter scales up", ScaleFitCenter, 50, 50, Matrix{A: 2, C: 0, E: 2, F: 0}},
		{"center keeps intrinsic size", ScaleCenter, 50, 50, Matrix{A: 1, C: 75, E: 1, F: 25}},
		{"centerCrop covers", ScaleCenterCrop, 100, 100, Matrix{A: 2, C: 0, E: 2, F: -50}},
		{"centerInside never scales up", ScaleCenterInside, 50, 50, Matrix{A: 1, C: 75, E: 1, F: 25}},
		{"centerInside scales down", ScaleCenterInside, 400, 200, Matrix{A: 0.5, C: 0, E: 0.5, F: 0}},
		{"fitXY stretches", ScaleFitXY, 100, 100, Matrix{A: 2, C: 0, E: 1, F: 0}},
		{"empty content", ScaleFitCenter, 0, 0, Identity()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := baseMatrix(tt.st, 200, 100, tt.contentW, tt.contentH)
			if got != tt.want {
				t.Errorf("baseMatrix() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseScaleType(t *testing.T) {
	tests := []struct {
		in   string
		want ScaleType
	}{
		{"fitCenter", ScaleFitCenter},
		{"center", ScaleCenter},
		{"CenterCrop", ScaleCenterCrop},
		{"centerinside", ScaleCenterInside},
		{" fitXY ", ScaleFitXY},
		{"bogus", ScaleFitCenter},
	}
	for _, tt := range tests {
		if got := ParseScaleType(tt.in); got != tt.want {
			t.Errorf("ParseScaleType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScaleTypeStringRoundTrip(t *testing.T) {
	types := []ScaleType{ScaleFitCenter, ScaleCenter, ScaleCenterCrop, ScaleCenterInside, ScaleFitXY}
	for _, st := range types {
		if ParseScaleType(st.String()) != st {
			t.Errorf("%v does not round-trip through its name", st)
		}
	}
}
