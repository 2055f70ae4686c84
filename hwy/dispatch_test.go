package hwy

import "testing"

func TestDispatchLevel(t *testing.T) {
	if CurrentWidth() < scalarWidth {
		t.Errorf("CurrentWidth() = %d, want >= %d", CurrentWidth(), scalarWidth)
	}
	if CurrentName() == "unknown" {
		t.Errorf("CurrentName() = %q for level %d", CurrentName(), CurrentLevel())
	}
	if NoSimdEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("HWY_NO_SIMD is set but level is %v", CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestMaxLanes(t *testing.T) {
	w := CurrentWidth()
	if got := MaxLanes[float32](); got != w/4 {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, w/4)
	}
	if got := MaxLanes[float64](); got != w/8 {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, w/8)
	}
	if got := MaxLanes[uint8](); got != w {
		t.Errorf("MaxLanes[uint8]() = %d, want %d", got, w)
	}
}

func TestDispatchLevelString(t *testing.T) {
	levels := map[DispatchLevel]string{
		DispatchScalar: "scalar",
		DispatchSSE2:   "sse2",
		DispatchAVX2:   "avx2",
		DispatchAVX512: "avx512",
		DispatchNEON:   "neon",
	}
	for level, want := range levels {
		if got := level.String(); got != want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
	if got := DispatchLevel(99).String(); got != "unknown" {
		t.Errorf("DispatchLevel(99).String() = %q, want unknown", got)
	}
}
