package chartmath

import (
	"math"
	"testing"
)

func TestNiceBounds_Policies(t *testing.T) {
	tests := []struct {
		name           string
		min, max       float64
		policy         PaddingPolicy
		expectMin      float64
		expectMax      float64
		expectInterval float64
	}{
		{"none keeps exact bounds", 3, 95, PaddingNone, 3, 95, 20},
		{"normal rounds to interval multiples", 3, 95, PaddingNormal, 0, 100, 20},
		{"additional adds one interval each side", 3, 95, PaddingAdditional, -20, 120, 20},
		{"normal negative floor", -12, 95, PaddingNormal, -20, 100, 20},
		{"round snaps to nice family", 3, 95, PaddingRound, 0, 100, 20},
		{"round widens odd bounds", 130, 1900, PaddingRound, 0, 2000, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NiceBounds(tt.min, tt.max, 5, tt.policy, 0)
			if !approxEqual(b.Min, tt.expectMin, 1e-9) {
				t.Errorf("Min = %v, want %v", b.Min, tt.expectMin)
			}
			if !approxEqual(b.Max, tt.expectMax, 1e-9) {
				t.Errorf("Max = %v, want %v", b.Max, tt.expectMax)
			}
			if !approxEqual(b.Interval, tt.expectInterval, 1e-9) {
				t.Errorf("Interval = %v, want %v", b.Interval, tt.expectInterval)
			}
		})
	}
}

func TestNiceBounds_Containment(t *testing.T) {
	// Every policy except PaddingNone must contain the data range.
	policies := []PaddingPolicy{PaddingNormal, PaddingRound, PaddingAdditional, PaddingAuto}
	ranges := []struct {
		name     string
		min, max float64
	}{
		{"small positive", 3, 95},
		{"negative", -42, -3},
		{"spanning zero", -17, 23},
		{"wide", 120, 98000},
		{"fractional", 0.013, 0.094},
	}

	for _, p := range policies {
		for _, r := range ranges {
			t.Run(p.String()+"/"+r.name, func(t *testing.T) {
				b := NiceBounds(r.min, r.max, 5, p, 0)
				if b.Min > r.min+1e-9 {
					t.Errorf("Min = %v exceeds dataMin %v", b.Min, r.min)
				}
				if b.Max < r.max-1e-9 {
					t.Errorf("Max = %v below dataMax %v", b.Max, r.max)
				}
				if b.Interval <= 0 {
					t.Errorf("Interval = %v, want > 0", b.Interval)
				}
				if b.Min >= b.Max {
					t.Errorf("Min %v >= Max %v", b.Min, b.Max)
				}
			})
		}
	}
}

func TestNiceBounds_Auto(t *testing.T) {
	t.Run("wide range uses round bounds", func(t *testing.T) {
		b := NiceBounds(130, 9700, 5, PaddingAuto, 0)
		if b.Min != NiceFloor(b.Min) && b.Min != 0 {
			t.Errorf("Min = %v, want a nice round number", b.Min)
		}
		if b.Max != NiceCeil(b.Max) {
			t.Errorf("Max = %v, want a nice round number", b.Max)
		}
	})
	t.Run("non-negative data anchors at zero", func(t *testing.T) {
		b := NiceBounds(37, 95, 5, PaddingAuto, 0)
		if b.Min != 0 {
			t.Errorf("Min = %v, want 0", b.Min)
		}
	})
	t.Run("negative data keeps negative floor", func(t *testing.T) {
		b := NiceBounds(-37, 95, 5, PaddingAuto, 0)
		if b.Min > -37 {
			t.Errorf("Min = %v, want <= -37", b.Min)
		}
	})
}

func TestNiceBounds_ZeroRange(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"zero", 0},
		{"small", 0.4},
		{"medium", 42},
		{"large", 3e6},
		{"negative", -42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NiceBounds(tt.v, tt.v, 5, PaddingNormal, 0)
			if b.Min >= b.Max {
				t.Fatalf("zero-range bounds degenerate: Min %v >= Max %v", b.Min, b.Max)
			}
			if b.Interval <= 0 {
				t.Errorf("Interval = %v, want > 0", b.Interval)
			}
			if tt.v < b.Min || tt.v > b.Max {
				t.Errorf("value %v outside bounds [%v, %v]", tt.v, b.Min, b.Max)
			}
		})
	}
}

func TestNiceBounds_ExplicitInterval(t *testing.T) {
	b := NiceBounds(0, 95, 5, PaddingNormal, 25)
	if b.Interval != 25 {
		t.Fatalf("Interval = %v, want explicit 25", b.Interval)
	}
	if b.Max != 100 {
		t.Errorf("Max = %v, want 100", b.Max)
	}
}

func TestNiceBounds_DecimalPlaces(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		expect   int
	}{
		{"integer interval", 20, 0},
		{"tenths", 0.2, 1},
		{"hundredths", 0.05, 2},
		{"capped at six", 1e-9, 6},
		{"fractional above one", 2.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decimalPlacesFor(tt.interval); got != tt.expect {
				t.Errorf("decimalPlacesFor(%v) = %d, want %d", tt.interval, got, tt.expect)
			}
		})
	}
}

func TestNiceBounds_CleanOutputs(t *testing.T) {
	// 0.1 steps are the classic source of 0.30000000000000004 artifacts.
	b := NiceBounds(0.05, 0.68, 7, PaddingNormal, 0)
	for _, tick := range Ticks(b) {
		cleaned := roundToPrecision(tick, b.Interval)
		if tick != cleaned {
			t.Errorf("tick %v not cleaned (want %v)", tick, cleaned)
		}
	}
}

func TestTicks(t *testing.T) {
	t.Run("covers min to max inclusive", func(t *testing.T) {
		ticks := Ticks(AxisBounds{Min: 0, Max: 100, Interval: 20, DecimalPlaces: 0})
		want := []float64{0, 20, 40, 60, 80, 100}
		if len(ticks) != len(want) {
			t.Fatalf("got %d ticks %v, want %d", len(ticks), ticks, len(want))
		}
		for i := range want {
			if ticks[i] != want[i] {
				t.Errorf("tick[%d] = %v, want %v", i, ticks[i], want[i])
			}
		}
	})
	t.Run("fractional interval stays clean", func(t *testing.T) {
		ticks := Ticks(AxisBounds{Min: 0, Max: 1, Interval: 0.1, DecimalPlaces: 1})
		if len(ticks) != 11 {
			t.Fatalf("got %d ticks %v, want 11", len(ticks), ticks)
		}
		if ticks[3] != 0.3 {
			t.Errorf("tick[3] = %v, want exactly 0.3", ticks[3])
		}
	})
	t.Run("invalid bounds yield nil", func(t *testing.T) {
		if ticks := Ticks(AxisBounds{Min: 0, Max: 10, Interval: 0}); ticks != nil {
			t.Errorf("got %v, want nil", ticks)
		}
	})
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		places int
		expect string
	}{
		{"integer", 20, 0, "20"},
		{"one decimal", 0.3, 1, "0.3"},
		{"noise suppressed", 0.1 + 0.2, 1, "0.3"},
		{"negative places clamped", 7, -1, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTick(tt.v, tt.places); got != tt.expect {
				t.Errorf("FormatTick(%v, %d) = %q, want %q", tt.v, tt.places, got, tt.expect)
			}
		})
	}
}

func TestRoundToPrecision(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		interval float64
		expect   float64
	}{
		{"integer interval truncates noise", 100.00000000000001, 20, 100},
		{"tenths", 0.30000000000000004, 0.1, 0.3},
		{"value preserved", 0.25, 0.05, 0.25},
		{"nan passes through", math.NaN(), 0.1, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundToPrecision(tt.v, tt.interval)
			if math.IsNaN(tt.expect) {
				if !math.IsNaN(got) {
					t.Errorf("roundToPrecision(%v, %v) = %v, want NaN", tt.v, tt.interval, got)
				}
				return
			}
			if got != tt.expect {
				t.Errorf("roundToPrecision(%v, %v) = %v, want %v", tt.v, tt.interval, got, tt.expect)
			}
		})
	}
}
