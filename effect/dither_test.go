package effect

import "testing"

func TestPatternTablesArePermutations(t *testing.T) {
	for p := Pattern(0); p < PatternCount; p++ {
		m, n := p.Matrix()
		if len(m) != n*n {
			t.Fatalf("%v: table has %d entries, want %d", p, len(m), n*n)
		}
		seen := make(map[uint8]bool)
		for _, v := range m {
			if int(v) >= n*n {
				t.Errorf("%v: value %d out of range", p, v)
			}
			if seen[v] {
				t.Errorf("%v: value %d repeated", p, v)
			}
			seen[v] = true
		}
	}
}

func TestPatternNames(t *testing.T) {
	for p := Pattern(0); p < PatternCount; p++ {
		parsed, err := ParsePattern(p.String())
		if err != nil {
			t.Fatalf("ParsePattern(%q): %v", p.String(), err)
		}
		if parsed != p {
			t.Errorf("ParsePattern(%q) = %v", p.String(), parsed)
		}
	}
	if _, err := ParsePattern("floyd"); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestThresholdCellsAndPeriod(t *testing.T) {
	const pixelSize = 3

	for p := Pattern(0); p < PatternCount; p++ {
		_, n := p.Matrix()
		period := pixelSize * n

		for y := 0; y < period; y++ {
			for x := 0; x < period; x++ {
				th := Threshold(p, x, y, pixelSize)
				if th < 0 || th >= 1 {
					t.Fatalf("%v: threshold %v at (%d,%d) out of [0,1)", p, th, x, y)
				}
				if got := Threshold(p, x+period, y+period*2, pixelSize); got != th {
					t.Fatalf("%v: threshold not periodic at (%d,%d)", p, x, y)
				}
				cellX, cellY := x-x%pixelSize, y-y%pixelSize
				if got := Threshold(p, cellX, cellY, pixelSize); got != th {
					t.Fatalf("%v: pixels of one cell disagree at (%d,%d)", p, x, y)
				}
			}
		}
	}
}

func TestThresholdBayer4Table(t *testing.T) {
	// first row and column of the classic 4x4 matrix, over 16
	cases := []struct {
		x, y int
		want float64
	}{
		{0, 0, 0},
		{1, 0, 8.0 / 16},
		{2, 0, 2.0 / 16},
		{3, 0, 10.0 / 16},
		{0, 1, 12.0 / 16},
		{0, 2, 3.0 / 16},
		{0, 3, 15.0 / 16},
		{3, 3, 5.0 / 16},
	}
	for _, c := range cases {
		if got := Threshold(PatternBayer4, c.x, c.y, 1); got != c.want {
			t.Errorf("Threshold(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestQuantize(t *testing.T) {
	cases := []struct {
		name      string
		luma      float64
		threshold float64
		spread    float64
		levels    int
		want      int
	}{
		{"black stays black", 0, 0.9375, 0.6, 3, 0},
		{"white stays white", 1, 0, 0.6, 3, 2},
		{"mid gray without spread", 0.5, 0, 0, 3, 1},
		{"low threshold pulls down", 0.4, 0, 0.6, 3, 0},
		{"high threshold pushes up", 0.4, 0.9375, 0.6, 3, 1},
		{"two levels", 0.6, 0.5, 0.6, 2, 1},
		{"single level", 0.9, 0.5, 0.6, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Quantize(c.luma, c.threshold, c.spread, c.levels); got != c.want {
				t.Errorf("Quantize = %d, want %d", got, c.want)
			}
		})
	}
}

func TestApplyContrast(t *testing.T) {
	if got := ApplyContrast(0.3, 1); got != 0.3 {
		t.Errorf("identity contrast changed luma to %v", got)
	}
	if got := ApplyContrast(0.5, 3); got != 0.5 {
		t.Errorf("mid gray moved to %v", got)
	}
	if got := ApplyContrast(0.9, 4); got != 1 {
		t.Errorf("expected clamp to 1, got %v", got)
	}
}
