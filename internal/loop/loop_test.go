package loop

import "testing"

func TestClampTermSize(t *testing.T) {
	cases := []struct {
		name                   string
		termW, termH           int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"small terminal untouched", 80, 24, 80, 24, 0, 0},
		{"exact cap", maxTermWidth, maxTermHeight, maxTermWidth, maxTermHeight, 0, 0},
		{"wide terminal centered", maxTermWidth + 40, 24, maxTermWidth, 24, 20, 0},
		{"tall terminal centered", 80, maxTermHeight + 10, 80, maxTermHeight, 0, 5},
		{"both clamped", 400, 200, maxTermWidth, maxTermHeight, (400 - maxTermWidth) / 2, (200 - maxTermHeight) / 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h, oc, or := clampTermSize(tc.termW, tc.termH)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("render size = %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
			if oc != tc.wantOffCol || or != tc.wantOffRow {
				t.Errorf("offsets = %d,%d, want %d,%d", oc, or, tc.wantOffCol, tc.wantOffRow)
			}
		})
	}
}
