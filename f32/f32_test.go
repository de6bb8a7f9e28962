// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestWithin(t *testing.T) {
	for _, tc := range []struct {
		label string
		p, p2 Point
		d     float32
		want  bool
	}{
		{label: "same point", p: Pt(0, 0), p2: Pt(0, 0), d: 0, want: true},
		{label: "inside on both axes", p: Pt(2, 1), p2: Pt(0, 0), d: 5, want: true},
		{label: "exactly at the edge", p: Pt(5, 0), p2: Pt(0, 0), d: 5, want: true},
		{label: "outside on x", p: Pt(6, 0), p2: Pt(0, 0), d: 5, want: false},
		{label: "outside on y", p: Pt(0, -6), p2: Pt(0, 0), d: 5, want: false},
		{label: "negative offsets", p: Pt(-3, -4), p2: Pt(0, 0), d: 5, want: true},
	} {
		t.Run(tc.label, func(t *testing.T) {
			if got := tc.p.Within(tc.p2, tc.d); got != tc.want {
				t.Errorf("%v.Within(%v, %g) = %v, want %v", tc.p, tc.p2, tc.d, got, tc.want)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(3, 4)); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4,6)", got)
	}
	if got := Pt(3, 4).Sub(Pt(1, 2)); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2,2)", got)
	}
	if got := Pt(1, 2).Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul = %v, want (2,4)", got)
	}
}
