// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 20)
	if got, want := p.Add(Pt(5, -3)), Pt(15, 17); got != want {
		t.Errorf("Add: got %v; want %v", got, want)
	}
	if got, want := p.Sub(Pt(5, -3)), Pt(5, 23); got != want {
		t.Errorf("Sub: got %v; want %v", got, want)
	}
	if got, want := p.Mul(2), Pt(20, 40); got != want {
		t.Errorf("Mul: got %v; want %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Size{Width: 100, Height: 50}.Rect(Pt(10, 20))
	for _, tc := range []struct {
		p  Point
		in bool
	}{
		{Pt(10, 20), true},
		{Pt(109, 69), true},
		{Pt(110, 69), false},
		{Pt(109, 70), false},
		{Pt(9, 20), false},
		{Pt(50, 40), true},
	} {
		if got := r.Contains(tc.p); got != tc.in {
			t.Errorf("Contains(%v): got %v; want %v", tc.p, got, tc.in)
		}
	}
}

func TestRectOffset(t *testing.T) {
	r := Size{Width: 4, Height: 4}.Rect(Pt(0, 0))
	off := r.Add(Pt(3, 7))
	if got, want := off.Min, Pt(3, 7); got != want {
		t.Errorf("Add: got min %v; want %v", got, want)
	}
	if got, want := off.Sub(Pt(3, 7)), r; got != want {
		t.Errorf("Sub did not invert Add: got %v; want %v", got, want)
	}
	if got, want := off.Size(), r.Size(); got != want {
		t.Errorf("offset changed size: got %v; want %v", got, want)
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := Size{Width: 10, Height: 10}.Rect(Pt(0, 0))
	b := Size{Width: 10, Height: 10}.Rect(Pt(5, 5))
	in := a.Intersect(b)
	if got, want := in, (Rectangle{Min: Pt(5, 5), Max: Pt(10, 10)}); got != want {
		t.Errorf("Intersect: got %v; want %v", got, want)
	}
	un := a.Union(b)
	if got, want := un, (Rectangle{Min: Pt(0, 0), Max: Pt(15, 15)}); got != want {
		t.Errorf("Union: got %v; want %v", got, want)
	}
	if !a.Intersect(Size{Width: 1, Height: 1}.Rect(Pt(20, 20))).Empty() {
		t.Error("disjoint Intersect is not empty")
	}
}
