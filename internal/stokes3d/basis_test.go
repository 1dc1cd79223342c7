package stokes3d

import (
	"math"
	"testing"
)

func TestStokesBasisProperties(t *testing.T) {
	dirs := []Vector3{
		{0, 0, 1},
		{0, 0, -1},
		{1, 0, 0},
		{0.3, -0.4, 0.2},
	}
	for _, d := range dirs {
		w := d.Norm()
		b := StokesBasis(w)
		if math.Abs(b.Len()-1) > 1e-12 {
			t.Fatalf("basis not unit for w=%+v", w)
		}
		if math.Abs(b.Dot(w)) > 1e-12 {
			t.Fatalf("basis not orthogonal to w=%+v", w)
		}
		if b != StokesBasis(w) {
			t.Fatalf("basis not deterministic for w=%+v", w)
		}
	}
}

func TestRotateStokesBasisIdentity(t *testing.T) {
	w := Vector3{0, 0, 1}
	b := StokesBasis(w)
	matApproxEq(t, RotateStokesBasis(w, b, b), I4(), 1e-12, "aligning a basis with itself")
}

func TestRotateStokesBasisRightHandRule(t *testing.T) {
	// Rotating the basis from x to the diagonal is +45° seen along +z but
	// -45° seen along -z; horizontal light ends up at opposite 45° states.
	h := math.Sqrt2 / 2
	bc, bt := Vector3{1, 0, 0}, Vector3{h, h, 0}

	out := RotateStokesBasis(Vector3{0, 0, 1}, bc, bt).MulStokes(Stokes{1, 1, 0, 0})
	stokesApproxEq(t, out, Stokes{1, 0, -1, 0}, 1e-12, "+45° around +z")

	out = RotateStokesBasis(Vector3{0, 0, -1}, bc, bt).MulStokes(Stokes{1, 1, 0, 0})
	stokesApproxEq(t, out, Stokes{1, 0, 1, 0}, 1e-12, "-45° around -z")
}

func TestRotateStokesBasisDocExample(t *testing.T) {
	// Horizontal light (1,1,0,0) in basis (1,0,0) reads as +45° light in
	// basis (√2/2, -√2/2, 0).
	w := Vector3{0, 0, 1}
	h := math.Sqrt2 / 2
	R := RotateStokesBasis(w, Vector3{1, 0, 0}, Vector3{h, -h, 0})
	out := R.MulStokes(Stokes{1, 1, 0, 0})
	stokesApproxEq(t, out, Stokes{1, 0, 1, 0}, 1e-12, "doc example")
}

func TestRotateMuellerBasisCollinearRoundTrip(t *testing.T) {
	w := Vector3{0, 0, 1}
	b1 := Vector3{1, 0, 0}
	b2 := Vector3{math.Cos(0.7), math.Sin(0.7), 0}

	M := RotatedElement(0.3, Diattenuator(0.8, 0.2))
	there := RotateMuellerBasisCollinear(M, w, b1, b2)
	back := RotateMuellerBasisCollinear(there, w, b2, b1)
	matApproxEq(t, back, M, 1e-12, "b1→b2→b1 round trip")
}

func TestRotateMuellerBasisMatchesCollinear(t *testing.T) {
	w := Vector3{0.3, -0.4, 0.2}.Norm()
	b1 := StokesBasis(w)
	theta := Real(0.9)
	// rotate b1 around w by theta
	_, t2 := coordinateSystem(w)
	b2 := b1.Mul(math.Cos(theta)).Add(t2.Mul(math.Sin(theta)))

	M := LinearRetarder(math.Pi / 3)
	got := RotateMuellerBasis(M, w, b1, b2, w, b1, b2)
	want := RotateMuellerBasisCollinear(M, w, b1, b2)
	matApproxEq(t, got, want, 1e-12, "same forward on both sides")
}

func TestRotateMuellerBasisIndependentSides(t *testing.T) {
	// Rotate only the output frame: R_out · M · I
	w := Vector3{0, 0, 1}
	b1 := Vector3{1, 0, 0}
	b2 := Vector3{0, 1, 0}

	M := LinearPolarizer(1)
	got := RotateMuellerBasis(M, w, b1, b1, w, b1, b2)
	want := RotateStokesBasis(w, b1, b2).Mul(M)
	matApproxEq(t, got, want, 1e-12, "output-side-only rotation")
}
