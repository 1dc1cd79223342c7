package stokes3d

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestFresnelNormalIncidence(t *testing.T) {
	aS, aP, cosThetaT, etaIT, etaTI := fresnelPolarized(1, 1.5)
	// (1-eta)/(1+eta) = -0.2 for both polarizations at normal incidence
	if math.Abs(real(aS)+0.2) > 1e-12 || imag(aS) != 0 {
		t.Fatalf("aS at normal incidence: %v", aS)
	}
	if math.Abs(real(aP)+0.2) > 1e-12 || imag(aP) != 0 {
		t.Fatalf("aP at normal incidence: %v", aP)
	}
	if cosThetaT != -1 {
		t.Fatalf("cosThetaT should be -1 (sign flips across the interface): %g", cosThetaT)
	}
	if etaIT != 1.5 || math.Abs(etaTI-1/1.5) > 1e-15 {
		t.Fatalf("index ratios wrong: etaIT=%g etaTI=%g", etaIT, etaTI)
	}
}

func TestFresnelIndexMatched(t *testing.T) {
	aS, aP, _, _, _ := fresnelPolarized(0.7, 1)
	if aS != 0 || aP != 0 {
		t.Fatalf("index-matched interface must not reflect: aS=%v aP=%v", aS, aP)
	}
}

func TestFresnelTotalInternalReflection(t *testing.T) {
	// From inside glass at 78.5°: well past the ~41.8° critical angle.
	aS, aP, cosThetaT, _, _ := fresnelPolarized(-0.2, 1.5)
	if math.Abs(cmplx.Abs(aS)-1) > 1e-12 {
		t.Fatalf("|aS| under TIR: %.12g", cmplx.Abs(aS))
	}
	if math.Abs(cmplx.Abs(aP)-1) > 1e-12 {
		t.Fatalf("|aP| under TIR: %.12g", cmplx.Abs(aP))
	}
	if cosThetaT != 0 {
		t.Fatalf("no transmitted ray under TIR, cosThetaT=%g", cosThetaT)
	}
}

func TestFresnelBrewster(t *testing.T) {
	// tan θB = eta; parallel reflection vanishes at Brewster's angle.
	eta := Real(1.5)
	thetaB := math.Atan(eta)
	_, aP, _, _, _ := fresnelPolarized(math.Cos(thetaB), eta)
	if cmplx.Abs(aP) > 1e-9 {
		t.Fatalf("aP at Brewster's angle: %v", aP)
	}
}

func TestFresnelComplexMatchesRealEta(t *testing.T) {
	for _, ci := range []Real{1, 0.9, 0.7, 0.5, 0.55470019622523} {
		aS1, aP1, _, _, _ := fresnelPolarized(ci, 1.5)
		aS2, aP2 := fresnelPolarizedComplex(ci, complex(1.5, 0))
		if cmplx.Abs(aS1-aS2) > 1e-12 || cmplx.Abs(aP1-aP2) > 1e-12 {
			t.Fatalf("complex/real mismatch at cosθ=%g: (%v,%v) vs (%v,%v)", ci, aS1, aP1, aS2, aP2)
		}
	}
}

func TestFresnelConductor(t *testing.T) {
	// gold-ish index at 600nm
	aS, aP := fresnelPolarizedComplex(0.7, complex(0.2, 3.0))
	rS, rP := normSqr(aS), normSqr(aP)
	if rS <= 0 || rS > 1 || rP <= 0 || rP > 1 {
		t.Fatalf("conductor reflectance out of range: rS=%g rP=%g", rS, rP)
	}
	if rS < rP {
		t.Fatalf("s-reflectance should dominate off-normal: rS=%g rP=%g", rS, rP)
	}
}

func TestSincosArgDiff(t *testing.T) {
	cases := [][2]Real{{0.3, -0.2}, {2.5, -2.9}, {3.0, -3.0}, {1.0, 1.0}}
	for _, c := range cases {
		a := cmplx.Rect(1.3, c[0])
		b := cmplx.Rect(0.4, c[1])
		sinD, cosD := sincosArgDiff(a, b)
		wantSin, wantCos := math.Sincos(c[0] - c[1])
		// compare on the unit circle; arg differences can wrap by 2π
		if math.Abs(sinD-wantSin) > 1e-12 || math.Abs(cosD-wantCos) > 1e-12 {
			t.Fatalf("arg diff for (%g,%g): got (%.12g,%.12g) want (%.12g,%.12g)",
				c[0], c[1], sinD, cosD, wantSin, wantCos)
		}
	}

	// undefined phase at zero amplitude collapses to (0,0)
	sinD, cosD := sincosArgDiff(0, complex(1, 2))
	if sinD != 0 || cosD != 0 {
		t.Fatalf("zero amplitude must give (0,0): (%g,%g)", sinD, cosD)
	}
}
