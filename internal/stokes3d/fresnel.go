package stokes3d

import (
	"math"
	"math/cmplx"
)

// fresnelPolarized computes the polarized Fresnel reflection amplitudes at
// an interface between two dielectrics with relative refractive index eta.
// cosThetaI is the cosine of the angle between surface normal and incident
// ray; a negative value means the ray arrives from inside the medium. For
// real eta a value greater than 1 means the normal points into the region of
// lower density.
//
// Returns the complex amplitudes aS (perpendicular) and aP (parallel), the
// cosine of the transmitted angle (sign opposite to cosThetaI, 0 under total
// internal reflection) and the directional index ratios etaIT and etaTI.
// Under total internal reflection the amplitudes become complex with unit
// magnitude, carrying the reflection phase shift.
func fresnelPolarized(cosThetaI, eta Real) (aS, aP complex128, cosThetaT, etaIT, etaTI Real) {
	etaIT, etaTI = eta, 1/eta
	if cosThetaI < 0 {
		etaIT, etaTI = etaTI, etaIT
	}

	// Snell's law: squared cosine of the transmitted angle. A negative value
	// signals total internal reflection.
	cosThetaTSqr := 1 - etaTI*etaTI*(1-cosThetaI*cosThetaI)

	cosThetaIAbs := math.Abs(cosThetaI)
	cosThetaTAbs := math.Sqrt(math.Max(cosThetaTSqr, 0))

	switch {
	case eta == 1:
		aS, aP = 0, 0
	case cosThetaIAbs == 0:
		aS, aP = -1, -1
	default:
		ct := complex(cosThetaTAbs, 0)
		if cosThetaTSqr < 0 {
			ct = complex(0, math.Sqrt(-cosThetaTSqr))
		}
		ci := complex(cosThetaIAbs, 0)
		e := complex(etaIT, 0)
		aS = (ci - e*ct) / (ci + e*ct)
		aP = (ct - e*ci) / (ct + e*ci)
	}

	cosThetaT = -math.Copysign(cosThetaTAbs, cosThetaI)
	return
}

// fresnelPolarizedComplex is the conductor variant of fresnelPolarized: eta
// may carry an imaginary part (the absorption coefficient). Only the
// reflection amplitudes are meaningful here; a conductor has no transmitted
// ray to speak of.
func fresnelPolarizedComplex(cosThetaI Real, eta complex128) (aS, aP complex128) {
	etaIT, etaTI := eta, 1/eta
	if cosThetaI < 0 {
		etaIT, etaTI = etaTI, etaIT
	}

	cosThetaIAbs := math.Abs(cosThetaI)
	// Complex Snell cosine; the principal square root picks the physically
	// decaying wave inside the conductor.
	ct := cmplx.Sqrt(1 - etaTI*etaTI*complex(1-cosThetaI*cosThetaI, 0))
	ci := complex(cosThetaIAbs, 0)

	if eta == 1 {
		return 0, 0
	}
	if cosThetaIAbs == 0 {
		return -1, -1
	}
	aS = (ci - etaIT*ct) / (ci + etaIT*ct)
	aP = (ct - etaIT*ci) / (ct + etaIT*ci)
	return
}

// sincosArgDiff returns the sine and cosine of arg(a) - arg(b), computed
// from a·conj(b) normalized by its modulus rather than by subtracting two
// atan2 results, which would misbehave around the branch cut. Both values
// are 0 when either amplitude vanishes and the phase difference is
// undefined.
func sincosArgDiff(a, b complex128) (Real, Real) {
	v := a * cmplx.Conj(b)
	m := cmplx.Abs(v)
	if m == 0 {
		return 0, 0
	}
	return imag(v) / m, real(v) / m
}

func normSqr(z complex128) Real {
	return real(z)*real(z) + imag(z)*imag(z)
}
