package stokes3d

import "math"

// SpecularReflection builds the Mueller matrix of a specular reflection at
// an interface between two dielectrics or conductors. cosThetaI is the
// cosine of the angle between surface normal and incident ray; eta the
// relative refractive index, complex-valued for conductors. The resulting
// matrix is expressed in the natural s/p frame of the interface; use the
// basis helpers to re-express it elsewhere.
func SpecularReflection(cosThetaI Real, eta complex128) Mueller {
	aS, aP := fresnelPolarizedComplex(cosThetaI, eta)

	sinDelta, cosDelta := sincosArgDiff(aS, aP)

	rS := normSqr(aS)
	rP := normSqr(aP)
	a := 0.5 * (rS + rP)
	b := 0.5 * (rS - rP)
	c := math.Sqrt(rS * rP)

	// The phase difference is undefined when one amplitude vanishes
	// (e.g. p-polarization at Brewster's angle); keep NaNs out.
	if c == 0 {
		sinDelta, cosDelta = 0, 0
	}

	var R Mueller
	R.M[0][0], R.M[0][1] = a, b
	R.M[1][0], R.M[1][1] = b, a
	R.M[2][2], R.M[2][3] = c*cosDelta, c*sinDelta
	R.M[3][2], R.M[3][3] = -c*sinDelta, c*cosDelta
	return R
}

// SpecularTransmission builds the Mueller matrix of a specular transmission
// at an interface between two dielectrics. cosThetaI is the cosine of the
// angle between surface normal and incident ray; eta the (real) relative
// refractive index, greater than 1 when the normal points into the region of
// lower density. Under total internal reflection the transmitted cosine is 0
// and the matrix degenerates to zero.
func SpecularTransmission(cosThetaI, eta Real) Mueller {
	aS, aP, cosThetaT, etaIT, etaTI := fresnelPolarized(cosThetaI, eta)

	// Radiance unit conversion between the two media, guarded against a
	// division by a near-zero incidence cosine.
	factor := Real(0)
	if math.Abs(cosThetaI) > epsCosTheta {
		factor = -etaIT * cosThetaT / cosThetaI
	}

	// Transmitted amplitudes follow from the reflected ones:
	// t_s = 1 + r_s and t_p = (1 - r_p)/eta, per polarization.
	tS := sqr(real(aS) + 1)
	tP := sqr((1 - real(aP)) * etaTI)

	a := 0.5 * factor * (tS + tP)
	b := 0.5 * factor * (tS - tP)
	c := factor * math.Sqrt(tS*tP)

	// Transmission keeps the circular/45° axes aligned: no phase cross-term,
	// the (s2,s3) block stays diagonal.
	var R Mueller
	R.M[0][0], R.M[0][1] = a, b
	R.M[1][0], R.M[1][1] = b, a
	R.M[2][2] = c
	R.M[3][3] = c
	return R
}
