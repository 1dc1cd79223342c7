package stokes3d

// StokesBasis returns the reference basis in which Stokes vectors travelling
// along the unit direction w are expressed. Reference frames are never
// stored anywhere; they are recomputed on demand, so the construction has to
// be deterministic: two calls with the same w always agree.
func StokesBasis(w Vector3) Vector3 {
	s, _ := coordinateSystem(w)
	return s
}

// RotateStokesBasis gives the Mueller matrix that re-expresses a Stokes
// vector travelling along forward from basisCurrent to basisTarget. Both
// bases must be unit length and orthogonal to forward.
//
// Example: horizontally polarized light (1,1,0,0) in basis (1,0,0) reads as
// +45° polarized light (1,0,1,0) in the target basis (0.707,-0.707,0).
func RotateStokesBasis(forward, basisCurrent, basisTarget Vector3) Mueller {
	theta := unitAngle(basisCurrent.Norm(), basisTarget.Norm())

	// Rotation sign follows the right-hand rule around the propagation
	// direction. Getting this wrong does not crash anything; it silently
	// flips the handedness of circular polarization.
	if forward.Dot(basisCurrent.Cross(basisTarget)) < 0 {
		theta = -theta
	}
	return Rotator(theta)
}

// RotateMuellerBasis re-expresses a Mueller matrix, rotating the input and
// output frames independently: M operates from inBasisCurrent to
// outBasisCurrent, the result operates from inBasisTarget to outBasisTarget.
// Needed whenever the incoming and outgoing propagation directions differ,
// e.g. at a reflecting or refracting interface.
func RotateMuellerBasis(M Mueller,
	inForward, inBasisCurrent, inBasisTarget Vector3,
	outForward, outBasisCurrent, outBasisTarget Vector3) Mueller {
	RIn := RotateStokesBasis(inForward, inBasisCurrent, inBasisTarget)
	ROut := RotateStokesBasis(outForward, outBasisCurrent, outBasisTarget)
	return ROut.Mul(M).Mul(RIn.Transpose())
}

// RotateMuellerBasisCollinear is the special case of RotateMuellerBasis
// where input and output propagation directions coincide, as for inline
// elements: the same rotation applies on both sides.
func RotateMuellerBasisCollinear(M Mueller, forward, basisCurrent, basisTarget Vector3) Mueller {
	R := RotateStokesBasis(forward, basisCurrent, basisTarget)
	return R.Mul(M).Mul(R.Transpose())
}
