package stokes3d

import "math"

// Depolarizer returns the Mueller matrix of an ideal depolarizer: a fraction
// value of the incident intensity leaves the device fully depolarized.
func Depolarizer(value Real) Mueller {
	var R Mueller
	R.M[0][0] = value
	return R
}

// Absorber returns the Mueller matrix of an ideal absorber, attenuating the
// beam uniformly with no effect on its polarization.
func Absorber(value Real) Mueller {
	return I4().Scale(value)
}

// LinearPolarizer returns the Mueller matrix of a linear polarizer which
// transmits linear polarization at 0 degrees. value is the attenuation of
// the transmitted component; 1 corresponds to an ideal polarizer.
//
// "Polarized Light" by Edward Collett, ch. 5 eq. (13)
func LinearPolarizer(value Real) Mueller {
	a := value * 0.5
	var R Mueller
	R.M[0][0], R.M[0][1] = a, a
	R.M[1][0], R.M[1][1] = a, a
	return R
}

// LinearRetarder returns the Mueller matrix of a linear retarder with its
// fast axis aligned vertically, delaying the slow axis by phase radians.
// phase = π/2 gives a quarter-wave plate, π a half-wave plate.
//
// "Polarized Light" by Edward Collett, ch. 5 eq. (27)
func LinearRetarder(phase Real) Mueller {
	s, c := math.Sincos(phase)
	R := I4()
	R.M[2][2], R.M[2][3] = c, -s
	R.M[3][2], R.M[3][3] = s, c
	return R
}

// Diattenuator returns the Mueller matrix of a linear diattenuator which
// attenuates the electric field components at 0 and 90 degrees by x and y.
// The √(xy) cross term keeps the matrix physically realizable for x, y ≥ 0.
func Diattenuator(x, y Real) Mueller {
	a := 0.5 * (x + y)
	b := 0.5 * (x - y)
	c := math.Sqrt(x * y)
	var R Mueller
	R.M[0][0], R.M[0][1] = a, b
	R.M[1][0], R.M[1][1] = b, a
	R.M[2][2] = c
	R.M[3][3] = c
	return R
}

// Rotator returns the Mueller matrix of an ideal rotator: a counter-clockwise
// rotation of the electric field by theta radians, as seen when facing the
// beam from the sensor side. More precisely it rotates the reference frame of
// the Stokes vector: horizontally polarized light (1,1,0,0) becomes -45°
// polarized light (1,0,-1,0) after a +45° rotator. Linear polarization angles
// map to twice the angle on the (s1,s2) plane, hence the 2θ.
//
// "Polarized Light" by Edward Collett, ch. 5 eq. (43)
func Rotator(theta Real) Mueller {
	s, c := math.Sincos(2 * theta)
	R := I4()
	R.M[1][1], R.M[1][2] = c, s
	R.M[2][1], R.M[2][2] = -s, c
	return R
}

// RotatedElement applies a counter-clockwise rotation by theta to an optical
// element given in its canonical orientation: Rᵀ·M·R.
func RotatedElement(theta Real, M Mueller) Mueller {
	R := Rotator(theta)
	return R.Transpose().Mul(M).Mul(R)
}

// Reverse flips the direction of propagation: the handedness of circular
// polarization inverts, so the s2 and s3 rows change sign. Also used when
// reflecting a reference frame.
func Reverse(M Mueller) Mueller {
	D := I4()
	D.M[2][2] = -1
	D.M[3][3] = -1
	return D.Mul(M)
}
