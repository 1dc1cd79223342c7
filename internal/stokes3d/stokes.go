package stokes3d

import "math"

// Stokes describes the polarization state of a light beam: total intensity,
// 0°/90° linear polarization difference, ±45° linear polarization difference
// and circular polarization handedness. The polarization ellipse is observed
// from the sensor side, looking back along the propagation direction.
//
// The components are only meaningful together with a reference basis vector
// orthogonal to the propagation direction (see StokesBasis): "horizontal"
// has to be defined somewhere.
type Stokes struct {
	S0, S1, S2, S3 Real
}

// MulStokes applies the Mueller matrix to a Stokes vector.
func (A Mueller) MulStokes(s Stokes) Stokes {
	return Stokes{
		A.M[0][0]*s.S0 + A.M[0][1]*s.S1 + A.M[0][2]*s.S2 + A.M[0][3]*s.S3,
		A.M[1][0]*s.S0 + A.M[1][1]*s.S1 + A.M[1][2]*s.S2 + A.M[1][3]*s.S3,
		A.M[2][0]*s.S0 + A.M[2][1]*s.S1 + A.M[2][2]*s.S2 + A.M[2][3]*s.S3,
		A.M[3][0]*s.S0 + A.M[3][1]*s.S1 + A.M[3][2]*s.S2 + A.M[3][3]*s.S3,
	}
}

// FromStokes embeds a Stokes vector into the first column of an otherwise
// zero Mueller matrix. Pipelines that want to deal with matrices only can
// carry Stokes vectors in this form and multiply them like any other element.
func FromStokes(s Stokes) Mueller {
	var R Mueller
	R.M[0][0] = s.S0
	R.M[1][0] = s.S1
	R.M[2][0] = s.S2
	R.M[3][0] = s.S3
	return R
}

// FirstColumn extracts the Stokes vector stored in the first matrix column.
func (A Mueller) FirstColumn() Stokes {
	return Stokes{A.M[0][0], A.M[1][0], A.M[2][0], A.M[3][0]}
}

// Intensity returns the total beam intensity.
func (s Stokes) Intensity() Real { return s.S0 }

// DegreeOfPolarization returns sqrt(s1²+s2²+s3²)/s0, or 0 for a dark beam.
func (s Stokes) DegreeOfPolarization() Real {
	if s.S0 == 0 {
		return 0
	}
	return math.Sqrt(s.S1*s.S1+s.S2*s.S2+s.S3*s.S3) / s.S0
}
