package stokes3d

// Mueller is a 4×4 real matrix (row-major) describing how an optical
// interaction transforms the polarization state of a light beam. It acts on
// Stokes vectors: sOut = M · sIn. A Mueller matrix carries no meaning on its
// own; the input and output reference bases are tracked by the caller and
// passed explicitly to the frame-rotation helpers in basis.go.
type Mueller struct {
	M [4][4]Real
}

func I4() Mueller {
	return Mueller{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func (A Mueller) Mul(B Mueller) Mueller {
	var R Mueller
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mueller) Transpose() Mueller {
	var R Mueller
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

func (A Mueller) Scale(s Real) Mueller {
	var R Mueller
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[r][c] * s
		}
	}
	return R
}
