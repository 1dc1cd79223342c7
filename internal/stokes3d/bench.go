package stokes3d

// Element is one device on the optical bench: a Mueller matrix in its
// canonical orientation plus the mount angle around the beam axis.
type Element struct {
	Name   string
	Angle  Real // counter-clockwise mount rotation, radians
	Matrix Mueller
}

// Mounted returns the element matrix with the mount rotation applied.
func (e Element) Mounted() Mueller {
	if e.Angle == 0 {
		return e.Matrix
	}
	return RotatedElement(e.Angle, e.Matrix)
}

// Bench is an ordered train of inline optical elements sharing one
// propagation direction. Light passes element 0 first.
type Bench struct {
	Elements []Element
}

func (b *Bench) Add(e Element) {
	b.Elements = append(b.Elements, e)
}

// Matrix folds the whole train into a single Mueller matrix. Matrix product
// is composition of sequential elements, so later elements multiply from the
// left.
func (b *Bench) Matrix() Mueller {
	M := I4()
	for _, e := range b.Elements {
		M = e.Mounted().Mul(M)
	}
	return M
}

// RealignedMatrix folds the train and re-expresses the result from the
// canonical basis of forward into basisTarget on both sides.
func (b *Bench) RealignedMatrix(forward, basisTarget Vector3) Mueller {
	w := forward.Norm()
	return RotateMuellerBasisCollinear(b.Matrix(), w, StokesBasis(w), basisTarget.Norm())
}

// Propagate sends a Stokes vector through the train.
func (b *Bench) Propagate(s Stokes) Stokes {
	return b.Matrix().MulStokes(s)
}
