package stokes3d

type Real = float64

// Guards for numerically degenerate inputs.
const (
	// Below this |cos θi| the radiometric transmission factor is forced to 0
	// instead of dividing by a near-zero incidence cosine.
	epsCosTheta = 1e-8
)
