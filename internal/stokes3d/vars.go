package stokes3d

var (
	Debug = false // set to true for verbose debug output
)
