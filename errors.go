package pcgs

import "errors"

// ErrNotFinite is panicked when a vector operation encounters a NaN or
// infinite operand. gonum/mat has no equivalent sentinel, so this is the
// one case where pcgs declares its own rather than reusing mat.ErrShape
// and friends.
var ErrNotFinite = errors.New("pcgs: non-finite value")
