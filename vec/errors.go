package vec

import "errors"

// ErrShapeMismatch is returned when the two inputs of a binary operation or
// reduction have different element counts. It is detected at the call
// boundary; no kernel runs and the output is untouched.
var ErrShapeMismatch = errors.New("arrayops: shape mismatch")

// ErrShortOutput is returned when the output slice is shorter than the
// inputs. Kernels perform no internal bounds checks, so this is the last
// point at which the violation can be reported.
var ErrShortOutput = errors.New("arrayops: output shorter than input")
