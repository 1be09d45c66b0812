package pipe

import "errors"

// ErrNoContinuation is returned in strict mode when Pipe is rendered
// outside any pipeline.
var ErrNoContinuation = errors.New("pipe: rendered outside any pipeline")
