// Package pipe composes renderable units into ordered pipelines where each
// unit may render "whatever comes next" without knowing what that is.
//
// A Unit renders itself to an io.Writer. The continuation for the current
// position travels in the context.Context, so any unit can place the Pipe
// placeholder inside its own output and the host fills it in with the rest
// of the pipeline at render time.
//
// Key operations:
// - Pipe: placeholder that renders the continuation bound in the context
// - UsePipe/WithPipe/PipeProvider: read and bind the continuation
// - Pipeline: chain whose last unit continues into the enclosing pipeline
// - Piping/CreatePipeline: isolated chain ending in a fallback or nothing
//
// A Pipe rendered outside any pipeline renders nothing. WithStrict turns
// that case into ErrNoContinuation for callers that want it diagnosed.
package pipe
