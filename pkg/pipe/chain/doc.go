// Package chain provides a fluent builder around pipe.Props for assembling
// pipelines step by step instead of writing the Props literal by hand.
//
// Key operations:
// - Start/From: begin a builder from units or existing Props
// - Then: append a component
// - Children: append children after all components
// - Fallback: set the terminal used by Piping
// - Pipeline/Piping: finish into a pipe.Unit
package chain
