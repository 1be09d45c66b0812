// Package markup is a small HTML host for pipe units: elements, escaped
// text, raw fragments and a string renderer.
//
// Element children are rendered in order; place pipe.Pipe among them to
// mark where the rest of the pipeline goes.
package markup
