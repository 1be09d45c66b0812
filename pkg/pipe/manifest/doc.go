// Package manifest declares pipelines in YAML and compiles them into
// pipe units.
//
// A document maps page names to unit specs. Each spec names a kind that a
// Registry turns into a unit; props are decoded into the kind's own struct.
//
//	pages:
//	  home:
//	    kind: pipeline
//	    units:
//	      - kind: element
//	        props: {tag: main}
//	        children: [{kind: pipe}]
//	      - kind: text
//	        props: {text: hello}
//
// Built-in kinds: text, raw, markdown, element, fragment, pipe, guard, provider,
// pipeline, piping. Register adds more.
package manifest
