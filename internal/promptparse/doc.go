// Package promptparse extracts wing parameters from free-form design text.
//
// The parser is deliberately lightweight: a handful of regular expressions
// pick up numeric cues ("12m wingspan", "sweep: 30", "taper ratio 0.4") and
// every missing cue falls back to a sensible default. Extracted values are
// floored so a sloppy prompt still yields a buildable wing. It is not a
// language model and never will be; richer extraction belongs to MCP clients
// that call the generator with structured parameters.
package promptparse
