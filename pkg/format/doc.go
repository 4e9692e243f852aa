// Package format provides consistently indented, human-readable SQL
// output.
//
// The formatter normalizes whitespace, breaks statements at clause
// boundaries, indents nested parenthesized expressions, and optionally
// substitutes placeholder tokens with caller-supplied parameter values.
// It consumes the token stream produced by the tokenizer package and
// drives three small collaborators: an Indentation stack, an InlineBlock
// lookahead classifier, and a Params resolver.
//
// Key properties:
//   - Idempotent: formatting already-formatted output reproduces it
//   - Total: malformed SQL never fails, it is best-effort re-flowed
//   - Deterministic: output depends only on input, options, and params
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//	out := formatter.Format("SELECT a, b FROM t WHERE x = 1")
//
//	// Functional API with custom options
//	out := format.Format("SELECT * FROM t WHERE id = :id", &format.Options{
//		Indent:      "    ",
//		Dialect:     "hive",
//		NamedParams: map[string]string{"id": "42"},
//	})
//
// Output is a re-flowed token stream, not a validated syntax tree: no SQL
// semantic validation or dialect-aware rewriting is performed.
package format
