// Package tokenizer converts raw SQL text into an ordered sequence of
// classified tokens.
//
// The tokenizer is built from a dialect Config enumerating keyword lists,
// string quoting styles, paren spellings, placeholder prefixes, and comment
// markers. Recognition is a fixed-priority cascade of anchored regular
// expressions: whitespace, comments, strings, parens, placeholders,
// numbers, reserved words, bare words, and finally a single-character
// operator catch-all that guarantees forward progress on any input.
//
// Tokenization is total by construction. Malformed SQL never fails to lex:
// unterminated strings and block comments match to end of input, and
// unrecognized characters become operator tokens.
//
// Usage:
//
//	t := tokenizer.Cached(dialect.Get("hive").Tokenizer)
//	tokens := t.Tokenize("SELECT a, b FROM t WHERE x = 1")
package tokenizer
