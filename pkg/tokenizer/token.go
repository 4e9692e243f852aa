package tokenizer

// TokenType classifies a lexical unit produced by the Tokenizer.
type TokenType string

const (
	// TokenWhitespace is a run of whitespace characters.
	TokenWhitespace TokenType = "whitespace"
	// TokenWord is a bare identifier or other word-like run.
	TokenWord TokenType = "word"
	// TokenString is a quoted string in any of the configured styles.
	TokenString TokenType = "string"
	// TokenReserved is a plain reserved word (AS, LIKE, BETWEEN, ...).
	TokenReserved TokenType = "reserved"
	// TokenReservedTopLevel is a clause starter (SELECT, GROUP BY, ...)
	// that opens a new indentation scope and breaks onto its own line.
	TokenReservedTopLevel TokenType = "reserved-top-level"
	// TokenReservedTopLevelInline is a clause starter (FROM, WHERE, JOIN
	// variants, ON, ...) that keeps its content on the same line.
	TokenReservedTopLevelInline TokenType = "reserved-top-level-inline"
	// TokenUnionWord is a set operator keyword (UNION, UNION ALL, ...).
	TokenUnionWord TokenType = "union-word"
	// TokenReservedNewline is a keyword that forces a line break before
	// itself (AND, OR, SET, ...).
	TokenReservedNewline TokenType = "reserved-newline"
	// TokenOperator is punctuation or an operator, including the
	// single-character catch-all for otherwise unrecognized input.
	TokenOperator TokenType = "operator"
	// TokenOpenParen is an opening paren spelling, including word parens
	// such as CASE.
	TokenOpenParen TokenType = "open-paren"
	// TokenCloseParen is a closing paren spelling, including word parens
	// such as END.
	TokenCloseParen TokenType = "close-paren"
	// TokenLineComment is a comment running to end of line.
	TokenLineComment TokenType = "line-comment"
	// TokenBlockComment is a /* ... */ comment.
	TokenBlockComment TokenType = "block-comment"
	// TokenNumber is an integer, decimal, hex, or binary literal.
	TokenNumber TokenType = "number"
	// TokenPlaceholder is a parameter placeholder; Key carries the name
	// or index used to resolve a value.
	TokenPlaceholder TokenType = "placeholder"
)

// Token is a classified lexical unit. Value is the raw matched text. Key
// is set only for placeholder tokens.
type Token struct {
	Type  TokenType
	Value string
	Key   string
}

// IsReserved reports whether the token is any flavor of reserved word.
func (t Token) IsReserved() bool {
	switch t.Type {
	case TokenReserved, TokenReservedTopLevel, TokenReservedTopLevelInline,
		TokenReservedNewline, TokenUnionWord:
		return true
	}
	return false
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Type == TokenLineComment || t.Type == TokenBlockComment
}

// Empty reports whether the token is the zero value.
func (t Token) Empty() bool {
	return t.Type == "" && t.Value == ""
}
