package format

import "github.com/pseudomuto/sqlfmt/pkg/tokenizer"

// inlineMaxLength caps the single-line rendering of an inline block.
const inlineMaxLength = 200

// InlineBlock decides whether a parenthesized region renders on one line.
// Short call-like expressions (COUNT(*), DECIMAL(7,2)) stay inline;
// anything containing a clause boundary, a comment, a semicolon, or more
// than inlineMaxLength characters gets the multi-line block treatment.
type InlineBlock struct {
	level int
}

// BeginIfPossible is called when an open-paren token is being formatted.
// If no inline block is active it scans forward from index and activates
// one when the region qualifies. A nested open-paren while already active
// increments the level without re-evaluating.
func (b *InlineBlock) BeginIfPossible(tokens []tokenizer.Token, index int) {
	switch {
	case b.level == 0 && isInlineBlock(tokens, index):
		b.level = 1
	case b.level > 0:
		b.level++
	}
}

// End closes one level of inline block.
func (b *InlineBlock) End() {
	if b.level > 0 {
		b.level--
	}
}

// IsActive reports whether an inline block is currently open.
func (b *InlineBlock) IsActive() bool {
	return b.level > 0
}

// isInlineBlock scans forward from the open-paren at index, accumulating
// value lengths and paren depth, and reports whether the matching close
// paren is reached within the length cap without crossing a forbidden
// token.
func isInlineBlock(tokens []tokenizer.Token, index int) bool {
	length := 0
	depth := 0

	for i := index; i < len(tokens); i++ {
		tok := tokens[i]
		length += len(tok.Value)
		if length > inlineMaxLength {
			return false
		}

		switch tok.Type {
		case tokenizer.TokenOpenParen:
			depth++
		case tokenizer.TokenCloseParen:
			depth--
			if depth == 0 {
				return true
			}
		}

		if isForbiddenInline(tok) {
			return false
		}
	}

	return false
}

func isForbiddenInline(tok tokenizer.Token) bool {
	switch tok.Type {
	case tokenizer.TokenReservedTopLevel, tokenizer.TokenReservedTopLevelInline,
		tokenizer.TokenUnionWord, tokenizer.TokenReservedNewline,
		tokenizer.TokenLineComment, tokenizer.TokenBlockComment:
		return true
	}
	return tok.Value == ";"
}
