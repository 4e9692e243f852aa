package format_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	. "github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, sql string) []tokenizer.Token {
	t.Helper()
	return tokenizer.Cached(dialect.Hive.Tokenizer).Tokenize(sql)
}

func openParenIndex(t *testing.T, tokens []tokenizer.Token) int {
	t.Helper()
	for i, tok := range tokens {
		if tok.Type == tokenizer.TokenOpenParen {
			return i
		}
	}
	t.Fatal("no open paren in tokens")
	return -1
}

func TestInlineBlock_shortCallStaysInline(t *testing.T) {
	tokens := lex(t, "COUNT(*)")

	var block InlineBlock
	block.BeginIfPossible(tokens, openParenIndex(t, tokens))
	require.True(t, block.IsActive())

	block.End()
	require.False(t, block.IsActive())
}

func TestInlineBlock_forbiddenTokens(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{name: "top level word", sql: "(SELECT a)"},
		{name: "top level inline word", sql: "(a FROM b)"},
		{name: "newline word", sql: "(a AND b)"},
		{name: "union word", sql: "(a UNION b)"},
		{name: "line comment", sql: "(a -- c\n)"},
		{name: "block comment", sql: "(a /* c */)"},
		{name: "semicolon", sql: "(a; b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := lex(t, tt.sql)

			var block InlineBlock
			block.BeginIfPossible(tokens, openParenIndex(t, tokens))
			require.False(t, block.IsActive())
		})
	}
}

func TestInlineBlock_lengthBound(t *testing.T) {
	// 200 characters of token text is the cap for a single-line block
	tokens := lex(t, "(a, "+strings.Repeat("x", 220)+")")

	var block InlineBlock
	block.BeginIfPossible(tokens, openParenIndex(t, tokens))
	require.False(t, block.IsActive())
}

func TestInlineBlock_unterminatedNeverActivates(t *testing.T) {
	tokens := lex(t, "(a, b")

	var block InlineBlock
	block.BeginIfPossible(tokens, openParenIndex(t, tokens))
	require.False(t, block.IsActive())
}

func TestInlineBlock_nestedParensShareTheBlock(t *testing.T) {
	tokens := lex(t, "(a, (b, c))")
	first := openParenIndex(t, tokens)

	nested := -1
	for i := first + 1; i < len(tokens); i++ {
		if tokens[i].Type == tokenizer.TokenOpenParen {
			nested = i
			break
		}
	}
	require.NotEqual(t, -1, nested)

	var block InlineBlock
	block.BeginIfPossible(tokens, first)
	require.True(t, block.IsActive())

	// the nested open paren increments without re-evaluating
	block.BeginIfPossible(tokens, nested)
	require.True(t, block.IsActive())

	block.End()
	require.True(t, block.IsActive())
	block.End()
	require.False(t, block.IsActive())
}

func TestInlineBlock_endNeverUnderflows(t *testing.T) {
	var block InlineBlock
	block.End()
	require.False(t, block.IsActive())
}
