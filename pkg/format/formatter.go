package format

import (
	"regexp"
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
)

// formatter is the per-call formatting state machine. It walks the token
// sequence once by index; the sequence is kept mutable because the
// line-comment rule may swap a comment with the comma that follows it.
type formatter struct {
	cfg         tokenizer.Config
	tokens      []tokenizer.Token
	index       int
	indentation *Indentation
	inlineBlock *InlineBlock
	params      *Params

	// last reserved token of any flavor, for the LIMIT comma exception
	prevReserved tokenizer.Token
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func newFormatter(cfg tokenizer.Config, indent string, params *Params, tokens []tokenizer.Token) *formatter {
	return &formatter{
		cfg:         cfg,
		tokens:      tokens,
		indentation: NewIndentation(indent),
		inlineBlock: &InlineBlock{},
		params:      params,
	}
}

// run dispatches every token through the formatting rules and returns the
// accumulated output, untrimmed.
func (f *formatter) run() string {
	var query string

	for f.index = 0; f.index < len(f.tokens); f.index++ {
		tok := f.tokens[f.index]

		switch {
		case tok.Type == tokenizer.TokenWhitespace:
			// dropped; spacing is recomputed
		case tok.Type == tokenizer.TokenLineComment:
			query = f.formatLineComment(tok, query)
		case tok.Type == tokenizer.TokenBlockComment:
			query = f.formatBlockComment(tok, query)
		case tok.Type == tokenizer.TokenReservedTopLevel:
			query = f.formatTopLevelReservedWord(tok, query)
			f.prevReserved = tok
		case tok.Type == tokenizer.TokenReservedTopLevelInline:
			query = f.formatTopLevelInlineReservedWord(tok, query)
			f.prevReserved = tok
		case tok.Type == tokenizer.TokenUnionWord:
			query = f.formatUnionWord(tok, query)
			f.prevReserved = tok
		case tok.Type == tokenizer.TokenReservedNewline:
			query = f.formatNewlineReservedWord(tok, query)
			f.prevReserved = tok
		case tok.Type == tokenizer.TokenReserved:
			query = f.formatPlainReservedWord(tok, query)
			f.prevReserved = tok
		case tok.Type == tokenizer.TokenOpenParen:
			query = f.formatOpeningParen(tok, query)
		case tok.Type == tokenizer.TokenCloseParen:
			query = f.formatClosingParen(tok, query)
		case tok.Type == tokenizer.TokenPlaceholder:
			query = f.formatPlaceholder(tok, query)
		case tok.Value == ",":
			query = f.formatComma(tok, query)
		case tok.Value == ":" || tok.Value == ".":
			query = trimSpacesEnd(query) + tok.Value
		case tok.Value == ";":
			query = f.formatQuerySeparator(tok, query)
		default:
			query = f.formatWithSpaces(tok.Value, query)
		}
	}

	return query
}

// addNewline ends the current line and indents the next one. Trailing
// spaces are trimmed unless a trim suppression was armed.
func (f *formatter) addNewline(query string) string {
	if f.indentation.TrimOnNewline() {
		query = trimSpacesEnd(query)
	}
	if !strings.HasSuffix(query, "\n") {
		query += "\n"
	}
	return query + f.indentation.Indent()
}

func (f *formatter) formatWithSpaces(value, query string) string {
	query += value
	if f.indentation.WhitespaceEmission() {
		query += " "
	}
	return query
}

func (f *formatter) formatTopLevelReservedWord(tok tokenizer.Token, query string) string {
	f.indentation.DecreaseTopLevel()
	query = f.addNewline(query)
	f.indentation.IncreaseTopLevel()

	query += equalizeWhitespace(tok.Value)
	return f.addNewline(query)
}

// formatTopLevelInlineReservedWord opens a top-level clause like
// formatTopLevelReservedWord but keeps the keyword's content on the same
// logical line.
func (f *formatter) formatTopLevelInlineReservedWord(tok tokenizer.Token, query string) string {
	f.indentation.DecreaseTopLevel()
	query = f.addNewline(query)
	f.indentation.IncreaseTopLevel()

	return query + equalizeWhitespace(tok.Value) + " "
}

// formatUnionWord separates set-operation branches with a blank line and
// re-opens at the outer clause level.
func (f *formatter) formatUnionWord(tok tokenizer.Token, query string) string {
	f.indentation.DecreaseTopLevel()

	query = strings.TrimRight(query, " \t")
	if query != "" {
		for !strings.HasSuffix(query, "\n\n") {
			query += "\n"
		}
	}
	query += f.indentation.Indent() + equalizeWhitespace(tok.Value)
	return f.addNewline(query)
}

func (f *formatter) formatNewlineReservedWord(tok tokenizer.Token, query string) string {
	value := equalizeWhitespace(tok.Value)

	if f.indentation.ShouldBreakLine() {
		query = f.addNewline(query) + value + " "
	} else {
		query = f.formatWithSpaces(value, query)
	}

	// SET and ADD JAR style statements carry shell-like values; stop
	// emitting normalizing spaces until the statement terminator.
	if isRawValueStatement(value) {
		f.indentation.DisableWhitespaceEmission()
	}
	return query
}

func (f *formatter) formatPlainReservedWord(tok tokenizer.Token, query string) string {
	value := strings.ToLower(equalizeWhitespace(tok.Value))
	if strings.EqualFold(value, "between") {
		// the AND of BETWEEN x AND y must not break the line
		f.indentation.ArmLineBreakSuppression()
	}
	return f.formatWithSpaces(value, query)
}

func (f *formatter) formatOpeningParen(tok tokenizer.Token, query string) string {
	prevNonWS, _ := f.previousNonWhitespace()

	forced := prevNonWS.Type == tokenizer.TokenReservedTopLevelInline ||
		(strings.EqualFold(tok.Value, "CASE") && prevNonWS.Value == ",")
	if forced {
		query = f.addNewline(query) + tok.Value
		f.indentation.IncreaseBlockLevel()
		return f.addNewline(query)
	}

	prev := f.previousToken()
	switch prev.Type {
	case tokenizer.TokenWhitespace, tokenizer.TokenOpenParen, tokenizer.TokenLineComment:
		// keep the author's spacing before the paren
	default:
		query = trimSpacesEnd(query)
	}
	query += tok.Value

	f.inlineBlock.BeginIfPossible(f.tokens, f.index)
	if !f.inlineBlock.IsActive() {
		f.indentation.IncreaseBlockLevel()
		query = f.addNewline(query)
	}
	return query
}

func (f *formatter) formatClosingParen(tok tokenizer.Token, query string) string {
	if f.inlineBlock.IsActive() {
		f.inlineBlock.End()
		return trimSpacesEnd(query) + tok.Value + " "
	}

	f.indentation.DecreaseBlockLevel()
	return f.formatWithSpaces(tok.Value, f.addNewline(query))
}

func (f *formatter) formatPlaceholder(tok tokenizer.Token, query string) string {
	return query + f.params.Get(tok) + " "
}

func (f *formatter) formatComma(tok tokenizer.Token, query string) string {
	query = trimSpacesEnd(query) + tok.Value + " "

	if f.inlineBlock.IsActive() {
		return query
	}
	if strings.EqualFold(f.prevReserved.Value, "LIMIT") {
		return query
	}
	if next, ok := f.nextNonWhitespace(); ok && next.Type == tokenizer.TokenLineComment {
		// the comment attaches to this line
		return query
	}
	return f.addNewline(query)
}

func (f *formatter) formatQuerySeparator(tok tokenizer.Token, query string) string {
	f.indentation.EnableWhitespaceEmission()
	query = trimSpacesEnd(query) + tok.Value + "\n"
	f.indentation.DecreaseBlockLevel()
	return query
}

func (f *formatter) formatLineComment(tok tokenizer.Token, query string) string {
	tok.Value = f.normalizeLineComment(tok.Value)

	// A comment directly before a comma swaps with it so the comma stays
	// glued to the preceding item and the comment trails the line. This is
	// the one place the token sequence is mutated mid-walk.
	if j, ok := f.nextNonWhitespaceIndex(); ok && f.tokens[j].Value == "," {
		f.tokens[f.index], f.tokens[j] = f.tokens[j], f.tokens[f.index]
		return f.formatComma(f.tokens[f.index], query)
	}

	prev, _ := f.previousNonWhitespace()
	switch {
	case prev.Type == tokenizer.TokenUnionWord:
		query = strings.TrimRight(query, " \t\n") + " " + tok.Value
	case prev.Value == ";" || prev.IsComment():
		query = f.addNewline(query) + tok.Value
	default:
		query += tok.Value
	}

	f.indentation.ArmTrimSuppression()
	return f.addNewline(query)
}

func (f *formatter) formatBlockComment(tok tokenizer.Token, query string) string {
	value := normalizeCommentMarker(tok.Value, "/*")
	return f.addNewline(f.addNewline(query) + f.indentComment(value))
}

// indentComment re-aligns the interior lines of a block comment with the
// current indent.
func (f *formatter) indentComment(comment string) string {
	return commentLineStart.ReplaceAllString(comment, "\n"+f.indentation.Indent()+" ")
}

var commentLineStart = regexp.MustCompile(`\n[ \t]*`)

// normalizeLineComment inserts the single space after the comment marker
// when the author wrote none (--x becomes -- x).
func (f *formatter) normalizeLineComment(value string) string {
	marker := ""
	for _, m := range f.cfg.LineCommentTypes {
		if strings.HasPrefix(value, m) && len(m) > len(marker) {
			marker = m
		}
	}
	if marker == "" {
		return value
	}
	return normalizeCommentMarker(value, marker)
}

func normalizeCommentMarker(value, marker string) string {
	rest := strings.TrimPrefix(value, marker)
	if rest == "" || rest == value {
		return value
	}
	switch rest[0] {
	case ' ', '\t', '\r', '\n':
		return value
	}
	return marker + " " + rest
}

func isRawValueStatement(value string) bool {
	v := strings.ToUpper(value)
	return v == "SET" || strings.HasPrefix(v, "SET ") || strings.HasPrefix(v, "ADD ")
}

// previousToken returns the immediately preceding token, whitespace
// included.
func (f *formatter) previousToken() tokenizer.Token {
	if f.index == 0 {
		return tokenizer.Token{}
	}
	return f.tokens[f.index-1]
}

func (f *formatter) previousNonWhitespace() (tokenizer.Token, bool) {
	for i := f.index - 1; i >= 0; i-- {
		if f.tokens[i].Type != tokenizer.TokenWhitespace {
			return f.tokens[i], true
		}
	}
	return tokenizer.Token{}, false
}

func (f *formatter) nextNonWhitespaceIndex() (int, bool) {
	for i := f.index + 1; i < len(f.tokens); i++ {
		if f.tokens[i].Type != tokenizer.TokenWhitespace {
			return i, true
		}
	}
	return 0, false
}

func (f *formatter) nextNonWhitespace() (tokenizer.Token, bool) {
	i, ok := f.nextNonWhitespaceIndex()
	if !ok {
		return tokenizer.Token{}, false
	}
	return f.tokens[i], true
}

func trimSpacesEnd(s string) string {
	return strings.TrimRight(s, " \t")
}

func equalizeWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}
