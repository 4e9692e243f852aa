package tokenizer

import (
	"regexp"
	"sort"
	"strings"
)

// Config enumerates the dialect data the Tokenizer is built from. It is
// pure data: substituting a different keyword set yields a tokenizer for a
// different SQL dialect without touching engine logic.
type Config struct {
	// ReservedWords are plain reserved words (AS, LIKE, BETWEEN, ...).
	ReservedWords []string

	// ReservedTopLevelWords are clause starters that break onto their own
	// line and open a new top-level indentation scope (SELECT, GROUP BY, ...).
	ReservedTopLevelWords []string

	// ReservedTopLevelInlineWords are clause starters that keep their
	// content on the same line (FROM, WHERE, JOIN variants, ON, ...).
	ReservedTopLevelInlineWords []string

	// ReservedNewlineWords force a line break before themselves (AND, OR, ...).
	ReservedNewlineWords []string

	// UnionWords separate set-operation branches (UNION, UNION ALL, ...).
	UnionWords []string

	// StringTypes selects the recognized quoting styles. Supported
	// spellings: "``", "[]", `""`, "''", "N''".
	StringTypes []string

	// OpenParens and CloseParens list paren spellings, including word
	// parens such as CASE/END.
	OpenParens  []string
	CloseParens []string

	// IndexedPlaceholderTypes are prefixes for positional placeholders
	// (e.g. "?"), optionally followed by digits.
	IndexedPlaceholderTypes []string

	// NamedPlaceholderTypes are single-character prefixes for named
	// placeholders (e.g. ":"), in identifier or quoted-string form.
	NamedPlaceholderTypes []string

	// LineCommentTypes are markers that start a comment running to end of
	// line (e.g. "--").
	LineCommentTypes []string

	// SpecialWordChars are extra characters permitted inside bare words.
	SpecialWordChars []string
}

// Fingerprint returns a stable identity for the configuration, used as
// the memoization key by Cached.
func (c Config) Fingerprint() string {
	var b strings.Builder
	for _, list := range [][]string{
		c.ReservedWords, c.ReservedTopLevelWords, c.ReservedTopLevelInlineWords,
		c.ReservedNewlineWords, c.UnionWords, c.StringTypes, c.OpenParens,
		c.CloseParens, c.IndexedPlaceholderTypes, c.NamedPlaceholderTypes,
		c.LineCommentTypes, c.SpecialWordChars,
	} {
		for _, s := range list {
			b.WriteString(s)
			b.WriteByte(0x1f)
		}
		b.WriteByte(0x1e)
	}
	return b.String()
}

// Tokenizer converts raw SQL text into an ordered token sequence using a
// priority-ordered cascade of anchored regular expressions. It is immutable
// after construction and safe for concurrent use.
type Tokenizer struct {
	whitespace             *regexp.Regexp
	lineComment            *regexp.Regexp
	blockComment           *regexp.Regexp
	str                    *regexp.Regexp
	openParen              *regexp.Regexp
	closeParen             *regexp.Regexp
	indexedPlaceholder     *regexp.Regexp
	identNamedPlaceholder  *regexp.Regexp
	stringNamedPlaceholder *regexp.Regexp
	number                 *regexp.Regexp
	reservedTopLevel       *regexp.Regexp
	reservedTopLevelInline *regexp.Regexp
	reservedNewline        *regexp.Regexp
	reservedPlain          *regexp.Regexp
	unionWord              *regexp.Regexp
	word                   *regexp.Regexp
	operator               *regexp.Regexp
}

// New compiles a Tokenizer from the given dialect configuration. The
// compiled cascade is a pure function of the configuration; see Cached for
// the memoized variant.
func New(cfg Config) *Tokenizer {
	return &Tokenizer{
		whitespace:   regexp.MustCompile(`^(\s+)`),
		lineComment:  compileLineCommentRegexp(cfg.LineCommentTypes),
		blockComment: regexp.MustCompile(`^(/\*[\s\S]*?(?:\*/|$))`),
		str:          compileStringRegexp(cfg.StringTypes),
		openParen:    compileParenRegexp(cfg.OpenParens),
		closeParen:   compileParenRegexp(cfg.CloseParens),

		indexedPlaceholder:     compilePlaceholderRegexp(cfg.IndexedPlaceholderTypes, `[0-9]*`),
		identNamedPlaceholder:  compilePlaceholderRegexp(cfg.NamedPlaceholderTypes, `[a-zA-Z0-9._$]+`),
		stringNamedPlaceholder: compilePlaceholderRegexp(cfg.NamedPlaceholderTypes, stringPattern([]string{"``", `""`, "''"})),

		number: regexp.MustCompile(`^((?:0x[0-9a-fA-F]+|0b[01]+|(?:-\s*)?[0-9]+(?:\.[0-9]+)?)\b)`),

		reservedTopLevel:       compileReservedRegexp(cfg.ReservedTopLevelWords),
		reservedTopLevelInline: compileReservedRegexp(cfg.ReservedTopLevelInlineWords),
		reservedNewline:        compileReservedRegexp(cfg.ReservedNewlineWords),
		reservedPlain:          compileReservedRegexp(cfg.ReservedWords),
		unionWord:              compileReservedRegexp(cfg.UnionWords),

		word:     compileWordRegexp(cfg.SpecialWordChars),
		operator: regexp.MustCompile(`^(!=|<>|==|<=|>=|!<|!>|\|\||::|->>|->|[\s\S])`),
	}
}

// Tokenize lexes the full input into an ordered token sequence. It is
// total: unrecognized input falls through to a single-character operator
// token, so the cursor always advances and tokenization never fails.
func (t *Tokenizer) Tokenize(input string) []Token {
	var tokens []Token
	var prev Token

	for len(input) > 0 {
		tok := t.next(input, prev)
		input = input[len(tok.Value):]
		tokens = append(tokens, tok)
		prev = tok
	}

	return tokens
}

// next consumes the longest match at the front of input. The cascade order
// is the priority contract: earlier recognizers beat later ones.
func (t *Tokenizer) next(input string, prev Token) Token {
	if tok, ok := match(t.whitespace, input, TokenWhitespace); ok {
		return tok
	}
	if tok, ok := t.comment(input); ok {
		return tok
	}
	if tok, ok := match(t.str, input, TokenString); ok {
		return tok
	}
	if tok, ok := match(t.openParen, input, TokenOpenParen); ok {
		return tok
	}
	if tok, ok := match(t.closeParen, input, TokenCloseParen); ok {
		return tok
	}
	if tok, ok := t.placeholder(input); ok {
		return tok
	}
	if tok, ok := match(t.number, input, TokenNumber); ok {
		return tok
	}
	if tok, ok := t.reserved(input, prev); ok {
		return tok
	}
	if tok, ok := match(t.word, input, TokenWord); ok {
		return tok
	}
	tok, _ := match(t.operator, input, TokenOperator)
	return tok
}

func (t *Tokenizer) comment(input string) (Token, bool) {
	if t.lineComment != nil {
		if tok, ok := match(t.lineComment, input, TokenLineComment); ok {
			return tok, true
		}
	}
	return match(t.blockComment, input, TokenBlockComment)
}

// reserved matches the reserved-word sub-cascade. A candidate is rejected
// outright when the immediately preceding token is a "." so qualified
// identifier segments (mytable.from) stay plain words.
func (t *Tokenizer) reserved(input string, prev Token) (Token, bool) {
	if prev.Value == "." {
		return Token{}, false
	}

	if tok, ok := match(t.reservedTopLevel, input, TokenReservedTopLevel); ok {
		return tok, true
	}
	if tok, ok := match(t.reservedTopLevelInline, input, TokenReservedTopLevelInline); ok {
		return tok, true
	}
	if tok, ok := match(t.reservedNewline, input, TokenReservedNewline); ok {
		return tok, true
	}
	if tok, ok := match(t.reservedPlain, input, TokenReserved); ok {
		return tok, true
	}
	return match(t.unionWord, input, TokenUnionWord)
}

func (t *Tokenizer) placeholder(input string) (Token, bool) {
	if tok, ok := match(t.identNamedPlaceholder, input, TokenPlaceholder); ok {
		tok.Key = tok.Value[1:]
		return tok, true
	}
	if tok, ok := match(t.stringNamedPlaceholder, input, TokenPlaceholder); ok {
		tok.Key = unquoteKey(tok.Value[1:])
		return tok, true
	}
	if tok, ok := match(t.indexedPlaceholder, input, TokenPlaceholder); ok {
		tok.Key = tok.Value[1:]
		return tok, true
	}
	return Token{}, false
}

func match(re *regexp.Regexp, input string, typ TokenType) (Token, bool) {
	if re == nil {
		return Token{}, false
	}
	m := re.FindStringSubmatch(input)
	if m == nil || m[1] == "" {
		return Token{}, false
	}
	return Token{Type: typ, Value: m[1]}, true
}

// unquoteKey strips the outer quotes from a string-named placeholder key
// and unescapes backslash-escaped quote characters.
func unquoteKey(quoted string) string {
	if len(quoted) < 2 {
		return quoted
	}
	quote := quoted[0]
	inner := quoted[1 : len(quoted)-1]
	return strings.ReplaceAll(inner, `\`+string(quote), string(quote))
}

func compileLineCommentRegexp(markers []string) *regexp.Regexp {
	if len(markers) == 0 {
		return nil
	}
	escaped := make([]string, len(markers))
	for i, m := range markers {
		escaped[i] = regexp.QuoteMeta(m)
	}
	return regexp.MustCompile(`^((?:` + strings.Join(escaped, "|") + `).*?(?:\r\n|\r|\n|$))`)
}

// compileStringRegexp builds the quoted-string recognizer. Every pattern
// accepts end-of-input as a fallback terminator so an unterminated string
// still lexes to a single token instead of halting the cascade.
func compileStringRegexp(stringTypes []string) *regexp.Regexp {
	return regexp.MustCompile(`^(` + stringPattern(stringTypes) + `)`)
}

func stringPattern(stringTypes []string) string {
	patterns := make([]string, 0, len(stringTypes))
	for _, st := range stringTypes {
		switch st {
		case "``":
			patterns = append(patterns, "(?:`[^`]*(?:`|$))+")
		case "[]":
			patterns = append(patterns, `(?:\[[^\]]*(?:\]|$))(?:\][^\]]*(?:\]|$))*`)
		case `""`:
			patterns = append(patterns, `(?:"[^"\\]*(?:\\[\s\S][^"\\]*)*(?:"|$))+`)
		case "''":
			patterns = append(patterns, `(?:'[^'\\]*(?:\\[\s\S][^'\\]*)*(?:'|$))+`)
		case "N''":
			patterns = append(patterns, `(?:N'[^'\\]*(?:\\[\s\S][^'\\]*)*(?:'|$))+`)
		}
	}
	return strings.Join(patterns, "|")
}

func compileParenRegexp(parens []string) *regexp.Regexp {
	if len(parens) == 0 {
		return nil
	}
	patterns := make([]string, len(parens))
	for i, p := range parens {
		if len(p) == 1 {
			patterns[i] = regexp.QuoteMeta(p)
		} else {
			patterns[i] = `\b` + regexp.QuoteMeta(p) + `\b`
		}
	}
	return regexp.MustCompile(`(?i)^(` + strings.Join(patterns, "|") + `)`)
}

// compileReservedRegexp generalizes internal whitespace in multi-word
// keywords to \s+ and sorts alternatives longest-first so GROUP BY beats
// GROUP and UNION ALL beats UNION.
func compileReservedRegexp(words []string) *regexp.Regexp {
	if len(words) == 0 {
		return nil
	}
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	patterns := make([]string, len(sorted))
	for i, w := range sorted {
		patterns[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return regexp.MustCompile(`(?i)^(` + strings.Join(patterns, "|") + `)\b`)
}

// compilePlaceholderRegexp builds a placeholder recognizer from the given
// single-character prefixes and key pattern. Returns nil when the dialect
// has no placeholders of this form.
func compilePlaceholderRegexp(types []string, keyPattern string) *regexp.Regexp {
	if len(types) == 0 || keyPattern == "" {
		return nil
	}
	escaped := make([]string, len(types))
	for i, t := range types {
		escaped[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`^((?:` + strings.Join(escaped, "|") + `)(?:` + keyPattern + `))`)
}

func compileWordRegexp(specialChars []string) *regexp.Regexp {
	var special strings.Builder
	for _, c := range specialChars {
		special.WriteString(regexp.QuoteMeta(c))
	}
	return regexp.MustCompile(`^([\p{L}\p{M}\p{Nd}\p{Pc}` + special.String() + `]+)`)
}
