package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/dialect"
	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
)

// Options controls formatting behavior.
type Options struct {
	// Indent is the indentation unit. Defaults to two spaces.
	Indent string

	// Dialect names the registered dialect to format with. Defaults to
	// consts.DefaultDialect.
	Dialect string

	// NamedParams supplies values for named placeholders (:name).
	NamedParams map[string]string

	// PositionalParams supplies values for positional placeholders (?),
	// consumed in order.
	PositionalParams []string
}

// Defaults are the standard formatting options.
var Defaults = &Options{
	Indent:  consts.DefaultIndent,
	Dialect: consts.DefaultDialect,
}

// Formatter formats SQL with a fixed dialect and option set. It is safe
// for concurrent use: all per-call state is created fresh inside Format.
type Formatter struct {
	options *Options
	dialect *dialect.Dialect
}

// New creates a Formatter with the specified options. A nil options value
// or zero fields fall back to Defaults; an unregistered dialect name falls
// back to the default dialect.
func New(options *Options) *Formatter {
	if options == nil {
		options = Defaults
	}

	opts := *options
	if opts.Indent == "" {
		opts.Indent = consts.DefaultIndent
	}
	if opts.Dialect == "" {
		opts.Dialect = consts.DefaultDialect
	}

	d := dialect.Get(opts.Dialect)
	if d == nil {
		d = dialect.Get(consts.DefaultDialect)
	}

	return &Formatter{options: &opts, dialect: d}
}

// NewDefault creates a Formatter with default options.
func NewDefault() *Formatter {
	return New(Defaults)
}

// Format reformats the query into a consistently indented rendering.
//
// Formatting never fails: malformed SQL is best-effort lexed and
// best-effort formatted. The result is idempotent; formatting
// already-formatted output reproduces it unchanged.
func (f *Formatter) Format(query string) string {
	t := tokenizer.Cached(f.dialect.Tokenizer)

	run := newFormatter(
		f.dialect.Tokenizer,
		f.options.Indent,
		NewParams(f.options.NamedParams, f.options.PositionalParams),
		t.Tokenize(query),
	)
	return strings.TrimSpace(run.run())
}

// Format reformats the query with the given options (convenience function).
func Format(query string, options *Options) string {
	return New(options).Format(query)
}
