package format

import (
	"strconv"

	"github.com/pseudomuto/sqlfmt/pkg/tokenizer"
)

// Params resolves placeholder tokens to caller-supplied values, by name or
// by position. A nil or empty Params passes placeholders through verbatim.
type Params struct {
	named      map[string]string
	positional []string
	index      int
}

// NewParams creates a resolver over the given value sources. Either source
// may be nil.
func NewParams(named map[string]string, positional []string) *Params {
	return &Params{named: named, positional: positional}
}

// Get resolves a placeholder token. Resolution order: the raw token value
// when no parameter source was supplied; the value keyed by the token's
// name or explicit index; otherwise the next positional value, advancing
// the cursor. An exhausted or missing parameter resolves to the empty
// string, never an error.
func (p *Params) Get(tok tokenizer.Token) string {
	if p == nil || (p.named == nil && p.positional == nil) {
		return tok.Value
	}

	if tok.Key != "" {
		if v, ok := p.named[tok.Key]; ok {
			return v
		}
		if n, err := strconv.Atoi(tok.Key); err == nil && n >= 0 && n < len(p.positional) {
			return p.positional[n]
		}
		return ""
	}

	if p.index < len(p.positional) {
		v := p.positional[p.index]
		p.index++
		return v
	}
	return ""
}
