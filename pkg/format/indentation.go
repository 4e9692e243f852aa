package format

import "strings"

type indentType int

const (
	indentTopLevel indentType = iota
	indentBlockLevel
)

// oneShot is a flag that reverts to its default the instant it is read, so
// arming it affects exactly one subsequent decision.
type oneShot struct {
	armed bool
}

// Arm sets the flag for exactly one Consume.
func (o *oneShot) Arm() { o.armed = true }

// Consume returns whether the flag was armed and resets it.
func (o *oneShot) Consume() bool {
	armed := o.armed
	o.armed = false
	return armed
}

// Indentation tracks the current indent level as an ordered stack of
// markers. Top-level markers belong to clauses (SELECT, GROUP BY, ...);
// block-level markers belong to parenthesized blocks. It also owns the
// formatter's behavioral flags: two one-shot suppressions and the
// persistent whitespace-emission toggle.
type Indentation struct {
	unit  string
	stack []indentType

	noTrim    oneShot
	noBreak   oneShot
	emitSpace bool
}

// NewIndentation creates an empty indentation tracker using unit as the
// per-level indent string.
func NewIndentation(unit string) *Indentation {
	return &Indentation{unit: unit, emitSpace: true}
}

// Indent returns the current indent string.
func (i *Indentation) Indent() string {
	return strings.Repeat(i.unit, len(i.stack))
}

// IncreaseTopLevel opens a top-level clause scope.
func (i *Indentation) IncreaseTopLevel() {
	i.stack = append(i.stack, indentTopLevel)
}

// IncreaseBlockLevel opens a parenthesized block scope.
func (i *Indentation) IncreaseBlockLevel() {
	i.stack = append(i.stack, indentBlockLevel)
}

// DecreaseTopLevel closes the current top-level clause. It is a no-op
// unless the top of the stack is a top-level marker, which guards against
// a dangling clause closing an unrelated block.
func (i *Indentation) DecreaseTopLevel() {
	if n := len(i.stack); n > 0 && i.stack[n-1] == indentTopLevel {
		i.stack = i.stack[:n-1]
	}
}

// DecreaseBlockLevel closes a parenthesized block. Closing a paren also
// closes any top-level clauses opened inside it, so top-level markers are
// popped until exactly one block-level marker has been removed or the
// stack is exhausted. It never crosses into markers pushed before the
// block and never underflows.
func (i *Indentation) DecreaseBlockLevel() {
	for len(i.stack) > 0 {
		top := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]
		if top != indentTopLevel {
			break
		}
	}
}

// ArmTrimSuppression suppresses trailing-whitespace trimming on the next
// forced newline only.
func (i *Indentation) ArmTrimSuppression() { i.noTrim.Arm() }

// TrimOnNewline reports whether the next forced newline should trim
// trailing whitespace, consuming any pending suppression.
func (i *Indentation) TrimOnNewline() bool { return !i.noTrim.Consume() }

// ArmLineBreakSuppression skips the next forced newline only. BETWEEN arms
// this so its following AND stays on the same line.
func (i *Indentation) ArmLineBreakSuppression() { i.noBreak.Arm() }

// ShouldBreakLine reports whether a newline-triggering word should break
// the line, consuming any pending suppression.
func (i *Indentation) ShouldBreakLine() bool { return !i.noBreak.Consume() }

// DisableWhitespaceEmission stops appending the normalizing space after
// tokens. Used by SET / ADD JAR statements where values must stay glued.
func (i *Indentation) DisableWhitespaceEmission() { i.emitSpace = false }

// EnableWhitespaceEmission restores the normalizing space after tokens.
func (i *Indentation) EnableWhitespaceEmission() { i.emitSpace = true }

// WhitespaceEmission reports whether the normalizing space is appended
// after tokens.
func (i *Indentation) WhitespaceEmission() bool { return i.emitSpace }
