package domain

import "strings"

// Invocation is a classified command line ready for execution.
// Args holds every whitespace-separated token, the keyword included at index 0.
// The value is never mutated after construction.
type Invocation struct {
	kind Kind
	args []string
}

// NewInvocation builds an Invocation, copying args so callers cannot alias it.
func NewInvocation(kind Kind, args []string) Invocation {
	cp := make([]string, len(args))
	copy(cp, args)
	return Invocation{kind: kind, args: cp}
}

// Kind returns the selected operation.
func (i Invocation) Kind() Kind {
	return i.kind
}

// Args returns a copy of the argument tokens.
func (i Invocation) Args() []string {
	cp := make([]string, len(i.args))
	copy(cp, i.args)
	return cp
}

// Arg returns the token at position n, if present.
func (i Invocation) Arg(n int) (string, bool) {
	if n < 0 || n >= len(i.args) {
		return "", false
	}
	return i.args[n], true
}

// Operand returns the first token after the keyword.
func (i Invocation) Operand() (string, bool) {
	return i.Arg(1)
}

// Keyword returns the token the user typed to select the operation.
func (i Invocation) Keyword() string {
	kw, _ := i.Arg(0)
	return kw
}

func (i Invocation) String() string {
	return strings.Join(i.args, " ")
}
