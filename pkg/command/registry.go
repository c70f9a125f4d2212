// Package command classifies raw input lines into navigator invocations.
package command

import (
	"strings"

	"github.com/aretw0/fsnav/pkg/domain"
)

// Registry holds the fixed set of operations a session recognizes.
// The set is closed: there is no registration after construction.
type Registry struct {
	kinds []domain.Kind
}

// NewRegistry creates a registry over every declared operation, in declaration order.
func NewRegistry() *Registry {
	return &Registry{kinds: domain.Kinds()}
}

// Default is the registry used by Parse.
var Default = NewRegistry()

// Parse classifies line with the Default registry.
func Parse(line string) (domain.Invocation, error) {
	return Default.Parse(line)
}

// Lookup returns the first operation, in declaration order, whose keyword
// spelling the token is. Only the all-lowercase and all-uppercase spellings
// are accepted: "list" and "LIST" match, "List" does not.
func (r *Registry) Lookup(token string) (domain.Kind, bool) {
	for _, k := range r.kinds {
		if accepts(k, token) {
			return k, true
		}
	}
	return domain.KindUnknown, false
}

// Parse splits line on whitespace and classifies the first token.
// The full token sequence, keyword included, becomes the invocation's arguments.
func (r *Registry) Parse(line string) (domain.Invocation, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return domain.Invocation{}, domain.NewError(domain.CodeEmptyCommand, domain.KindUnknown, "", nil)
	}

	kind, ok := r.Lookup(tokens[0])
	if !ok {
		return domain.Invocation{}, domain.NewError(domain.CodeUnrecognizedCommand, domain.KindUnknown, tokens[0], nil)
	}
	return domain.NewInvocation(kind, tokens), nil
}

// Keywords returns the lowercase keyword of every operation, in declaration order.
func (r *Registry) Keywords() []string {
	out := make([]string, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k.Keyword())
	}
	return out
}

func accepts(k domain.Kind, token string) bool {
	kw := k.Keyword()
	return token == kw || token == strings.ToUpper(kw)
}
