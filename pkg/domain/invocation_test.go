package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/fsnav/pkg/domain"
)

func TestInvocation(t *testing.T) {
	args := []string{"OPEN", "docs", "extra"}
	inv := domain.NewInvocation(domain.KindOpen, args)

	assert.Equal(t, domain.KindOpen, inv.Kind())
	assert.Equal(t, "OPEN", inv.Keyword())
	assert.Equal(t, "OPEN docs extra", inv.String())

	op, ok := inv.Operand()
	assert.True(t, ok)
	assert.Equal(t, "docs", op)

	_, ok = inv.Arg(3)
	assert.False(t, ok)
	_, ok = inv.Arg(-1)
	assert.False(t, ok)

	args[1] = "changed"
	inv.Args()[2] = "changed"
	assert.Equal(t, []string{"OPEN", "docs", "extra"}, inv.Args())
}

func TestInvocation_NoOperand(t *testing.T) {
	inv := domain.NewInvocation(domain.KindShow, []string{"show"})
	_, ok := inv.Operand()
	assert.False(t, ok)
}
