package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/fsnav/pkg/domain"
)

func TestKinds_Order(t *testing.T) {
	assert.Equal(t, []domain.Kind{
		domain.KindList, domain.KindShow, domain.KindBack,
		domain.KindOpen, domain.KindDetail, domain.KindExit,
	}, domain.Kinds())
}

func TestKind_Properties(t *testing.T) {
	tests := []struct {
		kind     domain.Kind
		keyword  string
		str      string
		operand  bool
		mutating bool
	}{
		{domain.KindList, "list", "LIST", false, false},
		{domain.KindShow, "show", "SHOW", true, false},
		{domain.KindBack, "back", "BACK", false, true},
		{domain.KindOpen, "open", "OPEN", true, true},
		{domain.KindDetail, "detail", "DETAIL", true, false},
		{domain.KindExit, "exit", "EXIT", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.keyword, tt.kind.Keyword())
			assert.Equal(t, tt.str, tt.kind.String())
			assert.Equal(t, tt.operand, tt.kind.NeedsOperand())
			assert.Equal(t, tt.mutating, tt.kind.Mutating())
		})
	}
}

func TestKind_Invalid(t *testing.T) {
	for _, k := range []domain.Kind{domain.KindUnknown, domain.Kind(42), domain.Kind(-1)} {
		assert.False(t, k.Valid())
		assert.Empty(t, k.Keyword())
	}
	assert.Equal(t, "Kind(42)", domain.Kind(42).String())
}
