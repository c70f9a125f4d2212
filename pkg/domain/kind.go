package domain

import (
	"fmt"
	"strings"
)

// Kind identifies one of the fixed operations a session understands.
type Kind int

const (
	KindUnknown Kind = iota
	KindList
	KindShow
	KindBack
	KindOpen
	KindDetail
	KindExit
)

var keywords = [...]string{
	KindUnknown: "",
	KindList:    "list",
	KindShow:    "show",
	KindBack:    "back",
	KindOpen:    "open",
	KindDetail:  "detail",
	KindExit:    "exit",
}

// Kinds returns every operation in declaration order.
// Command classification tries them in exactly this order.
func Kinds() []Kind {
	return []Kind{KindList, KindShow, KindBack, KindOpen, KindDetail, KindExit}
}

// Valid reports whether k is one of the declared operations.
func (k Kind) Valid() bool {
	return k > KindUnknown && k <= KindExit
}

// Keyword returns the lowercase spelling of the operation keyword.
func (k Kind) Keyword() string {
	if !k.Valid() {
		return ""
	}
	return keywords[k]
}

// NeedsOperand reports whether the operation requires a target name.
func (k Kind) NeedsOperand() bool {
	switch k {
	case KindShow, KindOpen, KindDetail:
		return true
	}
	return false
}

// Mutating reports whether a successful run of the operation replaces the current directory.
func (k Kind) Mutating() bool {
	return k == KindOpen || k == KindBack
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return strings.ToUpper(keywords[k])
}
