package runtime

import "strconv"

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a runtime value. Values are immutable and passed by copy.
type Value interface {
	Kind() Kind
	// String is the text printed by show: decimal for integers, the raw
	// text for strings.
	String() string
}

type IntegerValue struct {
	Val int64
}

func (IntegerValue) Kind() Kind { return KindInteger }

func (v IntegerValue) String() string { return strconv.FormatInt(v.Val, 10) }

type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind { return KindString }

func (v StringValue) String() string { return v.Val }

// Truth encodes a comparison result as 1 or 0; there is no boolean type.
func Truth(b bool) IntegerValue {
	if b {
		return IntegerValue{Val: 1}
	}
	return IntegerValue{Val: 0}
}
