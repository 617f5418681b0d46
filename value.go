package peerdisc

import (
	"errors"
	"strconv"
)

// Kind enumerates the shapes a configuration or environment value can take
// before it has been coerced. The set is closed; switches over it should be
// exhaustive.
type Kind int

const (
	// KindNone is an absent value, distinct from empty text or zero.
	KindNone Kind = iota
	// KindText is free-form text.
	KindText
	// KindNumber is an integer.
	KindNumber
	// KindSymbol is interned text used as an identifier, such as a backend
	// name or a resolved node name.
	KindSymbol
)

var (
	// ErrUnsupportedType is returned when a value cannot be coerced to the
	// requested kind. The input is returned alongside it unchanged so that
	// callers may log and continue.
	ErrUnsupportedType = errors.New("unsupported value type")
	// ErrInvalidInteger is returned when text does not parse as an integer.
	// There is no safe default integer, so callers must not swallow it.
	ErrInvalidInteger = errors.New("invalid integer")
	// ErrNoValue is returned when an integer is requested from an absent
	// value.
	ErrNoValue = errors.New("no value")
)

// Value is a tagged union over the kinds above.
type Value struct {
	kind Kind
	text string
	num  int64
}

// None returns the absent value.
func None() Value {
	return Value{kind: KindNone}
}

// Text wraps s as a textual value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number wraps n as a numeric value.
func Number(n int64) Value {
	return Value{kind: KindNumber, num: n}
}

// Symbol wraps s as a symbolic value.
func Symbol(s string) Value {
	return Value{kind: KindSymbol, text: s}
}

// Kind returns the tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNone reports whether the value is absent.
func (v Value) IsNone() bool {
	return v.kind == KindNone
}

// String renders the value for logging. Use ToText for coercion.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "<none>"
	case KindNumber:
		return strconv.FormatInt(v.num, 10)
	default:
		return v.text
	}
}

// ToSymbol coerces v to a symbol. Symbols pass through, text is interned.
// Anything else returns ErrUnsupportedType together with the input
// unchanged; callers on advisory paths log the error and keep going.
func ToSymbol(v Value) (Value, error) {
	switch v.kind {
	case KindSymbol:
		return v, nil
	case KindText:
		return Symbol(v.text), nil
	default:
		return v, ErrUnsupportedType
	}
}

// ToInteger coerces v to an integer. An absent value yields ErrNoValue so
// that "not configured" is distinguishable from zero. Text that does not
// parse yields ErrInvalidInteger, which is fatal to the caller.
func ToInteger(v Value) (int64, error) {
	switch v.kind {
	case KindNone:
		return 0, ErrNoValue
	case KindNumber:
		return v.num, nil
	case KindText, KindSymbol:
		// Base 10 only. Env-injected ports are often zero padded and must
		// not be reinterpreted as octal.
		n, err := strconv.ParseInt(v.text, 10, 64)
		if err != nil {
			return 0, ErrInvalidInteger
		}
		return n, nil
	default:
		return 0, ErrUnsupportedType
	}
}

// ToText coerces v to flattened text. An absent value yields empty text.
func ToText(v Value) (string, error) {
	switch v.kind {
	case KindNone:
		return "", nil
	case KindText, KindSymbol:
		return v.text, nil
	case KindNumber:
		return strconv.FormatInt(v.num, 10), nil
	default:
		return "", ErrUnsupportedType
	}
}
