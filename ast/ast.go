// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the decoded form of JSON values shown by the viewer,
// and a parser that constructs them from JSON source.
//
// A Value is one of String, Number, Bool, Null, Array, or Object. The set is
// closed: no other package can add a concrete type, so a type switch over
// these cases (as done by Classify) is exhaustive.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jview"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string

	isValue()
}

// Kind is the classification of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	StringKind Kind = iota + 1
	NumberKind
	BoolKind
	NullKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	StringKind: "string",
	NumberKind: "number",
	BoolKind:   "boolean",
	NullKind:   "null",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// IsComposite reports whether k is ArrayKind or ObjectKind.
func (k Kind) IsComposite() bool { return k == ArrayKind || k == ObjectKind }

// Classify reports the kind of v. Arrays and objects are distinguished by
// their concrete types. A nil Value is classified as null.
func Classify(v Value) Kind {
	switch v.(type) {
	case String:
		return StringKind
	case Number:
		return NumberKind
	case Bool:
		return BoolKind
	case Array:
		return ArrayKind
	case Object:
		return ObjectKind
	default:
		return NullKind
	}
}

// An Object is a collection of key-value members, in the order they were
// written in the source.
type Object []*Member

func (Object) isValue() {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string // the unquoted key
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be a string, int, float, bool, nil, or ast.Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// JSON returns the compact encoding of m as a "key":value pair.
func (m *Member) JSON() string { return jview.Quote(m.Key) + ":" + m.Value.JSON() }

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Array is a sequence of values.
type Array []Value

func (Array) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a decoded string value.
type String string

func (String) isValue() {}

// JSON satisfies the Value interface. The result is quoted and escaped.
func (s String) JSON() string { return jview.Quote(string(s)) }

// A Number is a numeric value, represented by its source text.
type Number string

func (Number) isValue() {}

// Int constructs a Number from an integer.
func Int(z int64) Number { return Number(strconv.FormatInt(z, 10)) }

// Float constructs a Number from a floating-point value.
func Float(f float64) Number { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return string(n) }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) isValue() {}

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

type null struct{}

func (null) isValue() {}

func (null) JSON() string { return "null" }

// Null is the null constant.
var Null Value = null{}

// ToValue converts a string, int, float, bool, nil, or ast.Value into an
// ast.Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case bool:
		return Bool(t)
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
