// Package entity models JSON values whose objects keep their key order, and
// converts nested entities to and from flat dotted-path variable lists.
package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which member of the JSON value sum type a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	ObjectKind
	Array
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case ObjectKind:
		return "object"
	case Array:
		return "array"
	}
	return "unknown"
}

// Value is a JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents, or the literal text of a number
	obj  *Object
	arr  []Value
}

func NullValue() Value { return Value{} }

func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

func StringValue(s string) Value { return Value{kind: String, s: s} }

// NumberValue keeps the literal text of n, so 123456.6 prints back verbatim.
func NumberValue(n json.Number) Value { return Value{kind: Number, s: string(n)} }

// FloatValue formats f the shortest way that round-trips, switching to
// exponent notation below 1e-6 and from 1e21 on, as the host's serializer does.
func FloatValue(f float64) Value {
	return Value{kind: Number, s: formatFloat(f)}
}

func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// 1e-07 becomes 1e-7
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: ObjectKind, obj: o}
}

func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, arr: items}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == Null }

func (v Value) AsString() (string, bool) { return v.s, v.kind == String }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == Bool }

func (v Value) AsNumber() (json.Number, bool) { return json.Number(v.s), v.kind == Number }

func (v Value) AsObject() (*Object, bool) { return v.obj, v.kind == ObjectKind }

func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == Array }

// Float returns the numeric value of a Number.
func (v Value) Float() (float64, bool) {
	if v.kind != Number {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Truthy mirrors the host's notion of an "empty" setting: null, false, 0,
// NaN and the empty string are falsy, everything else (including empty
// objects and arrays) is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case Null:
		return false
	case Bool:
		return v.b
	case String:
		return v.s != ""
	case Number:
		f, ok := v.Float()
		return ok && f != 0 && !math.IsNaN(f)
	}
	return true
}

// Text renders a leaf the way it appears in a variable value field. Strings
// are returned as-is; everything else uses its compact JSON form.
func (v Value) Text() string {
	switch v.kind {
	case String:
		return v.s
	case Number:
		return v.s
	case Bool:
		return strconv.FormatBool(v.b)
	case Null:
		return "null"
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

// Equal reports deep equality. Object key order is ignored and numbers are
// compared by value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Bool:
		return v.b == o.b
	case String:
		return v.s == o.s
	case Number:
		a, aok := v.Float()
		b, bok := o.Float()
		if !aok || !bok {
			return v.s == o.s
		}
		return a == b
	case ObjectKind:
		return v.obj.Equal(o.obj)
	case Array:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}
