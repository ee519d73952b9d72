package patmat

// Value is a runtime value that can be matched against a Pattern.
//
// The set of values is closed: Int, Char, String, Tuple, Struct and
// Variant are the only implementations.
type Value interface {
	String() string
	value()
}

// Int is an integer value.
type Int int64

// Char is a character value. Ranges compare characters by code point.
type Char rune

// String is a string value.
type String string

// Tuple is an ordered sequence of values.
type Tuple []Value

// Field is a single named field of a Struct.
type Field struct {
	Name  string
	Value Value
}

// Struct is a named record. Field order is kept for display only;
// lookups and equality go by name.
type Struct struct {
	Name   string
	Fields []Field
}

// Variant is an enum variant carrying zero or more positional values.
type Variant struct {
	Name   string
	Values []Value
}

func (Int) value()     {}
func (Char) value()    {}
func (String) value()  {}
func (Tuple) value()   {}
func (Struct) value()  {}
func (Variant) value() {}

var (
	_ Value = Int(0)
	_ Value = Char(0)
	_ Value = String("")
	_ Value = Tuple(nil)
	_ Value = Struct{}
	_ Value = Variant{}
)

// NewStruct builds a Struct.
func NewStruct(name string, fields ...Field) Struct {
	return Struct{Name: name, Fields: fields}
}

// NewVariant builds a Variant.
func NewVariant(name string, values ...Value) Variant {
	return Variant{Name: name, Values: values}
}

// Field returns the value of the named field.
func (s Struct) Field(name string) (Value, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Equal reports whether two values are structurally equal.
func Equal(left, right Value) bool {
	switch l := left.(type) {
	case Int:
		if r, ok := right.(Int); ok {
			return l == r
		}
	case Char:
		if r, ok := right.(Char); ok {
			return l == r
		}
	case String:
		if r, ok := right.(String); ok {
			return l == r
		}
	case Tuple:
		if r, ok := right.(Tuple); ok {
			return valuesEqual(l, r)
		}
	case Struct:
		if r, ok := right.(Struct); ok {
			if l.Name != r.Name || len(l.Fields) != len(r.Fields) {
				return false
			}
			return fieldsWithin(l, r) && fieldsWithin(r, l)
		}
	case Variant:
		if r, ok := right.(Variant); ok {
			return l.Name == r.Name && valuesEqual(l.Values, r.Values)
		}
	}
	return false
}

// fieldsWithin reports whether every field of s is found, equal, in other.
func fieldsWithin(s, other Struct) bool {
	for _, f := range s.Fields {
		v, found := other.Field(f.Name)
		if !found || !Equal(f.Value, v) {
			return false
		}
	}
	return true
}

func valuesEqual(left, right []Value) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !Equal(left[i], right[i]) {
			return false
		}
	}
	return true
}

// ordinal returns the comparable position of an Int or Char value.
func ordinal(v Value) (int64, kind, bool) {
	switch x := v.(type) {
	case Int:
		return int64(x), kindInt, true
	case Char:
		return int64(x), kindChar, true
	default:
		return 0, kindOther, false
	}
}

type kind int

const (
	kindOther kind = iota
	kindInt
	kindChar
)

func (k kind) String() string {
	switch k {
	case kindInt:
		return "integer"
	case kindChar:
		return "character"
	default:
		return "non-ordinal"
	}
}
