package patmat

// Pattern describes the shape a Value must have for an arm to be
// selected, and which parts of it get bound to names.
//
// Like Value, the set of patterns is closed.
type Pattern interface {
	String() string
	pattern()
}

// LiteralPattern matches values structurally equal to Value.
type LiteralPattern struct {
	Value Value
}

// WildcardPattern represents the wildcard pattern '_'
type WildcardPattern struct{}

// BindingPattern matches anything and binds it to Name.
type BindingPattern struct {
	Name string
}

// AltPattern matches if any of its alternatives match, tried in order.
// Every alternative must bind the same set of names.
type AltPattern struct {
	Alts []Pattern
}

// RangePattern matches Int or Char values in the inclusive range
// [Low, High]. Both endpoints must be of the same kind.
type RangePattern struct {
	Low  Value
	High Value
}

// TuplePattern destructures a Tuple.
//
// Without a rest marker the tuple must have exactly len(Elems) values.
// With one, the first RestAt patterns match a prefix, the remaining
// patterns match a suffix, and anything in between is skipped.
type TuplePattern struct {
	Elems   []Pattern
	HasRest bool
	RestAt  int
}

// FieldPattern matches the named field of a Struct.
type FieldPattern struct {
	Name    string
	Pattern Pattern
}

// StructPattern destructures a Struct. An empty Name matches a struct
// of any name. Without HasRest, the pattern must mention every field.
type StructPattern struct {
	Name    string
	Fields  []FieldPattern
	HasRest bool
}

// VariantPattern destructures an enum Variant of the given name. Its
// positional values are aligned the same way as TuplePattern.
type VariantPattern struct {
	Name    string
	Elems   []Pattern
	HasRest bool
	RestAt  int
}

// AtPattern matches Inner and also binds the whole value to Name, as in
// `id @ 3..=7`.
type AtPattern struct {
	Name  string
	Inner Pattern
}

// RefPattern matches exactly as Inner does, but marks every binding it
// produces as a (possibly mutable) reference.
type RefPattern struct {
	Inner   Pattern
	Mutable bool
}

func (LiteralPattern) pattern()  {}
func (WildcardPattern) pattern() {}
func (BindingPattern) pattern()  {}
func (AltPattern) pattern()      {}
func (RangePattern) pattern()    {}
func (TuplePattern) pattern()    {}
func (StructPattern) pattern()   {}
func (VariantPattern) pattern()  {}
func (AtPattern) pattern()       {}
func (RefPattern) pattern()      {}

var (
	_ Pattern = LiteralPattern{}
	_ Pattern = WildcardPattern{}
	_ Pattern = BindingPattern{}
	_ Pattern = AltPattern{}
	_ Pattern = RangePattern{}
	_ Pattern = TuplePattern{}
	_ Pattern = StructPattern{}
	_ Pattern = VariantPattern{}
	_ Pattern = AtPattern{}
	_ Pattern = RefPattern{}
)

// Lit matches values equal to v.
func Lit(v Value) Pattern { return LiteralPattern{Value: v} }

// Wild matches anything without binding it.
func Wild() Pattern { return WildcardPattern{} }

// Bind matches anything and binds it to name.
func Bind(name string) Pattern { return BindingPattern{Name: name} }

// Or matches the first of alts that matches.
func Or(alts ...Pattern) Pattern { return AltPattern{Alts: alts} }

// Range matches Int or Char values between low and high inclusive.
func Range(low, high Value) Pattern { return RangePattern{Low: low, High: high} }

// At binds the whole value to name when inner matches.
func At(name string, inner Pattern) Pattern { return AtPattern{Name: name, Inner: inner} }

// Ref matches as inner, binding by shared reference.
func Ref(inner Pattern) Pattern { return RefPattern{Inner: inner} }

// RefMut matches as inner, binding by mutable reference.
func RefMut(inner Pattern) Pattern { return RefPattern{Inner: inner, Mutable: true} }

// TupleOf matches a tuple of exactly len(elems) values.
func TupleOf(elems ...Pattern) Pattern {
	return TuplePattern{Elems: elems}
}

// TupleRest matches a tuple with a rest marker placed after the first
// restAt elements, e.g. TupleRest(1, x, z) is `(x, .., z)`.
func TupleRest(restAt int, elems ...Pattern) Pattern {
	return TuplePattern{Elems: elems, HasRest: true, RestAt: restAt}
}

// StructOf matches a struct whose fields are all named by the pattern.
func StructOf(name string, fields ...FieldPattern) Pattern {
	return StructPattern{Name: name, Fields: fields}
}

// StructRest matches a struct, ignoring fields the pattern does not name.
func StructRest(name string, fields ...FieldPattern) Pattern {
	return StructPattern{Name: name, Fields: fields, HasRest: true}
}

// F pairs a field name with its pattern. A nil pattern is shorthand for
// binding the field to a name of its own, as in `Point { x, y }`.
func F(name string, p Pattern) FieldPattern {
	if p == nil {
		p = BindingPattern{Name: name}
	}
	return FieldPattern{Name: name, Pattern: p}
}

// VariantOf matches the named variant with exactly len(elems) values.
func VariantOf(name string, elems ...Pattern) Pattern {
	return VariantPattern{Name: name, Elems: elems}
}

// VariantRest matches the named variant with a rest marker after the
// first restAt elements.
func VariantRest(name string, restAt int, elems ...Pattern) Pattern {
	return VariantPattern{Name: name, Elems: elems, HasRest: true, RestAt: restAt}
}
