package patmat

// MatchValue checks if a value matches a pattern and returns any bindings.
//
// On success the returned Bindings is never nil. On failure it is nil;
// partial bindings from a failed attempt are never exposed.
//
// MatchValue does not validate the pattern. Names bound twice by an
// unvalidated pattern resolve to the later binding; use Validate or
// Compile to reject such patterns up front.
func MatchValue(value Value, pattern Pattern) (bool, Bindings) {
	matched, bindings := matchPattern(pattern, value)
	if !matched {
		return false, nil
	}
	if bindings == nil {
		bindings = Bindings{}
	}
	return true, bindings
}

func matchPattern(pattern Pattern, value Value) (bool, Bindings) {
	switch p := pattern.(type) {
	case WildcardPattern:
		return true, nil

	case LiteralPattern:
		return Equal(p.Value, value), nil

	case BindingPattern:
		return true, Bindings{}.set(p.Name, value)

	case AltPattern:
		for _, alt := range p.Alts {
			if matched, bindings := matchPattern(alt, value); matched {
				return true, bindings
			}
		}
		return false, nil

	case RangePattern:
		return inRange(p, value), nil

	case TuplePattern:
		tuple, ok := value.(Tuple)
		if !ok {
			return false, nil
		}
		return matchSeq(p.Elems, p.HasRest, p.RestAt, tuple)

	case VariantPattern:
		variant, ok := value.(Variant)
		if !ok || variant.Name != p.Name {
			return false, nil
		}
		return matchSeq(p.Elems, p.HasRest, p.RestAt, variant.Values)

	case StructPattern:
		return matchStruct(p, value)

	case AtPattern:
		matched, bindings := matchPattern(p.Inner, value)
		if !matched {
			return false, nil
		}
		return true, bindings.set(p.Name, value)

	case RefPattern:
		matched, bindings := matchPattern(p.Inner, value)
		if !matched {
			return false, nil
		}
		mode := ByRef
		if p.Mutable {
			mode = ByRefMut
		}
		for name, binding := range bindings {
			// an inner reference pattern has already decided
			if binding.Mode == ByValue {
				binding.Mode = mode
				bindings[name] = binding
			}
		}
		return true, bindings

	default:
		return false, nil
	}
}

func inRange(p RangePattern, value Value) bool {
	v, valueKind, ok := ordinal(value)
	if !ok {
		return false
	}
	low, lowKind, _ := ordinal(p.Low)
	high, highKind, _ := ordinal(p.High)
	if lowKind != valueKind || highKind != valueKind {
		return false
	}
	return low <= v && v <= high
}

// matchSeq aligns positional patterns against values, honoring an
// optional rest marker placed after the first restAt patterns.
func matchSeq(elems []Pattern, hasRest bool, restAt int, values []Value) (bool, Bindings) {
	if !hasRest {
		if len(elems) != len(values) {
			return false, nil
		}
		return matchAligned(elems, values)
	}

	if restAt < 0 || restAt > len(elems) || len(values) < len(elems) {
		return false, nil
	}

	prefix, suffix := elems[:restAt], elems[restAt:]
	matched, bindings := matchAligned(prefix, values[:restAt])
	if !matched {
		return false, nil
	}
	matched, tail := matchAligned(suffix, values[len(values)-len(suffix):])
	if !matched {
		return false, nil
	}
	return true, bindings.merge(tail)
}

func matchAligned(elems []Pattern, values []Value) (bool, Bindings) {
	var bindings Bindings
	for i, elem := range elems {
		matched, sub := matchPattern(elem, values[i])
		if !matched {
			return false, nil
		}
		bindings = bindings.merge(sub)
	}
	return true, bindings
}

func matchStruct(p StructPattern, value Value) (bool, Bindings) {
	s, ok := value.(Struct)
	if !ok {
		return false, nil
	}
	if p.Name != "" && p.Name != s.Name {
		return false, nil
	}
	if !p.HasRest && len(p.Fields) != len(s.Fields) {
		return false, nil
	}

	var bindings Bindings
	for _, field := range p.Fields {
		fieldVal, found := s.Field(field.Name)
		if !found {
			return false, nil
		}
		matched, sub := matchPattern(field.Pattern, fieldVal)
		if !matched {
			return false, nil
		}
		bindings = bindings.merge(sub)
	}
	return true, bindings
}
