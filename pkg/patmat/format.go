package patmat

import (
	"strconv"
	"strings"
)

func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

func (v Char) String() string { return strconv.QuoteRune(rune(v)) }

func (v String) String() string { return strconv.Quote(string(v)) }

func (v Tuple) String() string {
	if len(v) == 1 {
		return "(" + valueString(v[0]) + ",)"
	}
	return "(" + joinValues(v) + ")"
}

func (v Struct) String() string {
	var parts []string
	for _, f := range v.Fields {
		parts = append(parts, f.Name+": "+valueString(f.Value))
	}
	return braced(v.Name, parts)
}

func (v Variant) String() string {
	if len(v.Values) == 0 {
		return v.Name
	}
	return v.Name + "(" + joinValues(v.Values) + ")"
}

func joinValues(vals []Value) string {
	strs := make([]string, len(vals))
	for i, val := range vals {
		strs[i] = valueString(val)
	}
	return strings.Join(strs, ", ")
}

// braced renders `Name { a, b }`, `Name {}` or `{ a, b }`.
func braced(name string, parts []string) string {
	var sb strings.Builder
	sb.WriteString(name)
	if name != "" {
		sb.WriteString(" ")
	}
	if len(parts) == 0 {
		sb.WriteString("{}")
		return sb.String()
	}
	sb.WriteString("{ ")
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString(" }")
	return sb.String()
}

func (p LiteralPattern) String() string { return valueString(p.Value) }

func (WildcardPattern) String() string { return "_" }

func (p BindingPattern) String() string { return p.Name }

func (p AltPattern) String() string {
	strs := make([]string, len(p.Alts))
	for i, alt := range p.Alts {
		strs[i] = patternString(alt)
	}
	return strings.Join(strs, " | ")
}

func (p RangePattern) String() string {
	return valueString(p.Low) + "..=" + valueString(p.High)
}

func valueString(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

func patternString(p Pattern) string {
	if p == nil {
		return "<nil>"
	}
	return p.String()
}

func (p TuplePattern) String() string {
	if len(p.Elems) == 1 && !p.HasRest {
		return "(" + patternString(p.Elems[0]) + ",)"
	}
	return "(" + joinPositional(p.Elems, p.HasRest, p.RestAt) + ")"
}

func (p VariantPattern) String() string {
	if len(p.Elems) == 0 && !p.HasRest {
		return p.Name
	}
	return p.Name + "(" + joinPositional(p.Elems, p.HasRest, p.RestAt) + ")"
}

func joinPositional(elems []Pattern, hasRest bool, restAt int) string {
	var strs []string
	for i, elem := range elems {
		if hasRest && i == restAt {
			strs = append(strs, "..")
		}
		strs = append(strs, patternString(elem))
	}
	if hasRest && (restAt >= len(elems) || restAt < 0) {
		strs = append(strs, "..")
	}
	return strings.Join(strs, ", ")
}

func (p StructPattern) String() string {
	var parts []string
	for _, f := range p.Fields {
		if b, ok := f.Pattern.(BindingPattern); ok && b.Name == f.Name {
			parts = append(parts, f.Name)
			continue
		}
		parts = append(parts, f.Name+": "+patternString(f.Pattern))
	}
	if p.HasRest {
		parts = append(parts, "..")
	}
	return braced(p.Name, parts)
}

func (p AtPattern) String() string {
	return p.Name + " @ " + grouped(p.Inner)
}

func (p RefPattern) String() string {
	if p.Mutable {
		return "&mut " + grouped(p.Inner)
	}
	return "&" + grouped(p.Inner)
}

// grouped parenthesizes alternations so prefix operators bind to the
// whole of them.
func grouped(p Pattern) string {
	if alt, ok := p.(AltPattern); ok && len(alt.Alts) > 1 {
		return "(" + alt.String() + ")"
	}
	return patternString(p)
}

func (a Arm) String() string {
	var sb strings.Builder
	sb.WriteString(patternString(a.Pattern))
	if a.Guard != nil {
		sb.WriteString(" if ")
		if a.GuardText != "" {
			sb.WriteString(a.GuardText)
		} else {
			sb.WriteString("<guard>")
		}
	}
	sb.WriteString(" => ")
	sb.WriteString(string(a.Action))
	return sb.String()
}

func (m *Match) String() string {
	var sb strings.Builder
	sb.WriteString("match {\n")
	for _, arm := range m.arms {
		sb.WriteString("    ")
		sb.WriteString(arm.String())
		sb.WriteString(",\n")
	}
	sb.WriteString("}")
	return sb.String()
}
