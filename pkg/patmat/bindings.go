package patmat

import (
	"sort"
	"strings"
)

// BindingMode records how a binding captures the matched value.
type BindingMode int

const (
	// ByValue captures a copy of the value (default).
	ByValue BindingMode = iota
	// ByRef captures a shared reference.
	ByRef
	// ByRefMut captures a mutable reference.
	ByRefMut
)

func (m BindingMode) String() string {
	switch m {
	case ByRef:
		return "ref"
	case ByRefMut:
		return "ref mut"
	default:
		return "value"
	}
}

// Binding associates a name with the (sub)value it matched.
type Binding struct {
	Name  string
	Value Value
	Mode  BindingMode
}

// Bindings is the set of names produced by one successful match.
type Bindings map[string]Binding

// Get returns the value bound to name.
func (b Bindings) Get(name string) (Value, bool) {
	binding, ok := b[name]
	if !ok {
		return nil, false
	}
	return binding.Value, true
}

// Names returns the bound names in sorted order.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b Bindings) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range b.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		binding := b[name]
		sb.WriteString(name)
		switch binding.Mode {
		case ByRef:
			sb.WriteString(": &")
		case ByRefMut:
			sb.WriteString(": &mut ")
		default:
			sb.WriteString(": ")
		}
		sb.WriteString(valueString(binding.Value))
	}
	sb.WriteString("}")
	return sb.String()
}

func (b Bindings) set(name string, v Value) Bindings {
	if b == nil {
		b = Bindings{}
	}
	b[name] = Binding{Name: name, Value: v}
	return b
}

// merge copies other into b, returning the (possibly new) map.
func (b Bindings) merge(other Bindings) Bindings {
	if len(other) == 0 {
		return b
	}
	if b == nil {
		b = make(Bindings, len(other))
	}
	for name, binding := range other {
		b[name] = binding
	}
	return b
}
