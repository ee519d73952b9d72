package patmat

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Validate checks a pattern for definition errors: alternatives that
// bind different names, names bound twice, malformed ranges, misplaced
// rest markers, repeated struct fields and missing (nil) sub-patterns.
//
// Any error returned is a *PatternError wrapping one of the Err*
// definition errors.
func Validate(pattern Pattern) error {
	return validateArm(-1, pattern)
}

func validateArm(arm int, pattern Pattern) error {
	v := &validator{}
	if _, err := v.bound(pattern); err != nil {
		return &PatternError{
			Inner:   err,
			Arm:     arm,
			Path:    v.failedAt,
			Pattern: pattern,
		}
	}
	return nil
}

// BoundNames returns the names a pattern binds, sorted. The pattern is
// assumed to be valid.
func BoundNames(pattern Pattern) []string {
	v := &validator{}
	names, _ := v.bound(pattern)
	return names.sorted()
}

type nameSet map[string]struct{}

func (s nameSet) sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s nameSet) equal(other nameSet) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if _, ok := other[name]; !ok {
			return false
		}
	}
	return true
}

type validator struct {
	path     []string
	failedAt []string
}

func (v *validator) fail(err error) (nameSet, error) {
	v.failedAt = append([]string(nil), v.path...)
	return nil, err
}

// within collects the names bound by p with seg pushed onto the path.
func (v *validator) within(seg string, p Pattern) (nameSet, error) {
	v.path = append(v.path, seg)
	names, err := v.bound(p)
	v.path = v.path[:len(v.path)-1]
	return names, err
}

// bound returns the set of names bound by p, or the first definition
// error found in it.
func (v *validator) bound(pattern Pattern) (nameSet, error) {
	if pattern == nil {
		return v.fail(ErrNilPattern)
	}
	switch p := pattern.(type) {
	case WildcardPattern, LiteralPattern:
		return nameSet{}, nil

	case BindingPattern:
		return nameSet{p.Name: {}}, nil

	case AltPattern:
		if len(p.Alts) == 0 {
			return v.fail(ErrEmptyAlternation)
		}
		var first nameSet
		for i, alt := range p.Alts {
			names, err := v.within("|"+strconv.Itoa(i), alt)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				first = names
				continue
			}
			if !first.equal(names) {
				v.failedAt = append(append([]string(nil), v.path...), "|"+strconv.Itoa(i))
				return nil, errors.Wrapf(ErrInconsistentAlternation,
					"alternative %d binds [%s], alternative 0 binds [%s]",
					i, strings.Join(names.sorted(), ", "), strings.Join(first.sorted(), ", "))
			}
		}
		return first, nil

	case RangePattern:
		low, lowKind, lowOK := ordinal(p.Low)
		high, highKind, highOK := ordinal(p.High)
		if !lowOK || !highOK {
			return v.fail(ErrRangeEndpoint)
		}
		if lowKind != highKind {
			return v.fail(errors.Wrapf(ErrRangeKindMismatch, "%s..=%s", lowKind, highKind))
		}
		if low > high {
			return v.fail(errors.Wrapf(ErrEmptyRange, "%s > %s", p.Low, p.High))
		}
		return nameSet{}, nil

	case TuplePattern:
		return v.positional(p.Elems, p.HasRest, p.RestAt)

	case VariantPattern:
		return v.positional(p.Elems, p.HasRest, p.RestAt)

	case StructPattern:
		seen := map[string]bool{}
		names := nameSet{}
		for _, field := range p.Fields {
			if seen[field.Name] {
				return v.fail(errors.Wrapf(ErrDuplicateField, "field %q", field.Name))
			}
			seen[field.Name] = true
			sub, err := v.within(field.Name, field.Pattern)
			if err != nil {
				return nil, err
			}
			if err := v.union(names, sub); err != nil {
				return nil, err
			}
		}
		return names, nil

	case AtPattern:
		names, err := v.within(p.Name+" @", p.Inner)
		if err != nil {
			return nil, err
		}
		if err := v.union(names, nameSet{p.Name: {}}); err != nil {
			return nil, err
		}
		return names, nil

	case RefPattern:
		return v.within("&", p.Inner)

	default:
		return v.fail(errors.Errorf("unknown pattern type: %T", pattern))
	}
}

func (v *validator) positional(elems []Pattern, hasRest bool, restAt int) (nameSet, error) {
	if hasRest && (restAt < 0 || restAt > len(elems)) {
		return v.fail(errors.Wrapf(ErrRestPosition, "rest after %d of %d elements", restAt, len(elems)))
	}
	names := nameSet{}
	for i, elem := range elems {
		sub, err := v.within(strconv.Itoa(i), elem)
		if err != nil {
			return nil, err
		}
		if err := v.union(names, sub); err != nil {
			return nil, err
		}
	}
	return names, nil
}

// union adds sub to names, failing on the first name present in both.
func (v *validator) union(names, sub nameSet) error {
	for _, name := range sub.sorted() {
		if _, dup := names[name]; dup {
			_, err := v.fail(errors.Wrapf(ErrDuplicateBinding, "%q", name))
			return err
		}
		names[name] = struct{}{}
	}
	return nil
}
