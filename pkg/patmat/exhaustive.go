package patmat

// Irrefutable reports whether a pattern matches every value.
//
// Destructuring patterns are never considered irrefutable since the
// value's shape is not known ahead of time.
func Irrefutable(pattern Pattern) bool {
	switch p := pattern.(type) {
	case WildcardPattern, BindingPattern:
		return true
	case AtPattern:
		return Irrefutable(p.Inner)
	case RefPattern:
		return Irrefutable(p.Inner)
	case AltPattern:
		for _, alt := range p.Alts {
			if Irrefutable(alt) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// catchAll returns the index of the first arm that accepts every value,
// or -1. A guarded arm never counts, whatever its pattern.
func catchAll(arms []Arm) int {
	for i, arm := range arms {
		if arm.Guard == nil && Irrefutable(arm.Pattern) {
			return i
		}
	}
	return -1
}

// Exhaustive reports whether some arm is an unguarded catch-all, in
// which case Evaluate never fails with ErrNoMatch.
func (m *Match) Exhaustive() bool {
	return m.catchAll >= 0
}

// Unreachable returns the indices of arms that follow a catch-all and
// can therefore never be selected.
func (m *Match) Unreachable() []int {
	if m.catchAll < 0 {
		return nil
	}
	var idxs []int
	for i := m.catchAll + 1; i < len(m.arms); i++ {
		idxs = append(idxs, i)
	}
	return idxs
}
