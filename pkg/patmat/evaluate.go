package patmat

import (
	"context"
	"log/slog"
	"slices"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
)

// Guard is a predicate evaluated after a successful structural match,
// with that match's bindings visible.
type Guard func(Bindings) bool

// Action identifies what the caller should do when an arm is selected.
type Action string

// Arm is a single case of a match: a pattern, an optional guard and the
// action selected when both accept the value.
//
// The guard applies to the pattern as a whole, so `4 | 5 if y` is gated
// by y whichever alternative matched.
type Arm struct {
	Pattern Pattern
	Guard   Guard
	Action  Action

	// GuardText describes the guard when rendering the arm.
	GuardText string
}

// Match is a validated, reusable set of arms.
type Match struct {
	arms     []Arm
	config   Config
	catchAll int
}

// Compile validates every arm's pattern and checks the arms for
// exhaustiveness and unreachable arms.
//
// Definition errors are returned as *PatternError. Missing catch-alls
// are logged, ignored, or returned as ErrNotExhaustive depending on the
// configured Exhaustiveness.
func Compile(arms []Arm, opts ...Option) (*Match, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.check(); err != nil {
		return nil, err
	}

	for i, arm := range arms {
		if err := validateArm(i, arm.Pattern); err != nil {
			return nil, err
		}
	}

	m := &Match{
		arms:     append([]Arm(nil), arms...),
		config:   config,
		catchAll: catchAll(arms),
	}

	logger := config.logger()
	switch config.mode() {
	case ExhaustivenessOff:
		// unreachable arms are still reported below
	case ExhaustivenessError:
		if !m.Exhaustive() {
			return nil, errors.Wrapf(ErrNotExhaustive, "none of %d arms is an unguarded catch-all", len(arms))
		}
	default:
		if !m.Exhaustive() {
			logger.Warn("match arms are not exhaustive; unmatched values yield no match",
				"arms", len(arms))
		}
	}

	for _, i := range m.Unreachable() {
		logger.Warn("unreachable match arm",
			"arm", i,
			"pattern", arms[i].Pattern.String(),
			"catchAll", m.catchAll)
	}

	return m, nil
}

// Evaluate validates the arms and selects the first one that accepts
// value. It is shorthand for Compile followed by (*Match).Evaluate, except
// that nothing is logged and missing catch-alls are not reported unless
// opts ask for it.
func Evaluate(value Value, arms []Arm, opts ...Option) (Action, Bindings, error) {
	opts = append([]Option{
		WithLogger(slog.New(slog.DiscardHandler)),
		WithExhaustiveness(ExhaustivenessOff),
	}, opts...)
	m, err := Compile(arms, opts...)
	if err != nil {
		return "", nil, err
	}
	return m.Evaluate(value)
}

// Arms returns a copy of the compiled arms in declaration order.
func (m *Match) Arms() []Arm {
	return slices.Clone(m.arms)
}

// Evaluate tries each arm in order. The first arm whose pattern matches
// and whose guard (if any) accepts the bindings is selected. Bindings of
// rejected arms are discarded.
//
// If no arm is selected the error wraps ErrNoMatch.
func (m *Match) Evaluate(value Value) (Action, Bindings, error) {
	logger := m.config.logger()
	debug := logger.Enabled(context.Background(), slog.LevelDebug)

	for i, arm := range m.arms {
		matched, bindings := MatchValue(value, arm.Pattern)
		if !matched {
			if debug {
				logger.Debug("arm did not match", "arm", i, "pattern", arm.Pattern.String())
			}
			continue
		}

		if arm.Guard != nil && !arm.Guard(bindings) {
			if debug {
				logger.Debug("guard rejected arm",
					"arm", i,
					"guard", arm.GuardText,
					"bindings", pretty.Sprint(bindings))
			}
			continue
		}

		if debug {
			logger.Debug("arm selected",
				"arm", i,
				"action", string(arm.Action),
				"bindings", pretty.Sprint(bindings))
		}
		return arm.Action, bindings, nil
	}

	return "", nil, errors.Wrapf(ErrNoMatch, "value %s", value)
}
