package patmat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(x, y int64) Struct {
	return NewStruct("Point", Field{"x", Int(x)}, Field{"y", Int(y)})
}

func TestMatchValueLiteral(t *testing.T) {
	cases := []struct {
		name    string
		pattern Pattern
		value   Value
		matched bool
	}{
		{"equal ints", Lit(Int(1)), Int(1), true},
		{"different ints", Lit(Int(1)), Int(2), false},
		{"int is not char", Lit(Int(97)), Char('a'), false},
		{"chars", Lit(Char('x')), Char('x'), true},
		{"strings", Lit(String("hi")), String("hi"), true},
		{"tuples", Lit(Tuple{Int(1), String("a")}), Tuple{Int(1), String("a")}, true},
		{"tuple length", Lit(Tuple{Int(1)}), Tuple{Int(1), Int(2)}, false},
		{"struct field order ignored", Lit(point(1, 2)), NewStruct("Point", Field{"y", Int(2)}, Field{"x", Int(1)}), true},
		{"struct name", Lit(point(1, 2)), NewStruct("Vec", Field{"x", Int(1)}, Field{"y", Int(2)}), false},
		{"variants", Lit(NewVariant("Some", Int(3))), NewVariant("Some", Int(3)), true},
		{"unit variant", Lit(NewVariant("None")), NewVariant("Some", Int(3)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched, bindings := MatchValue(tc.value, tc.pattern)
			assert.Equal(t, tc.matched, matched)
			if matched {
				assert.Empty(t, bindings)
			} else {
				assert.Nil(t, bindings)
			}
		})
	}
}

func TestMatchValueWildcardAndBinding(t *testing.T) {
	t.Run("wildcard binds nothing", func(t *testing.T) {
		matched, bindings := MatchValue(String("anything"), Wild())
		require.True(t, matched)
		assert.NotNil(t, bindings)
		assert.Empty(t, bindings)
	})

	t.Run("binding binds the value", func(t *testing.T) {
		matched, bindings := MatchValue(Int(5), Bind("x"))
		require.True(t, matched)
		v, ok := bindings.Get("x")
		require.True(t, ok)
		assert.Equal(t, Int(5), v)
		assert.Equal(t, ByValue, bindings["x"].Mode)
	})
}

func TestMatchValueAlternation(t *testing.T) {
	one, two := Lit(Int(1)), Lit(Int(2))
	alt := Or(one, two)

	for _, v := range []Int{0, 1, 2, 3} {
		aMatched, _ := MatchValue(v, one)
		bMatched, _ := MatchValue(v, two)
		matched, _ := MatchValue(v, alt)
		assert.Equal(t, aMatched || bMatched, matched, "value %d", v)
	}

	t.Run("bindings come from the first matching branch", func(t *testing.T) {
		p := Or(
			VariantOf("Left", Bind("x")),
			VariantOf("Right", Bind("x")),
		)
		matched, bindings := MatchValue(NewVariant("Right", String("r")), p)
		require.True(t, matched)
		assert.Equal(t, Bindings{"x": {Name: "x", Value: String("r")}}, bindings)
	})

	t.Run("earlier branch wins", func(t *testing.T) {
		p := Or(At("x", Lit(Int(1))), Bind("x"))
		matched, bindings := MatchValue(Int(1), p)
		require.True(t, matched)
		assert.Equal(t, Bindings{"x": {Name: "x", Value: Int(1)}}, bindings)
	})
}

func TestMatchValueRange(t *testing.T) {
	ints := Range(Int(1), Int(5))
	for v := Int(0); v <= 6; v++ {
		matched, _ := MatchValue(v, ints)
		assert.Equal(t, v >= 1 && v <= 5, matched, "value %d", v)
	}

	chars := Range(Char('a'), Char('j'))
	for _, tc := range []struct {
		value   Value
		matched bool
	}{
		{Char('a'), true},
		{Char('c'), true},
		{Char('j'), true},
		{Char('k'), false},
		{Char('A'), false},
		{Int('c'), false},
		{String("c"), false},
	} {
		matched, _ := MatchValue(tc.value, chars)
		assert.Equal(t, tc.matched, matched, "value %s", tc.value)
	}
}

func TestMatchValueTuple(t *testing.T) {
	t.Run("exact arity", func(t *testing.T) {
		p := TupleOf(Bind("x"), Wild(), Bind("z"))
		matched, bindings := MatchValue(Tuple{Int(1), Int(2), Int(3)}, p)
		require.True(t, matched)
		assert.Equal(t, []string{"x", "z"}, bindings.Names())
		assert.Equal(t, Int(1), bindings["x"].Value)
		assert.Equal(t, Int(3), bindings["z"].Value)
	})

	t.Run("arity mismatch is a non-match", func(t *testing.T) {
		p := TupleOf(Bind("x"), Bind("y"))
		matched, bindings := MatchValue(Tuple{Int(1), Int(2), Int(3)}, p)
		assert.False(t, matched)
		assert.Nil(t, bindings)
	})

	t.Run("not a tuple", func(t *testing.T) {
		matched, _ := MatchValue(Int(1), TupleOf(Wild()))
		assert.False(t, matched)
	})

	numbers := Tuple{Int(2), Int(4), Int(8), Int(16), Int(32)}

	t.Run("rest after prefix", func(t *testing.T) {
		matched, bindings := MatchValue(numbers, TupleRest(1, Bind("first")))
		require.True(t, matched)
		assert.Equal(t, Int(2), bindings["first"].Value)
		assert.Len(t, bindings, 1)
	})

	t.Run("rest before suffix", func(t *testing.T) {
		matched, bindings := MatchValue(numbers, TupleRest(0, Bind("last")))
		require.True(t, matched)
		assert.Equal(t, Int(32), bindings["last"].Value)
	})

	t.Run("rest in the middle", func(t *testing.T) {
		matched, bindings := MatchValue(numbers, TupleRest(1, Bind("first"), Bind("last")))
		require.True(t, matched)
		assert.Equal(t, Int(2), bindings["first"].Value)
		assert.Equal(t, Int(32), bindings["last"].Value)
	})

	t.Run("rest may be empty", func(t *testing.T) {
		matched, _ := MatchValue(Tuple{Int(1), Int(2)}, TupleRest(1, Lit(Int(1)), Lit(Int(2))))
		assert.True(t, matched)
	})

	t.Run("rest needs the fixed elements", func(t *testing.T) {
		matched, _ := MatchValue(Tuple{Int(1)}, TupleRest(1, Bind("a"), Bind("b")))
		assert.False(t, matched)
	})

	t.Run("rest with failing suffix", func(t *testing.T) {
		matched, _ := MatchValue(numbers, TupleRest(1, Wild(), Lit(Int(64))))
		assert.False(t, matched)
	})
}

func TestMatchValueStruct(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		p := StructOf("Point", F("x", nil), F("y", Lit(Int(0))))
		matched, bindings := MatchValue(point(7, 0), p)
		require.True(t, matched)
		assert.Equal(t, Bindings{"x": {Name: "x", Value: Int(7)}}, bindings)

		matched, _ = MatchValue(point(7, 1), p)
		assert.False(t, matched)
	})

	t.Run("field renamed", func(t *testing.T) {
		p := StructOf("Point", F("x", Bind("a")), F("y", Bind("b")))
		matched, bindings := MatchValue(point(3, 4), p)
		require.True(t, matched)
		assert.Equal(t, []string{"a", "b"}, bindings.Names())
	})

	t.Run("missing fields without rest", func(t *testing.T) {
		p := StructOf("Point", F("x", nil))
		matched, _ := MatchValue(point(1, 2), p)
		assert.False(t, matched)
	})

	t.Run("rest ignores unnamed fields", func(t *testing.T) {
		p := StructRest("Point", F("x", nil))
		matched, bindings := MatchValue(point(1, 2), p)
		require.True(t, matched)
		assert.Equal(t, []string{"x"}, bindings.Names())
	})

	t.Run("named field must exist", func(t *testing.T) {
		p := StructRest("Point", F("z", nil))
		matched, _ := MatchValue(point(1, 2), p)
		assert.False(t, matched)
	})

	t.Run("struct name", func(t *testing.T) {
		matched, _ := MatchValue(point(1, 2), StructRest("Vec"))
		assert.False(t, matched)

		matched, _ = MatchValue(point(1, 2), StructRest(""))
		assert.True(t, matched)
	})

	t.Run("nested", func(t *testing.T) {
		line := NewStruct("Line", Field{"from", point(0, 0)}, Field{"to", point(3, 4)})
		p := StructRest("Line", F("to", StructOf("Point", F("x", nil), F("y", nil))))
		matched, bindings := MatchValue(line, p)
		require.True(t, matched)
		assert.Equal(t, Int(3), bindings["x"].Value)
		assert.Equal(t, Int(4), bindings["y"].Value)
	})
}

func TestMatchValueVariant(t *testing.T) {
	msg := NewVariant("Move", Int(1), Int(2), Int(3))

	matched, bindings := MatchValue(msg, VariantOf("Move", Bind("x"), Bind("y"), Wild()))
	require.True(t, matched)
	assert.Equal(t, []string{"x", "y"}, bindings.Names())

	matched, _ = MatchValue(msg, VariantOf("Quit"))
	assert.False(t, matched)

	matched, _ = MatchValue(NewVariant("Quit"), VariantOf("Quit"))
	assert.True(t, matched)

	matched, bindings = MatchValue(msg, VariantRest("Move", 0, Bind("z")))
	require.True(t, matched)
	assert.Equal(t, Int(3), bindings["z"].Value)

	matched, _ = MatchValue(Tuple{Int(1)}, VariantOf("Move", Wild()))
	assert.False(t, matched)
}

func TestMatchValueAt(t *testing.T) {
	t.Run("binds whole value and inner bindings", func(t *testing.T) {
		matched, bindings := MatchValue(Int(7), At("a", Bind("a2")))
		require.True(t, matched)
		assert.Equal(t, Int(7), bindings["a"].Value)
		assert.Equal(t, Int(7), bindings["a2"].Value)
	})

	t.Run("with range", func(t *testing.T) {
		p := At("id", Range(Int(3), Int(7)))
		matched, bindings := MatchValue(Int(5), p)
		require.True(t, matched)
		assert.Equal(t, Int(5), bindings["id"].Value)

		matched, bindings = MatchValue(Int(8), p)
		assert.False(t, matched)
		assert.Nil(t, bindings)
	})

	t.Run("on a destructured value", func(t *testing.T) {
		p := At("whole", TupleOf(Bind("a"), Wild()))
		v := Tuple{Int(1), Int(2)}
		matched, bindings := MatchValue(v, p)
		require.True(t, matched)
		assert.Equal(t, Value(v), bindings["whole"].Value)
		assert.Equal(t, Int(1), bindings["a"].Value)
	})
}

func TestMatchValueRef(t *testing.T) {
	t.Run("shared", func(t *testing.T) {
		matched, bindings := MatchValue(Int(1), Ref(Bind("r")))
		require.True(t, matched)
		assert.Equal(t, ByRef, bindings["r"].Mode)
	})

	t.Run("mutable", func(t *testing.T) {
		matched, bindings := MatchValue(point(1, 2), RefMut(StructOf("Point", F("x", nil), F("y", nil))))
		require.True(t, matched)
		want := Bindings{
			"x": {Name: "x", Value: Int(1), Mode: ByRefMut},
			"y": {Name: "y", Value: Int(2), Mode: ByRefMut},
		}
		if diff := cmp.Diff(want, bindings); diff != "" {
			t.Errorf("bindings mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("inner reference wins", func(t *testing.T) {
		p := Ref(TupleOf(RefMut(Bind("m")), Bind("s")))
		matched, bindings := MatchValue(Tuple{Int(1), Int(2)}, p)
		require.True(t, matched)
		assert.Equal(t, ByRefMut, bindings["m"].Mode)
		assert.Equal(t, ByRef, bindings["s"].Mode)
	})

	t.Run("matching rule unchanged", func(t *testing.T) {
		matched, _ := MatchValue(Int(2), Ref(Lit(Int(1))))
		assert.False(t, matched)
	})
}
