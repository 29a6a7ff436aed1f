package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateHas(t *testing.T) {
	s := Hovered | Pressed
	assert.True(t, s.Has(Hovered))
	assert.True(t, s.Has(Hovered|Pressed))
	assert.False(t, s.Has(Hovered|Disabled))
	assert.False(t, s.Has(None), "zero state must never be contained")
	assert.Equal(t, "hovered|pressed", s.String())
}

func TestStateAndColorSetNames(t *testing.T) {
	st, ok := StateFromName("disabled")
	assert.True(t, ok)
	assert.Equal(t, Disabled, st)
	_, ok = StateFromName("none")
	assert.False(t, ok)
	cs, ok := ColorSetFromName("tooltip")
	assert.True(t, ok)
	assert.Equal(t, Tooltip, cs)
	_, ok = ColorSetFromName("none")
	assert.False(t, ok)
}

func TestElementBuildersDoNotShareMaps(t *testing.T) {
	base := New("Button").WithHints("flat")
	derived := base.WithHints("default").WithAttribute("checkable", true)
	assert.False(t, base.HasHint("default"))
	assert.True(t, derived.HasHint("flat"))
	assert.True(t, derived.HasHint("default"))
	_, ok := base.Attribute("checkable")
	assert.False(t, ok)
	v, ok := derived.Attribute("checkable")
	assert.True(t, ok)
	assert.Equal(t, true, v)
	assert.False(t, derived.HasHint(""))
}

func TestElementString(t *testing.T) {
	e := New("Button").WithID("ok").WithStates(Hovered).WithColorSet(Button).
		WithHints("flat").WithAttribute("level", 2)
	assert.Equal(t, "Button#ok:hovered/button.flat[level=2]", e.String())
}

func TestChainLeaf(t *testing.T) {
	_, ok := Chain{}.Leaf()
	assert.False(t, ok)
	leaf, ok := Chain{New("Window"), New("Button")}.Leaf()
	assert.True(t, ok)
	assert.Equal(t, "Button", leaf.Type)
}

func TestFingerprintEqualChains(t *testing.T) {
	a := Chain{New("Window"), New("Button").WithHints("x", "y").WithAttribute("k", "v")}
	b := Chain{New("Window"), New("Button").WithHints("y", "x").WithAttribute("k", "v")}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintIsOrderSensitive(t *testing.T) {
	a := Chain{New("Window"), New("Panel")}
	b := Chain{New("Panel"), New("Window")}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintCoversAllFields(t *testing.T) {
	base := New("Button")
	variants := []Element{
		base.WithID("ok"),
		base.WithStates(Pressed),
		base.WithColorSet(View),
		base.WithHints("flat"),
		base.WithAttribute("k", 1),
		base.WithAttribute("k", "1"),
	}
	seen := map[uint64]int{Chain{base}.Fingerprint(): -1}
	for i, v := range variants {
		fp := Chain{v}.Fingerprint()
		if j, dup := seen[fp]; dup {
			t.Errorf("variant %d (%s) collides with variant %d", i, v, j)
		}
		seen[fp] = i
	}
}

// Attribute values which AttributeEquals tells apart must yield distinct
// fingerprints, even if they print alike with %v.
func TestFingerprintCompositeAttributes(t *testing.T) {
	type point struct{ X, Y int }
	cases := []struct {
		name string
		a, b any
	}{
		{"slice elements", []string{"a", "b"}, []string{"a b"}},
		{"slice vs string", []string{"a"}, "[a]"},
		{"map values", map[string]string{"k": "a b"}, map[string]string{"k": "a", "b": ""}},
		{"struct vs slice", point{1, 2}, []int{1, 2}},
		{"int vs int64", 1, int64(1)},
		{"nil slice vs empty", []int(nil), []int{}},
	}
	for _, c := range cases {
		ea := New("Button").WithAttribute("v", c.a)
		eb := New("Button").WithAttribute("v", c.b)
		assert.False(t, ea.Equal(eb), c.name)
		assert.NotEqual(t, Chain{ea}.Fingerprint(), Chain{eb}.Fingerprint(), c.name)
	}
}

func TestElementEqual(t *testing.T) {
	a := New("Button").WithID("ok").WithHints("x").WithAttribute("tags", []string{"a", "b"})
	b := New("Button").WithID("ok").WithHints("x").WithAttribute("tags", []string{"a", "b"})
	assert.True(t, a.Equal(b))
	assert.True(t, Chain{New("A"), a}.Equal(Chain{New("A"), b}))
	assert.False(t, Chain{a}.Equal(Chain{New("A"), b}))
	assert.False(t, a.Equal(b.WithStates(Pressed)))
	assert.False(t, a.Equal(b.WithHints("y")))
	assert.True(t, New("A").Equal(Element{Type: "A", Hints: map[string]struct{}{}}), "nil and empty hints are equal")
}

func TestChainClone(t *testing.T) {
	c := Chain{New("Button").WithHints("flat").WithAttribute("k", 1)}
	clone := c.Clone()
	require.True(t, clone.Equal(c))
	delete(c[0].Hints, "flat")
	c[0].Attributes["k"] = 2
	assert.True(t, clone[0].HasHint("flat"))
	v, _ := clone[0].Attribute("k")
	assert.Equal(t, 1, v)
	assert.Nil(t, Chain(nil).Clone())
}

func TestFingerprintFieldBoundaries(t *testing.T) {
	a := Chain{New("ab").WithID("c")}
	b := Chain{New("a").WithID("bc")}
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
