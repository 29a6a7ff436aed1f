package selector

import (
	"testing"

	"github.com/npillmayer/uistyle/element"
	"github.com/stretchr/testify/assert"
)

func button() element.Element {
	return element.New("Button").WithID("ok").
		WithStates(element.Hovered|element.Pressed).
		WithColorSet(element.Button).
		WithHints("flat").
		WithAttribute("text", "Confirm changes").
		WithAttribute("level", 2)
}

func TestSelectorMatches(t *testing.T) {
	e := button()
	tests := []struct {
		sel  Selector
		want bool
	}{
		{AnyElement(), true},
		{Type("Button"), true},
		{Type("Label"), false},
		{ID("ok"), true},
		{ID("cancel"), false},
		{State(element.Hovered), true},
		{State(element.Hovered | element.Pressed), true},
		{State(element.Disabled), false},
		{ColorSet(element.Button), true},
		{ColorSet(element.View), false},
		{Hint("flat"), true},
		{Hint("raised"), false},
		{AttributeExists("text"), true},
		{AttributeExists("icon"), false},
		{AttributeEquals("level", 2), true},
		{AttributeEquals("level", "2"), false},
		{AttributeEquals("level", 3), false},
		{AttributeSubstring("text", "changes"), true},
		{AttributeSubstring("level", "2"), true},
		{AttributeSubstring("text", "discard"), false},
		{AnyOf(Type("Label"), ID("ok")), true},
		{AnyOf(Type("Label"), ID("cancel")), false},
		{AllOf(Type("Button"), Hint("flat")), true},
		{AllOf(Type("Button"), Hint("raised")), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sel.Matches(e), "%s", tt.sel)
	}
}

func TestSelectorEmptyPayloadNeverMatches(t *testing.T) {
	empty := []Selector{
		Type(""),
		ID(""),
		State(element.None),
		ColorSet(element.NoColorSet),
		Hint(""),
		AttributeExists(""),
		AttributeEquals("", 1),
		AttributeEquals("level", nil),
		AttributeSubstring("", "x"),
		AttributeSubstring("text", ""),
		AnyOf(),
		AllOf(),
	}
	elements := []element.Element{
		{},
		element.New("").WithHints().WithAttribute("", nil),
		button(),
	}
	for _, s := range empty {
		for _, e := range elements {
			assert.False(t, s.Matches(e), "%s must not match %q", s, e)
		}
	}
}

func TestSelectorWeights(t *testing.T) {
	assert.Equal(t, 1, Type("Button").Weight())
	assert.Equal(t, 100, ID("ok").Weight())
	for _, s := range []Selector{AnyElement(), State(element.Hovered), ColorSet(element.View),
		Hint("flat"), AttributeExists("a"), AttributeEquals("a", 1), AttributeSubstring("a", "b")} {
		assert.Equal(t, 10, s.Weight(), "%s", s)
	}
}

func TestSelectorWeightComposition(t *testing.T) {
	pairs := [][2]Selector{
		{Type("Button"), ID("ok")},
		{Hint("flat"), Type("Label")},
		{ID("a"), ID("b")},
		{AllOf(Type("X"), Hint("y")), AnyOf(ID("z"), Type("W"))},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		assert.Equal(t, a.Weight()+b.Weight(), AllOf(a, b).Weight(), "AllOf(%s, %s)", a, b)
		max := a.Weight()
		if b.Weight() > max {
			max = b.Weight()
		}
		assert.Equal(t, max, AnyOf(a, b).Weight(), "AnyOf(%s, %s)", a, b)
	}
	assert.Equal(t, 0, AnyOf().Weight())
	assert.Equal(t, 0, AllOf().Weight())
}

func TestSelectorConstructorsCopyChildren(t *testing.T) {
	sels := []Selector{Type("A"), Type("B")}
	s := AllOf(sels...)
	sels[0] = Type("C")
	assert.Equal(t, KindType, s.Children()[0].Kind())
	assert.True(t, s.Children()[0].Matches(element.New("A")))
	assert.Equal(t, "AllOf(Type(A), Type(B))", s.String())
}
