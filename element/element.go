package element

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// State is a set of state flags of an element.
type State uint32

// State flags. The zero value None is not a state and is never matched.
const (
	None        State = 0
	Hovered     State = 1 << 0
	ActiveFocus State = 1 << 1
	VisualFocus State = 1 << 2
	Pressed     State = 1 << 3
	Checked     State = 1 << 4
	Disabled    State = 1 << 5
	Highlighted State = 1 << 6
	Hidden      State = 1 << 7
)

var stateNames = [...]string{
	"hovered", "active-focus", "visual-focus", "pressed",
	"checked", "disabled", "highlighted", "hidden",
}

// Has checks if all flags of other are contained in s. A zero other
// is never contained.
func (s State) Has(other State) bool {
	return other != None && s&other == other
}

func (s State) String() string {
	if s == None {
		return "none"
	}
	var names []string
	for i, n := range stateNames {
		if s&(1<<uint(i)) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

// StateFromName returns the state flag for a name as produced by State.String.
func StateFromName(name string) (State, bool) {
	for i, n := range stateNames {
		if n == name {
			return State(1 << uint(i)), true
		}
	}
	return None, false
}

// ColorSet selects one of a platform's color groups for an element.
type ColorSet uint8

// Color sets. NoColorSet is not a color set and is never matched.
const (
	NoColorSet ColorSet = iota
	Window
	View
	Button
	Selection
	Tooltip
	Complementary
	Header
)

var colorSetNames = [...]string{
	"none", "window", "view", "button", "selection", "tooltip", "complementary", "header",
}

func (cs ColorSet) String() string {
	if int(cs) < len(colorSetNames) {
		return colorSetNames[cs]
	}
	return fmt.Sprintf("colorset(%d)", uint8(cs))
}

// ColorSetFromName returns the color set for a name as produced by ColorSet.String.
func ColorSetFromName(name string) (ColorSet, bool) {
	for i, n := range colorSetNames {
		if i > 0 && n == name {
			return ColorSet(i), true
		}
	}
	return NoColorSet, false
}

// Element is the styling environment of a single UI node.
//
// Elements are values. The matching engine never modifies an element; owners
// may change elements between queries, but not while a query is running.
type Element struct {
	Type       string              // type name, e.g. "Button"
	ID         string              // unique id
	States     State               // set of active states
	ColorSet   ColorSet            // color group
	Hints      map[string]struct{} // free-form hints
	Attributes map[string]any      // key/value attributes
}

// New creates an element for a type name.
func New(typ string) Element {
	return Element{Type: typ}
}

// WithID returns a copy of e with an id set.
func (e Element) WithID(id string) Element {
	e.ID = id
	return e
}

// WithStates returns a copy of e with additional states set.
func (e Element) WithStates(s State) Element {
	e.States |= s
	return e
}

// WithColorSet returns a copy of e with a color set.
func (e Element) WithColorSet(cs ColorSet) Element {
	e.ColorSet = cs
	return e
}

// WithHints returns a copy of e with additional hints. The hint set of
// e is not shared with the copy.
func (e Element) WithHints(hints ...string) Element {
	h := make(map[string]struct{}, len(e.Hints)+len(hints))
	for k := range e.Hints {
		h[k] = struct{}{}
	}
	for _, k := range hints {
		if k != "" {
			h[k] = struct{}{}
		}
	}
	e.Hints = h
	return e
}

// WithAttribute returns a copy of e with an attribute set. The attribute map
// of e is not shared with the copy.
func (e Element) WithAttribute(key string, value any) Element {
	a := make(map[string]any, len(e.Attributes)+1)
	for k, v := range e.Attributes {
		a[k] = v
	}
	a[key] = value
	e.Attributes = a
	return e
}

// HasState checks for a state flag.
func (e Element) HasState(s State) bool {
	return e.States.Has(s)
}

// HasHint checks for a hint.
func (e Element) HasHint(hint string) bool {
	if hint == "" {
		return false
	}
	_, ok := e.Hints[hint]
	return ok
}

// Attribute returns an attribute value and an indicator wether it is present.
func (e Element) Attribute(key string) (any, bool) {
	if e.Attributes == nil {
		return nil, false
	}
	v, ok := e.Attributes[key]
	return v, ok
}

// SortedHints returns the hints of e in lexical order.
func (e Element) SortedHints() []string {
	hints := make([]string, 0, len(e.Hints))
	for h := range e.Hints {
		hints = append(hints, h)
	}
	sort.Strings(hints)
	return hints
}

// AttributeKeys returns the attribute keys of e in lexical order.
func (e Element) AttributeKeys() []string {
	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal checks if e and other agree in every field. A nil hint set or
// attribute map equals an empty one; attribute values are compared deeply.
func (e Element) Equal(other Element) bool {
	if e.Type != other.Type || e.ID != other.ID ||
		e.States != other.States || e.ColorSet != other.ColorSet {
		return false
	}
	if len(e.Hints) != len(other.Hints) || len(e.Attributes) != len(other.Attributes) {
		return false
	}
	for h := range e.Hints {
		if _, ok := other.Hints[h]; !ok {
			return false
		}
	}
	for k, v := range e.Attributes {
		w, ok := other.Attributes[k]
		if !ok || !reflect.DeepEqual(v, w) {
			return false
		}
	}
	return true
}

func (e Element) String() string {
	var b strings.Builder
	b.WriteString(e.Type)
	if e.ID != "" {
		b.WriteString("#" + e.ID)
	}
	if e.States != None {
		b.WriteString(":" + e.States.String())
	}
	if e.ColorSet != NoColorSet {
		b.WriteString("/" + e.ColorSet.String())
	}
	for _, h := range e.SortedHints() {
		b.WriteString("." + h)
	}
	for _, k := range e.AttributeKeys() {
		fmt.Fprintf(&b, "[%s=%v]", k, e.Attributes[k])
	}
	return b.String()
}
