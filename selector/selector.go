/*
Package selector implements the pattern language used to match style rules
against UI elements.

A Selector is a predicate on a single element.Element. Selectors come in
a closed set of kinds (type, id, state, hint, attributes, …) plus two
composites, AnyOf and AllOf. Every selector has a weight, used to rank
competing rules (think CSS specificity):

	Type        1
	ID          100
	AnyOf       maximum weight of its children
	AllOf       sum of the weights of its children
	all others  10

Selectors constructed from an empty payload (empty string, zero flag,
nil value, no children) never match anything. Rule loaders may rely on
this to express "match nothing" without special cases.

A List is the pattern of a complete rule. It is matched against an
element chain, see List.Matches.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package selector

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/uistyle/element"
)

// Kind is the tag of a selector.
type Kind uint8

// Selector kinds.
const (
	KindAnyElement Kind = iota
	KindType
	KindID
	KindState
	KindColorSet
	KindHint
	KindAttributeExists
	KindAttributeEquals
	KindAttributeSubstring
	KindAnyOf
	KindAllOf
)

var kindNames = [...]string{
	"AnyElement", "Type", "ID", "State", "ColorSet", "Hint",
	"AttributeExists", "AttributeEquals", "AttributeSubstring", "AnyOf", "AllOf",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Selector is a matching predicate on an element. Selectors are values and
// immutable once constructed.
type Selector struct {
	kind     Kind
	name     string // type, id, hint, attribute key
	text     string // attribute substring
	value    any    // attribute value
	state    element.State
	colorSet element.ColorSet
	children List
}

// AnyElement matches every element.
func AnyElement() Selector {
	return Selector{kind: KindAnyElement}
}

// Type matches elements with a given type name.
func Type(typ string) Selector {
	return Selector{kind: KindType, name: typ}
}

// ID matches elements with a given id.
func ID(id string) Selector {
	return Selector{kind: KindID, name: id}
}

// State matches elements which have all flags of s set.
func State(s element.State) Selector {
	return Selector{kind: KindState, state: s}
}

// ColorSet matches elements with a given color set.
func ColorSet(cs element.ColorSet) Selector {
	return Selector{kind: KindColorSet, colorSet: cs}
}

// Hint matches elements carrying a given hint.
func Hint(hint string) Selector {
	return Selector{kind: KindHint, name: hint}
}

// AttributeExists matches elements which have an attribute key.
func AttributeExists(key string) Selector {
	return Selector{kind: KindAttributeExists, name: key}
}

// AttributeEquals matches elements which have an attribute key with a value
// equal to value.
func AttributeEquals(key string, value any) Selector {
	return Selector{kind: KindAttributeEquals, name: key, value: value}
}

// AttributeSubstring matches elements which have an attribute key, the
// string form of which contains text.
func AttributeSubstring(key string, text string) Selector {
	return Selector{kind: KindAttributeSubstring, name: key, text: text}
}

// AnyOf matches if at least one of sels matches.
func AnyOf(sels ...Selector) Selector {
	return Selector{kind: KindAnyOf, children: append(List(nil), sels...)}
}

// AllOf matches if all of sels match.
func AllOf(sels ...Selector) Selector {
	return Selector{kind: KindAllOf, children: append(List(nil), sels...)}
}

// Kind returns the tag of s.
func (s Selector) Kind() Kind {
	return s.kind
}

// Children returns the children of a composite selector.
func (s Selector) Children() List {
	return s.children
}

// Matches checks if s matches e.
func (s Selector) Matches(e element.Element) bool {
	switch s.kind {
	case KindAnyElement:
		return true
	case KindType:
		return s.name != "" && e.Type == s.name
	case KindID:
		return s.name != "" && e.ID == s.name
	case KindState:
		return e.States.Has(s.state)
	case KindColorSet:
		return s.colorSet != element.NoColorSet && e.ColorSet == s.colorSet
	case KindHint:
		return e.HasHint(s.name)
	case KindAttributeExists:
		if s.name == "" {
			return false
		}
		_, ok := e.Attribute(s.name)
		return ok
	case KindAttributeEquals:
		if s.name == "" || s.value == nil {
			return false
		}
		v, ok := e.Attribute(s.name)
		return ok && reflect.DeepEqual(v, s.value)
	case KindAttributeSubstring:
		if s.name == "" || s.text == "" {
			return false
		}
		v, ok := e.Attribute(s.name)
		return ok && v != nil && strings.Contains(fmt.Sprint(v), s.text)
	case KindAnyOf:
		for _, ch := range s.children {
			if ch.Matches(e) {
				return true
			}
		}
		return false
	case KindAllOf:
		if len(s.children) == 0 {
			return false
		}
		for _, ch := range s.children {
			if !ch.Matches(e) {
				return false
			}
		}
		return true
	}
	return false
}

// Weight returns the specificity of s. It does not depend on any element.
func (s Selector) Weight() int {
	switch s.kind {
	case KindType:
		return 1
	case KindID:
		return 100
	case KindAnyOf:
		w := 0
		for _, ch := range s.children {
			if cw := ch.Weight(); cw > w {
				w = cw
			}
		}
		return w
	case KindAllOf:
		return s.children.Weight()
	}
	return 10
}

func (s Selector) String() string {
	switch s.kind {
	case KindAnyElement:
		return "AnyElement"
	case KindType, KindID, KindHint, KindAttributeExists:
		return fmt.Sprintf("%s(%s)", s.kind, s.name)
	case KindState:
		return fmt.Sprintf("State(%s)", s.state)
	case KindColorSet:
		return fmt.Sprintf("ColorSet(%s)", s.colorSet)
	case KindAttributeEquals:
		return fmt.Sprintf("AttributeEquals(%s=%v)", s.name, s.value)
	case KindAttributeSubstring:
		return fmt.Sprintf("AttributeSubstring(%s*=%s)", s.name, s.text)
	case KindAnyOf, KindAllOf:
		return fmt.Sprintf("%s(%s)", s.kind, s.children.join(", "))
	}
	return s.kind.String()
}
