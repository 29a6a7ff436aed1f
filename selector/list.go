package selector

import (
	"strings"

	"github.com/npillmayer/uistyle/element"
)

// List is the selector pattern of a style rule: an ordered sequence of
// selector groups, root first. Selectors which have to hold for the same
// element are combined into a single AllOf entry; consecutive entries are
// separated by combinators.
//
// Child and descendant combinators are not distinguished during matching.
// Both use the subsequence semantics of Matches.
type List []Selector

// AppendAnyOf appends a group of alternatives to l. A group with a single
// selector is appended as is, an empty group is not appended.
func AppendAnyOf(l List, sels ...Selector) List {
	switch len(sels) {
	case 0:
		return l
	case 1:
		return append(l, sels[0])
	}
	return append(l, AnyOf(sels...))
}

// AppendAllOf appends a group of selectors, all of which have to hold for
// the same element. A group with a single selector is appended as is, an
// empty group is not appended.
func AppendAllOf(l List, sels ...Selector) List {
	switch len(sels) {
	case 0:
		return l
	case 1:
		return append(l, sels[0])
	}
	return append(l, AllOf(sels...))
}

// Weight is the sum of the weights of the entries of l.
func (l List) Weight() int {
	w := 0
	for _, s := range l {
		w += s.Weight()
	}
	return w
}

// Matches checks l against an element chain (root first, leaf last).
//
// The chain is walked once. Whenever the current selector group matches the
// current element, the selector cursor advances; the element cursor always
// advances. l matches if both the chain and the selector groups have been
// consumed completely. This is a greedy subsequence match without
// backtracking: once an element has been claimed by a selector group, a
// better fitting later element is never tried for that group.
//
// As a consequence the last selector group has to match the last element of
// the chain, i.e. the element being styled. An empty list never matches.
func (l List) Matches(chain element.Chain) bool {
	if len(l) == 0 || len(chain) == 0 {
		return false
	}
	cursor := 0
	for i, e := range chain {
		if cursor < len(l) && l[cursor].Matches(e) {
			cursor++
			if cursor == len(l) {
				return i == len(chain)-1
			}
		}
	}
	return false
}

func (l List) String() string {
	return "[" + l.join(" ") + "]"
}

func (l List) join(sep string) string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}
	return strings.Join(parts, sep)
}
