/*
Package style defines the property tree resolved for a styled element.

Style properties are segmented into nested groups (layout, text, icon,
background, …), each of which may contain further groups. Every leaf is
optional (a maybe.Maybe) and every nested group is optional (a nil
pointer). A style rule sets only the properties it declares.

Merging property trees follows cascade semantics: dst.Resolve(src) fills
every unset leaf of dst from src and never overwrites a leaf already set.
Clients merge the trees of matching rules most specific first; the first
rule declaring a property wins, and everything it leaves unset falls back
to less specific rules.

A group is considered to have a value only if at least one of its leaves
(recursively) is set. Empty groups never survive a merge.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/uistyle/maybe"
	"github.com/xlab/treeprint"
)

// group is implemented by every pointer to a property group type.
type group[G any] interface {
	*G
	HasAnyValue() bool
	Resolve(src *G)
	print(treeprint.Tree)
}

// resolveValue sets *dst to src if *dst is unset.
func resolveValue[T any](dst *maybe.Maybe[T], src maybe.Maybe[T]) {
	if dst.IsNothing() {
		*dst = src
	}
}

// resolveGroup merges src into the group *dst, creating it if necessary.
// The resulting group is kept only if it has a value.
func resolveGroup[G any, P group[G]](dst **G, src *G) {
	if !P(src).HasAnyValue() {
		return
	}
	g := *dst
	if g == nil {
		g = new(G)
	}
	P(g).Resolve(src)
	if P(g).HasAnyValue() {
		*dst = g
	} else {
		*dst = nil
	}
}

func printValue[T any](branch treeprint.Tree, name string, m maybe.Maybe[T]) {
	if v, ok := m.Get(); ok {
		branch.AddMetaNode(name, v)
	}
}

func printGroup[G any, P group[G]](branch treeprint.Tree, name string, g *G) {
	if P(g).HasAnyValue() {
		P(g).print(branch.AddBranch(name))
	}
}
