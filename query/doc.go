/*
Package query resolves the effective style properties of UI elements.

An Engine binds a rule set, a result cache and a color provider registry.
It is created once by the application and shared by everything querying
styles. For every element to be styled, the UI layer builds an element
chain and runs a Query:

	eng := query.NewEngine(ruleset, query.WithColors(registry))
	q := eng.NewQuery()
	q.SetElements(chain)
	if q.Execute() {
		props := q.Properties()
		…
	}

Execute asks the rule set for all rules matching the chain, ordered most
specific first, and merges their property trees in that order. The result
is cached by the fingerprint of the chain, so repeated queries for equal
chains (e.g. once per frame) do not match rules again. "No match" is
cached as well. Fingerprints may collide; a cached result is used only if
its chain equals the queried one. Properties hands out a copy of the
cached tree on every call, so clients may modify it freely.

The cache is a bounded LRU. An Engine watches the generation of its rule
set and drops all cached results once rules have been inserted.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package query

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.query'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.query")
}
