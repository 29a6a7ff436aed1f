/*
Package colors implements lazily evaluated color expressions.

A color expression is a small immutable tree. Leaves are either literal
RGBA values or references to a named color provider; inner nodes combine
colors channel-wise:

	Add(a, b)            clamp(a+b, 0, 255)
	Subtract(a, b)       clamp(a-b, 0, 255)
	Multiply(a, b)       a*b/255, truncated
	Set(base, channels)  override selected channels of base
	Mix(a, b, amount)    floor(a*(1-amount) + b*amount)

Expressions are evaluated on demand with Expr.Resolve. Evaluation does
not cache anything. If a provider is missing or cannot resolve its
arguments, the whole expression is unresolvable; no default color is
substituted.

Providers are looked up by exact, case-sensitive name in a Registry,
which clients create once and hand to everything evaluating colors.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package colors

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.colors'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.colors")
}
