package colors

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/npillmayer/uistyle/maybe"
)

type op uint8

const (
	opNone op = iota
	opRGBA
	opCustom
	opAdd
	opSubtract
	opMultiply
	opSet
	opMix
)

// Expr is a color expression. Expressions are immutable and may be copied
// freely; copies share their sub-trees. The zero Expr is not a color and
// never resolves.
type Expr struct {
	n *node
}

type node struct {
	op          op
	rgba        color.RGBA
	source      string
	args        []string
	left, right Expr
	channels    Channels
	amount      float64
}

// Channels holds optional per-channel overrides for Set.
type Channels struct {
	R, G, B, A maybe.Maybe[uint8]
}

// RGBA creates a literal color.
func RGBA(r, g, b, a uint8) Expr {
	return Expr{&node{op: opRGBA, rgba: color.RGBA{R: r, G: g, B: b, A: a}}}
}

// FromColor creates a literal color from any color.Color. The color is
// converted to non-alpha-premultiplied 8-bit channels.
func FromColor(c color.Color) Expr {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}

// Custom creates a reference to a color provided by the provider named source.
func Custom(source string, args ...string) Expr {
	return Expr{&node{op: opCustom, source: source, args: append([]string(nil), args...)}}
}

// Add creates the saturated channel-wise sum of two colors.
func Add(left, right Expr) Expr {
	return Expr{&node{op: opAdd, left: left, right: right}}
}

// Subtract creates the saturated channel-wise difference of two colors.
func Subtract(left, right Expr) Expr {
	return Expr{&node{op: opSubtract, left: left, right: right}}
}

// Multiply creates the normalized channel-wise product of two colors.
func Multiply(left, right Expr) Expr {
	return Expr{&node{op: opMultiply, left: left, right: right}}
}

// Set creates a color from base with some channels replaced.
func Set(base Expr, channels Channels) Expr {
	return Expr{&node{op: opSet, left: base, channels: channels}}
}

// Mix creates a linear blend of two colors. amount = 0 yields first,
// amount = 1 yields second. A NaN or infinite amount never resolves.
func Mix(first, second Expr, amount float64) Expr {
	return Expr{&node{op: opMix, left: first, right: second, amount: amount}}
}

// IsValid is false for the zero Expr.
func (x Expr) IsValid() bool {
	return x.n != nil && x.n.op != opNone
}

// Resolve evaluates x to a concrete color. Providers referenced by x are
// looked up in reg, which may be nil if x references no providers.
func (x Expr) Resolve(reg *Registry) maybe.Maybe[color.RGBA] {
	if !x.IsValid() {
		return maybe.Nothing[color.RGBA]()
	}
	n := x.n
	switch n.op {
	case opRGBA:
		return maybe.Just(n.rgba)
	case opCustom:
		p, ok := reg.Provider(n.source)
		if !ok {
			tracer().Debugf("no color provider for source %q", n.source)
			return maybe.Nothing[color.RGBA]()
		}
		return p(n.args)
	case opAdd:
		return combine(n, reg, func(a, b uint8) uint8 {
			return clamp(int(a) + int(b))
		})
	case opSubtract:
		return combine(n, reg, func(a, b uint8) uint8 {
			return clamp(int(a) - int(b))
		})
	case opMultiply:
		return combine(n, reg, func(a, b uint8) uint8 {
			return uint8(int(a) * int(b) / 255)
		})
	case opSet:
		ch := n.channels
		return n.left.Resolve(reg).Map(func(c color.RGBA) color.RGBA {
			c.R = ch.R.WithDefault(c.R)
			c.G = ch.G.WithDefault(c.G)
			c.B = ch.B.WithDefault(c.B)
			c.A = ch.A.WithDefault(c.A)
			return c
		})
	case opMix:
		amount := n.amount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			tracer().Debugf("cannot mix colors by %g", amount)
			return maybe.Nothing[color.RGBA]()
		}
		return combine(n, reg, func(a, b uint8) uint8 {
			v := math.Floor(float64(a)*(1-amount) + float64(b)*amount)
			return clamp(int(math.Max(-1, math.Min(256, v))))
		})
	}
	return maybe.Nothing[color.RGBA]()
}

func combine(n *node, reg *Registry, f func(a, b uint8) uint8) maybe.Maybe[color.RGBA] {
	return maybe.Map2(func(l, r color.RGBA) color.RGBA {
		return color.RGBA{R: f(l.R, r.R), G: f(l.G, r.G), B: f(l.B, r.B), A: f(l.A, r.A)}
	}, n.left.Resolve(reg), n.right.Resolve(reg))
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (x Expr) String() string {
	if !x.IsValid() {
		return "none"
	}
	n := x.n
	switch n.op {
	case opRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %d)", n.rgba.R, n.rgba.G, n.rgba.B, n.rgba.A)
	case opCustom:
		return fmt.Sprintf("custom(%s: %s)", n.source, strings.Join(n.args, ", "))
	case opAdd:
		return fmt.Sprintf("add(%s, %s)", n.left, n.right)
	case opSubtract:
		return fmt.Sprintf("subtract(%s, %s)", n.left, n.right)
	case opMultiply:
		return fmt.Sprintf("multiply(%s, %s)", n.left, n.right)
	case opSet:
		var b strings.Builder
		b.WriteString("set(" + n.left.String())
		for _, c := range []struct {
			name string
			v    maybe.Maybe[uint8]
		}{{"r", n.channels.R}, {"g", n.channels.G}, {"b", n.channels.B}, {"a", n.channels.A}} {
			if v, ok := c.v.Get(); ok {
				fmt.Fprintf(&b, ", %s=%d", c.name, v)
			}
		}
		b.WriteString(")")
		return b.String()
	case opMix:
		return fmt.Sprintf("mix(%s, %s, %g)", n.left, n.right, n.amount)
	}
	return "none"
}
