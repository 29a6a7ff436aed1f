package style

import (
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone     uint8 = 0
	dimenAbsolute uint8 = 0x01
	dimenAuto     uint8 = 0x02
	dimenPercent  uint8 = 0x04
)

// Dimen is a size value of a style property: either a fixed dimension,
// a percentage of the available space, or "auto".
type Dimen struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint8
}

/*
type Dimen
	= Auto
	| Fixed dimen
	| Percentage Percent
*/

// Auto creates a dimension to be determined by layout.
func Auto() Dimen {
	return Dimen{flags: dimenAuto}
}

// Fixed creates a dimension with a fixed value of x.
func Fixed(x dimen.DU) Dimen {
	return Dimen{d: x, flags: dimenAbsolute}
}

// Points creates a fixed dimension of n points.
func Points(n int) Dimen {
	return Fixed(dimen.DU(n) * dimen.PT)
}

// Percentage creates a dimension with a %-relative value.
func Percentage(p percent.Percent) Dimen {
	return Dimen{percent: p, flags: dimenPercent}
}

// IsAuto is true for Auto().
func (d Dimen) IsAuto() bool {
	return d.flags == dimenAuto
}

// Value returns the value of a fixed dimension and true, or false for
// relative dimensions.
func (d Dimen) Value() (dimen.DU, bool) {
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		return du, true
	}
	return 0, false
}

func (d Dimen) String() string {
	switch d.flags {
	case dimenAbsolute:
		return d.d.String()
	case dimenAuto:
		return "auto"
	case dimenPercent:
		return d.percent.String()
	}
	return "none"
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for switch statements on dimensions:
//
//	switch m := d.Match(); m {
//	case m.Just(&du): …
//	case m.Percentage(&p): …
//	case m.IsKind(style.Auto()): …
//	}
func (d Dimen) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches dimensions by kind.
type Matcher struct {
	dimen Dimen
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d Dimen) *Matcher {
	if m.dimen.flags == d.flags && d.flags != dimenNone {
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts their value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches relative dimensions and extracts their percentage.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
