package style

import (
	"fmt"

	"github.com/npillmayer/uistyle/colors"
	"github.com/npillmayer/uistyle/maybe"
	"github.com/xlab/treeprint"
)

// Alignment positions content within the space of an element.
type Alignment uint8

// Alignments.
const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignFill
	AlignStack
)

func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignFill:
		return "fill"
	case AlignStack:
		return "stack"
	}
	return fmt.Sprintf("alignment(%d)", uint8(a))
}

// LineStyle is the stroke of a border line.
type LineStyle uint8

// Line styles.
const (
	LineSolid LineStyle = iota
	LineDashed
	LineDotted
)

func (ls LineStyle) String() string {
	switch ls {
	case LineSolid:
		return "solid"
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	}
	return fmt.Sprintf("linestyle(%d)", uint8(ls))
}

// --- Properties ------------------------------------------------------------

// Properties is the root of a property tree. nil is a legal, empty tree.
type Properties struct {
	Layout     *Layout
	Text       *Text
	Icon       *Icon
	Background *Background
}

// New creates an empty property tree.
func New() *Properties {
	return &Properties{}
}

// HasAnyValue checks if at least one property is set.
func (p *Properties) HasAnyValue() bool {
	if p == nil {
		return false
	}
	return p.Layout.HasAnyValue() || p.Text.HasAnyValue() ||
		p.Icon.HasAnyValue() || p.Background.HasAnyValue()
}

// Resolve fills every property unset in p with the value from src.
// Properties already set in p are never overwritten. Groups of p are
// created as needed; src is not modified and shares no groups with p
// afterwards.
func (p *Properties) Resolve(src *Properties) {
	if p == nil || src == nil {
		return
	}
	resolveGroup(&p.Layout, src.Layout)
	resolveGroup(&p.Text, src.Text)
	resolveGroup(&p.Icon, src.Icon)
	resolveGroup(&p.Background, src.Background)
}

func (p *Properties) print(branch treeprint.Tree) {
	printGroup(branch, "layout", p.Layout)
	printGroup(branch, "text", p.Text)
	printGroup(branch, "icon", p.Icon)
	printGroup(branch, "background", p.Background)
}

// String dumps all properties set, as a tree.
func (p *Properties) String() string {
	root := treeprint.New()
	root.SetValue("properties")
	if p.HasAnyValue() {
		p.print(root)
	}
	return root.String()
}

// --- Sizes -----------------------------------------------------------------

// Sizes holds a dimension for each side of a box.
type Sizes struct {
	Left, Right, Top, Bottom maybe.Maybe[Dimen]
}

// AllSides creates sizes with the same dimension on every side.
func AllSides(d Dimen) *Sizes {
	return &Sizes{Left: maybe.Just(d), Right: maybe.Just(d), Top: maybe.Just(d), Bottom: maybe.Just(d)}
}

func (s *Sizes) HasAnyValue() bool {
	if s == nil {
		return false
	}
	return s.Left.IsJust() || s.Right.IsJust() || s.Top.IsJust() || s.Bottom.IsJust()
}

func (s *Sizes) Resolve(src *Sizes) {
	if src == nil {
		return
	}
	resolveValue(&s.Left, src.Left)
	resolveValue(&s.Right, src.Right)
	resolveValue(&s.Top, src.Top)
	resolveValue(&s.Bottom, src.Bottom)
}

func (s *Sizes) print(branch treeprint.Tree) {
	printValue(branch, "left", s.Left)
	printValue(branch, "right", s.Right)
	printValue(branch, "top", s.Top)
	printValue(branch, "bottom", s.Bottom)
}

// --- Layout ----------------------------------------------------------------

// Layout groups properties governing size and placement.
type Layout struct {
	Alignment maybe.Maybe[Alignment]
	Width     maybe.Maybe[Dimen]
	Height    maybe.Maybe[Dimen]
	Spacing   maybe.Maybe[Dimen]
	Padding   *Sizes
	Margins   *Sizes
	Inset     *Sizes
}

func (l *Layout) HasAnyValue() bool {
	if l == nil {
		return false
	}
	return l.Alignment.IsJust() || l.Width.IsJust() || l.Height.IsJust() || l.Spacing.IsJust() ||
		l.Padding.HasAnyValue() || l.Margins.HasAnyValue() || l.Inset.HasAnyValue()
}

func (l *Layout) Resolve(src *Layout) {
	if src == nil {
		return
	}
	resolveValue(&l.Alignment, src.Alignment)
	resolveValue(&l.Width, src.Width)
	resolveValue(&l.Height, src.Height)
	resolveValue(&l.Spacing, src.Spacing)
	resolveGroup(&l.Padding, src.Padding)
	resolveGroup(&l.Margins, src.Margins)
	resolveGroup(&l.Inset, src.Inset)
}

func (l *Layout) print(branch treeprint.Tree) {
	printValue(branch, "alignment", l.Alignment)
	printValue(branch, "width", l.Width)
	printValue(branch, "height", l.Height)
	printValue(branch, "spacing", l.Spacing)
	printGroup(branch, "padding", l.Padding)
	printGroup(branch, "margins", l.Margins)
	printGroup(branch, "inset", l.Inset)
}

// --- Text ------------------------------------------------------------------

// Text groups properties of text content.
type Text struct {
	Alignment maybe.Maybe[Alignment]
	Color     maybe.Maybe[colors.Expr]
	Font      maybe.Maybe[string]
}

func (t *Text) HasAnyValue() bool {
	if t == nil {
		return false
	}
	return t.Alignment.IsJust() || t.Color.IsJust() || t.Font.IsJust()
}

func (t *Text) Resolve(src *Text) {
	if src == nil {
		return
	}
	resolveValue(&t.Alignment, src.Alignment)
	resolveValue(&t.Color, src.Color)
	resolveValue(&t.Font, src.Font)
}

func (t *Text) print(branch treeprint.Tree) {
	printValue(branch, "alignment", t.Alignment)
	printValue(branch, "color", t.Color)
	printValue(branch, "font", t.Font)
}

// --- Icon ------------------------------------------------------------------

// Icon groups properties of an element's icon.
type Icon struct {
	Width  maybe.Maybe[Dimen]
	Height maybe.Maybe[Dimen]
	Color  maybe.Maybe[colors.Expr]
	Name   maybe.Maybe[string]
	Source maybe.Maybe[string]
}

func (ic *Icon) HasAnyValue() bool {
	if ic == nil {
		return false
	}
	return ic.Width.IsJust() || ic.Height.IsJust() || ic.Color.IsJust() ||
		ic.Name.IsJust() || ic.Source.IsJust()
}

func (ic *Icon) Resolve(src *Icon) {
	if src == nil {
		return
	}
	resolveValue(&ic.Width, src.Width)
	resolveValue(&ic.Height, src.Height)
	resolveValue(&ic.Color, src.Color)
	resolveValue(&ic.Name, src.Name)
	resolveValue(&ic.Source, src.Source)
}

func (ic *Icon) print(branch treeprint.Tree) {
	printValue(branch, "width", ic.Width)
	printValue(branch, "height", ic.Height)
	printValue(branch, "color", ic.Color)
	printValue(branch, "name", ic.Name)
	printValue(branch, "source", ic.Source)
}
