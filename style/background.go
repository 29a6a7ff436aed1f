package style

import (
	"github.com/npillmayer/uistyle/colors"
	"github.com/npillmayer/uistyle/maybe"
	"github.com/xlab/treeprint"
)

// Background groups properties painted behind an element's content.
type Background struct {
	Color   maybe.Maybe[colors.Expr]
	Image   *Image
	Border  *Border
	Corners *Corners
	Shadow  *Shadow
}

func (bg *Background) HasAnyValue() bool {
	if bg == nil {
		return false
	}
	return bg.Color.IsJust() || bg.Image.HasAnyValue() || bg.Border.HasAnyValue() ||
		bg.Corners.HasAnyValue() || bg.Shadow.HasAnyValue()
}

func (bg *Background) Resolve(src *Background) {
	if src == nil {
		return
	}
	resolveValue(&bg.Color, src.Color)
	resolveGroup(&bg.Image, src.Image)
	resolveGroup(&bg.Border, src.Border)
	resolveGroup(&bg.Corners, src.Corners)
	resolveGroup(&bg.Shadow, src.Shadow)
}

func (bg *Background) print(branch treeprint.Tree) {
	printValue(branch, "color", bg.Color)
	printGroup(branch, "image", bg.Image)
	printGroup(branch, "border", bg.Border)
	printGroup(branch, "corners", bg.Corners)
	printGroup(branch, "shadow", bg.Shadow)
}

// --- Image -----------------------------------------------------------------

// Image describes an image to paint.
type Image struct {
	Source maybe.Maybe[string]
	Width  maybe.Maybe[Dimen]
	Height maybe.Maybe[Dimen]
	Color  maybe.Maybe[colors.Expr]
}

func (img *Image) HasAnyValue() bool {
	if img == nil {
		return false
	}
	return img.Source.IsJust() || img.Width.IsJust() || img.Height.IsJust() || img.Color.IsJust()
}

func (img *Image) Resolve(src *Image) {
	if src == nil {
		return
	}
	resolveValue(&img.Source, src.Source)
	resolveValue(&img.Width, src.Width)
	resolveValue(&img.Height, src.Height)
	resolveValue(&img.Color, src.Color)
}

func (img *Image) print(branch treeprint.Tree) {
	printValue(branch, "source", img.Source)
	printValue(branch, "width", img.Width)
	printValue(branch, "height", img.Height)
	printValue(branch, "color", img.Color)
}

// --- Border ----------------------------------------------------------------

// Line is one side of a border.
type Line struct {
	Size  maybe.Maybe[Dimen]
	Color maybe.Maybe[colors.Expr]
	Style maybe.Maybe[LineStyle]
}

func (ln *Line) HasAnyValue() bool {
	if ln == nil {
		return false
	}
	return ln.Size.IsJust() || ln.Color.IsJust() || ln.Style.IsJust()
}

func (ln *Line) Resolve(src *Line) {
	if src == nil {
		return
	}
	resolveValue(&ln.Size, src.Size)
	resolveValue(&ln.Color, src.Color)
	resolveValue(&ln.Style, src.Style)
}

func (ln *Line) print(branch treeprint.Tree) {
	printValue(branch, "size", ln.Size)
	printValue(branch, "color", ln.Color)
	printValue(branch, "style", ln.Style)
}

// Border holds a line for each side of a box.
type Border struct {
	Left, Right, Top, Bottom *Line
}

// AllLines creates a border with copies of the same line on every side.
func AllLines(ln Line) *Border {
	l, r, t, b := ln, ln, ln, ln
	return &Border{Left: &l, Right: &r, Top: &t, Bottom: &b}
}

func (b *Border) HasAnyValue() bool {
	if b == nil {
		return false
	}
	return b.Left.HasAnyValue() || b.Right.HasAnyValue() || b.Top.HasAnyValue() || b.Bottom.HasAnyValue()
}

func (b *Border) Resolve(src *Border) {
	if src == nil {
		return
	}
	resolveGroup(&b.Left, src.Left)
	resolveGroup(&b.Right, src.Right)
	resolveGroup(&b.Top, src.Top)
	resolveGroup(&b.Bottom, src.Bottom)
}

func (b *Border) print(branch treeprint.Tree) {
	printGroup(branch, "left", b.Left)
	printGroup(branch, "right", b.Right)
	printGroup(branch, "top", b.Top)
	printGroup(branch, "bottom", b.Bottom)
}

// --- Corners ---------------------------------------------------------------

// Corner is one corner of a box.
type Corner struct {
	Radius maybe.Maybe[Dimen]
	Color  maybe.Maybe[colors.Expr]
}

func (c *Corner) HasAnyValue() bool {
	if c == nil {
		return false
	}
	return c.Radius.IsJust() || c.Color.IsJust()
}

func (c *Corner) Resolve(src *Corner) {
	if src == nil {
		return
	}
	resolveValue(&c.Radius, src.Radius)
	resolveValue(&c.Color, src.Color)
}

func (c *Corner) print(branch treeprint.Tree) {
	printValue(branch, "radius", c.Radius)
	printValue(branch, "color", c.Color)
}

// Corners holds the four corners of a box.
type Corners struct {
	TopLeft, TopRight, BottomLeft, BottomRight *Corner
}

func (cs *Corners) HasAnyValue() bool {
	if cs == nil {
		return false
	}
	return cs.TopLeft.HasAnyValue() || cs.TopRight.HasAnyValue() ||
		cs.BottomLeft.HasAnyValue() || cs.BottomRight.HasAnyValue()
}

func (cs *Corners) Resolve(src *Corners) {
	if src == nil {
		return
	}
	resolveGroup(&cs.TopLeft, src.TopLeft)
	resolveGroup(&cs.TopRight, src.TopRight)
	resolveGroup(&cs.BottomLeft, src.BottomLeft)
	resolveGroup(&cs.BottomRight, src.BottomRight)
}

func (cs *Corners) print(branch treeprint.Tree) {
	printGroup(branch, "top-left", cs.TopLeft)
	printGroup(branch, "top-right", cs.TopRight)
	printGroup(branch, "bottom-left", cs.BottomLeft)
	printGroup(branch, "bottom-right", cs.BottomRight)
}

// --- Shadow ----------------------------------------------------------------

// Shadow describes a drop shadow.
type Shadow struct {
	Offsets *Sizes
	Color   maybe.Maybe[colors.Expr]
	Size    maybe.Maybe[Dimen]
	Blur    maybe.Maybe[Dimen]
}

func (sh *Shadow) HasAnyValue() bool {
	if sh == nil {
		return false
	}
	return sh.Offsets.HasAnyValue() || sh.Color.IsJust() || sh.Size.IsJust() || sh.Blur.IsJust()
}

func (sh *Shadow) Resolve(src *Shadow) {
	if src == nil {
		return
	}
	resolveGroup(&sh.Offsets, src.Offsets)
	resolveValue(&sh.Color, src.Color)
	resolveValue(&sh.Size, src.Size)
	resolveValue(&sh.Blur, src.Blur)
}

func (sh *Shadow) print(branch treeprint.Tree) {
	printGroup(branch, "offsets", sh.Offsets)
	printValue(branch, "color", sh.Color)
	printValue(branch, "size", sh.Size)
	printValue(branch, "blur", sh.Blur)
}
