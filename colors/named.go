package colors

import (
	"image/color"
	"strings"

	"github.com/npillmayer/uistyle/maybe"
)

// CSSSource is the source name under which RegisterNamedColors registers
// the NamedColors provider.
const CSSSource = "css"

// namedColors holds the basic CSS color keywords.
var namedColors = map[string]color.RGBA{
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"silver":      {R: 192, G: 192, B: 192, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"maroon":      {R: 128, G: 0, B: 0, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"purple":      {R: 128, G: 0, B: 128, A: 255},
	"fuchsia":     {R: 255, G: 0, B: 255, A: 255},
	"green":       {R: 0, G: 128, B: 0, A: 255},
	"lime":        {R: 0, G: 255, B: 0, A: 255},
	"olive":       {R: 128, G: 128, B: 0, A: 255},
	"yellow":      {R: 255, G: 255, B: 0, A: 255},
	"navy":        {R: 0, G: 0, B: 128, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"teal":        {R: 0, G: 128, B: 128, A: 255},
	"aqua":        {R: 0, G: 255, B: 255, A: 255},
	"orange":      {R: 255, G: 165, B: 0, A: 255},
	"powderblue":  {R: 176, G: 224, B: 230, A: 255},
	"transparent": {R: 0, G: 0, B: 0, A: 0},
}

// NamedColors resolves a single CSS color keyword, e.g. Custom("css", "teal").
// Keywords are matched case-insensitively.
func NamedColors(args []string) maybe.Maybe[color.RGBA] {
	if len(args) != 1 {
		return maybe.Nothing[color.RGBA]()
	}
	c, ok := namedColors[strings.ToLower(strings.TrimSpace(args[0]))]
	if !ok {
		return maybe.Nothing[color.RGBA]()
	}
	return maybe.Just(c)
}

// RegisterNamedColors registers NamedColors with reg under CSSSource.
func RegisterNamedColors(reg *Registry) error {
	return reg.Register(CSSSource, NamedColors)
}
