/*
Package htmlchain builds element chains from HTML parse trees.

HTML documents are a convenient stand-in for a UI hierarchy, e.g. for
testing rule sets or for tools inspecting styles. Every HTML element node
on the path from the document root to a given node is converted to an
element.Element:

	type        = tag name
	id          = value of attribute "id"
	hints       = tokens of attribute "class"
	states      = boolean attributes "disabled", "checked", "hidden"
	attributes  = all other attributes, as strings

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmlchain

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uistyle/element"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'uistyle.element'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.element")
}

var stateAttributes = map[string]element.State{
	"disabled": element.Disabled,
	"checked":  element.Checked,
	"hidden":   element.Hidden,
}

// FromNode returns the chain of elements from the root of the parse tree
// down to n. Non-element nodes on the path are skipped. If n is nil or
// there is no element node on the path, an empty chain is returned.
func FromNode(n *html.Node) element.Chain {
	var path []*html.Node
	for it := n; it != nil; it = it.Parent {
		if it.Type == html.ElementNode {
			path = append(path, it)
		}
	}
	chain := make(element.Chain, len(path))
	for i, node := range path {
		chain[len(path)-1-i] = Element(node)
	}
	tracer().Debugf("html chain = %s", chain)
	return chain
}

// Element converts a single HTML element node.
func Element(n *html.Node) element.Element {
	e := element.New(n.Data)
	for _, a := range n.Attr {
		switch {
		case a.Key == "id":
			e.ID = a.Val
		case a.Key == "class":
			e = e.WithHints(strings.Fields(a.Val)...)
		case stateAttributes[a.Key] != element.None:
			e.States |= stateAttributes[a.Key]
		default:
			e = e.WithAttribute(a.Key, a.Val)
		}
	}
	return e
}

// Find searches the parse tree below h for the first element node with a
// given id, depth first.
func Find(h *html.Node, id string) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode {
		for _, a := range h.Attr {
			if a.Key == "id" && a.Val == id {
				return h
			}
		}
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := Find(ch, id); r != nil {
			return r
		}
	}
	return nil
}

// Body returns the <body> element of a parsed document, or nil.
func Body(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if doc.DataAtom == atom.Body {
		return doc
	}
	for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
		if b := Body(ch); b != nil {
			return b
		}
	}
	return nil
}
