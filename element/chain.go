package element

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Chain is an ordered sequence of elements, from the root of a UI hierarchy
// down to the element being styled.
type Chain []Element

// Leaf returns the element being styled, i.e. the last element of the chain.
func (c Chain) Leaf() (Element, bool) {
	if len(c) == 0 {
		return Element{}, false
	}
	return c[len(c)-1], true
}

func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, e := range c {
		parts[i] = e.String()
	}
	return strings.Join(parts, " > ")
}

// Fingerprint returns an order-preserving hash of the chain.
//
// Every field of every element enters the hash, whether or not a currently
// loaded rule refers to it. Hints and attributes are hashed in key order;
// attribute values are hashed in Go-syntax form, qualified by their dynamic
// type, so that 1 and "1" or []string{"a b"} and []string{"a", "b"} produce
// different fingerprints.
//
// Fingerprints may still collide. Clients using them as cache keys have to
// confirm a hit with Equal.
func (c Chain) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeInt := func(n uint64) {
		binary.LittleEndian.PutUint64(buf[:], n)
		d.Write(buf[:])
	}
	writeString := func(s string) {
		writeInt(uint64(len(s)))
		d.WriteString(s)
	}
	writeInt(uint64(len(c)))
	for _, e := range c {
		writeString(e.Type)
		writeString(e.ID)
		writeInt(uint64(e.States))
		writeInt(uint64(e.ColorSet))
		writeInt(uint64(len(e.Hints)))
		for _, h := range e.SortedHints() {
			writeString(h)
		}
		keys := e.AttributeKeys()
		writeInt(uint64(len(keys)))
		for _, k := range keys {
			writeString(k)
			writeString(fmt.Sprintf("%T:%#v", e.Attributes[k], e.Attributes[k]))
		}
	}
	return d.Sum64()
}

// Equal checks if c and other consist of equal elements, in the same order.
func (c Chain) Equal(other Chain) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !c[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of c which shares no hint sets or attribute maps
// with c. Attribute values themselves are not copied.
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	clone := make(Chain, len(c))
	for i, e := range c {
		if e.Hints != nil {
			e = e.WithHints()
		}
		if e.Attributes != nil {
			a := make(map[string]any, len(e.Attributes))
			for k, v := range e.Attributes {
				a[k] = v
			}
			e.Attributes = a
		}
		clone[i] = e
	}
	return clone
}
