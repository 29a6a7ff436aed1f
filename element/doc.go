/*
Package element models the environment a style query is evaluated against.

An Element describes one node of a UI hierarchy, as far as styling is
concerned: its type name, a unique id, a set of states, a color set, a set
of free-form hints and a map of attributes. Elements are plain values,
produced by the UI layer. For every node to be styled, the UI layer builds
a Chain of elements, starting at the root of the hierarchy and ending with
the element being styled.

Chains are fingerprinted for use as cache keys. The fingerprint covers
every field of every element and is sensitive to element order.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package element
