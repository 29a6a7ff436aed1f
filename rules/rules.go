/*
Package rules holds style rules and ranks the rules matching an element chain.

A Rule pairs a selector pattern with a property tree. A Set collects rules
in declaration order. Rule loaders (stylesheet parsers, theme plugins, …)
append rules to a set; once loading is done, the set is only read.

# Ranking

For an element chain, Set.Match returns all matching rules, most specific
first. Rules of equal weight are ordered most recently declared first, so
a later rule wins over an earlier rule of the same specificity when the
property trees are merged in that order.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rules

import (
	"errors"
	"sort"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uistyle/element"
	"github.com/npillmayer/uistyle/selector"
	"github.com/npillmayer/uistyle/style"
)

// tracer traces with key 'uistyle.rules'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.rules")
}

// ErrNilRule is returned when inserting a nil rule.
var ErrNilRule = errors.New("cannot insert nil rule")

// Rule is a style rule. Rules are immutable once inserted into a set.
type Rule struct {
	Selectors  selector.List
	Properties *style.Properties
}

// NewRule creates a rule. A nil property tree is replaced by an empty one.
func NewRule(sels selector.List, props *style.Properties) *Rule {
	if props == nil {
		props = style.New()
	}
	return &Rule{Selectors: sels, Properties: props}
}

// Weight is the weight of the rule's selector pattern.
func (r *Rule) Weight() int {
	return r.Selectors.Weight()
}

func (r *Rule) String() string {
	return r.Selectors.String()
}

// Set is an ordered collection of rules. Rules may be inserted concurrently
// with reads, but clients caching match results against a set have to
// watch Generation.
type Set struct {
	mx         sync.RWMutex
	name       string
	rules      []*Rule
	generation uint64
}

// NewSet creates an empty, named rule set.
func NewSet(name string) *Set {
	return &Set{name: name}
}

// Name returns the name of the set.
func (s *Set) Name() string {
	return s.name
}

// Insert appends a rule.
func (s *Set) Insert(r *Rule) error {
	if r == nil {
		return ErrNilRule
	}
	s.mx.Lock()
	defer s.mx.Unlock()
	s.rules = append(s.rules, r)
	s.generation++
	tracer().P("set", s.name).Debugf("inserted rule #%d %s, weight %d", len(s.rules), r, r.Weight())
	return nil
}

// Len returns the number of rules.
func (s *Set) Len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.rules)
}

// Rules returns the rules in declaration order.
func (s *Set) Rules() []*Rule {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return append([]*Rule(nil), s.rules...)
}

// Generation is incremented on every insert. Cached match results computed
// at a different generation are stale.
func (s *Set) Generation() uint64 {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.generation
}

// Match returns the rules matching chain, by descending weight. Rules of
// equal weight are returned most recently declared first.
//
// Matches are collected by prepending, i.e. in reverse declaration order,
// and then stably sorted by weight. Stability preserves the reversal for
// rules of equal weight.
func (s *Set) Match(chain element.Chain) []*Rule {
	s.mx.RLock()
	defer s.mx.RUnlock()
	var matched []*Rule
	for _, r := range s.rules {
		if r.Selectors.Matches(chain) {
			matched = append([]*Rule{r}, matched...)
		}
	}
	sortByWeight(matched)
	return matched
}

func sortByWeight(rules []*Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Weight() > rules[j].Weight()
	})
}
