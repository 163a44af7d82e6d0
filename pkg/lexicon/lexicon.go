// Package lexicon implements the dictionary index: a prefix automaton (a
// DAG of word characters, sometimes called a trie or - once nodes are
// shared - a DAWG) that answers prefix/terminal queries and, critically,
// enumerates per-position letter possibilities for a slot under the
// current per-cell letter domains (spec.md §4.2).
//
// Grounded on the teacher's pkg/wordlist.Trie (insert-by-walking,
// map-of-children nodes, terminal flag) generalized from plain pattern
// matching to domain-constrained traversal, the way
// vthorsteinsson-GoSkrafl's Dawg walks edges filtered by a rack's letter
// set instead of a literal pattern.
package lexicon

import (
	"encoding/binary"

	"github.com/crossplay/backend/pkg/letterset"
	"github.com/hashicorp/golang-lru/simplelru"
)

// node is one state of the automaton. children is keyed by the uppercase
// letter on the outgoing edge; terminal marks that the path from root to
// this node spells an accepted word.
type node struct {
	children map[byte]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Lexicon is a directed acyclic automaton over A-Z, built once from a word
// list and never mutated during search. The zero value is not usable; use
// New or NewWithCache.
type Lexicon struct {
	root  *node
	cache *maskCache
}

// New builds an empty Lexicon with no possibility-mask memoisation.
func New() *Lexicon {
	return &Lexicon{root: newNode()}
}

// NewWithCache builds an empty Lexicon whose PossibilityMasks traversal
// memoises sub-results in a bounded LRU of the given size, keyed by
// (node, remaining domain suffix) as spec.md §4.2 suggests. size <= 0
// disables the cache, equivalent to New().
func NewWithCache(size int) *Lexicon {
	l := New()
	if size > 0 {
		l.cache = newMaskCache(size)
	}
	return l
}

// Insert adds word to the dictionary, creating nodes for any missing edge
// and marking the final node terminal. word must already be uppercase A-Z
// (pkg/wordlist is responsible for folding and filtering); Insert does not
// validate. Re-inserting the same word is idempotent.
func (l *Lexicon) Insert(word string) {
	n := l.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		child, ok := n.children[c]
		if !ok {
			child = newNode()
			n.children[c] = child
		}
		n = child
	}
	n.terminal = true
}

// walk follows prefix from root, returning the node reached or nil if no
// such path exists.
func (l *Lexicon) walk(prefix string) *node {
	n := l.root
	for i := 0; i < len(prefix); i++ {
		child, ok := n.children[prefix[i]]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Accepts reports whether walking w from root reaches a terminal node.
func (l *Lexicon) Accepts(w string) bool {
	n := l.walk(w)
	return n != nil && n.terminal
}

// HasPrefix reports whether any word in the dictionary starts with p
// (including p itself).
func (l *Lexicon) HasPrefix(p string) bool {
	return l.walk(p) != nil
}

// ChildrenAt returns the set of letters on outgoing edges of the node
// reached by prefix p. The second return value is false if no node is
// reached by p (the "no such node" sentinel from spec.md §4.2).
func (l *Lexicon) ChildrenAt(p string) (letterset.LetterSet, bool) {
	n := l.walk(p)
	if n == nil {
		return letterset.Empty, false
	}
	var s letterset.LetterSet
	for c := range n.children {
		s = s.Union(letterset.Singleton(c))
	}
	return s, true
}

// PossibilityMasks computes M = [M0 .. M(L-1)] for a slot of length
// L = len(domains), where Mi is the set of letters ℓ such that some
// accepted word w of length L has w[j] in domains[j] for every j and
// w[i] = ℓ (spec.md §4.2).
//
// It performs a depth-first traversal of the automaton from root,
// descending only through edges whose label lies in the corresponding
// domain, and unions a label into every position of a path only once that
// path reaches a terminal node at depth L. If no accepted completion
// exists, PossibilityMasks returns nil.
func (l *Lexicon) PossibilityMasks(domains []letterset.LetterSet) []letterset.LetterSet {
	if len(domains) == 0 {
		return nil
	}
	masks, ok := l.find(l.root, domains)
	if !ok {
		return nil
	}
	return masks
}

// find returns the per-position possibility masks for completing the
// automaton walk starting at n over domains, and whether any completion
// exists at all. The result depends only on n and domains (not on how n
// was reached), so it is safe to memoise by (n, domains).
func (l *Lexicon) find(n *node, domains []letterset.LetterSet) ([]letterset.LetterSet, bool) {
	if len(domains) == 0 {
		return nil, n.terminal
	}

	var key cacheKey
	cacheable := l.cache != nil
	if cacheable {
		key = cacheKey{node: n, suffix: packDomains(domains)}
		if v, ok := l.cache.get(key); ok {
			return v.masks, v.ok
		}
	}

	masks := make([]letterset.LetterSet, len(domains))
	found := false
	for _, c := range domains[0].Letters() {
		child, ok := n.children[c]
		if !ok {
			continue
		}
		subMasks, subOK := l.find(child, domains[1:])
		if !subOK {
			continue
		}
		found = true
		masks[0] = masks[0].Union(letterset.Singleton(c))
		for i, m := range subMasks {
			masks[i+1] = masks[i+1].Union(m)
		}
	}
	if !found {
		masks = nil
	}

	if cacheable {
		l.cache.put(key, maskResult{masks: masks, ok: found})
	}
	return masks, found
}

// cacheKey identifies a (node, remaining domain suffix) memoisation entry.
// node pointers never move once built (Lexicon is immutable after
// construction), so comparing pointers is safe for the life of the cache.
type cacheKey struct {
	node   *node
	suffix string
}

type maskResult struct {
	masks []letterset.LetterSet
	ok    bool
}

// maskCache is a bounded LRU from cacheKey to maskResult, mirroring
// vthorsteinsson-GoSkrafl's crossCache (a simplelru.LRU guarding a
// pattern -> bitmap-set lookup for DAWG cross sets).
type maskCache struct {
	lru *simplelru.LRU
}

func newMaskCache(size int) *maskCache {
	lru, _ := simplelru.NewLRU(size, nil)
	return &maskCache{lru: lru}
}

func (c *maskCache) get(key cacheKey) (maskResult, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		return maskResult{}, false
	}
	return v.(maskResult), true
}

func (c *maskCache) put(key cacheKey, v maskResult) {
	c.lru.Add(key, v)
}

// packDomains encodes a domain suffix as a fixed-width byte string
// suitable for use as a map key, one uint32 per position.
func packDomains(domains []letterset.LetterSet) string {
	buf := make([]byte, 4*len(domains))
	for i, d := range domains {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(d))
	}
	return string(buf)
}
