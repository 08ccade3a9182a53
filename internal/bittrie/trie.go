// Package bittrie provides a binary trie over fixed-width unsigned keys
// supporting maximum-xor queries.
//
// Keys are indexed bit by bit, from the most significant bit of the
// configured width down to bit 0, so every key occupies one root-to-leaf
// path of exactly width edges. Given a query key q, the stored key k
// maximising q xor k is found greedily: at each level take the child whose
// bit differs from the corresponding bit of q when it exists, otherwise
// the other one. Both insertion and queries run in O(width) time.
//
// Nodes live in a flat slice and refer to their children by index, which
// keeps the structure compact and cheap to reset.
//
package bittrie

import "fmt"

// Trie is a binary trie over keys of a fixed bit width. Every stored key
// carries an integer tag chosen by the caller.
type Trie struct {
	width uint

	// children[i] holds the indices of the 0 and 1 children of node i.
	// Index 0 is the root, which is never anybody's child, so a zero entry
	// means "no child".
	children [][2]int32

	// tags[i] is the tag of the key ending at leaf i, -1 for inner nodes.
	tags []int

	keys int
}

// maxPrealloc bounds the node slice reserved up front by New.
const maxPrealloc = 1 << 20

// New creates an empty trie for keys of the given bit width, reserving
// room for roughly capacity keys. The width must be within [1, 64], New
// panics otherwise.
func New(width uint, capacity int) *Trie {
	if width < 1 || width > 64 {
		panic(fmt.Sprintf("bittrie: width must be within [1, 64], got %d", width))
	}
	hint := 1
	if capacity > 0 {
		hint += capacity * int(width)
		if hint > maxPrealloc || hint < 0 {
			hint = maxPrealloc
		}
	}
	t := &Trie{
		width:    width,
		children: make([][2]int32, 0, hint),
		tags:     make([]int, 0, hint),
	}
	t.newNode()
	return t
}

// Width returns the number of bits indexed per key.
func (t *Trie) Width() uint {
	return t.width
}

// Len returns the number of distinct keys stored.
func (t *Trie) Len() int {
	return t.keys
}

// Nodes returns the number of allocated nodes, root included.
func (t *Trie) Nodes() int {
	return len(t.children)
}

// Reset removes every key while keeping the allocated memory.
func (t *Trie) Reset() {
	t.children = t.children[:0]
	t.tags = t.tags[:0]
	t.keys = 0
	t.newNode()
}

func (t *Trie) newNode() int32 {
	t.children = append(t.children, [2]int32{})
	t.tags = append(t.tags, -1)
	return int32(len(t.children) - 1)
}

// Insert stores key with the given tag. Bits of key above the trie width
// are ignored. Inserting a key that is already present keeps its
// original tag.
func (t *Trie) Insert(key uint64, tag int) {
	var n int32
	for i := int(t.width) - 1; i >= 0; i-- {
		b := (key >> uint(i)) & 1
		if t.children[n][b] == 0 {
			c := t.newNode()
			t.children[n][b] = c
		}
		n = t.children[n][b]
	}
	if t.tags[n] < 0 {
		t.tags[n] = tag
		t.keys++
	}
}

// Contains reports whether key is stored, along with its tag.
func (t *Trie) Contains(key uint64) (int, bool) {
	var n int32
	for i := int(t.width) - 1; i >= 0; i-- {
		n = t.children[n][(key>>uint(i))&1]
		if n == 0 {
			return -1, false
		}
	}
	return t.tags[n], true
}

// MaxXor finds the stored key k maximising key xor k and returns that xor
// value and the tag of k. ok is false when the trie is empty.
//
// When signed is set the most significant bit of the width is treated as
// a two's complement sign bit: the query then prefers a clear sign bit in
// the result before maximising the remaining bits, which yields the
// maximum under signed ordering.
func (t *Trie) MaxXor(key uint64, signed bool) (xor uint64, tag int, ok bool) {
	if t.keys == 0 {
		return 0, -1, false
	}
	top := int(t.width) - 1
	var n int32
	for i := top; i >= 0; i-- {
		b := (key >> uint(i)) & 1
		want := b ^ 1
		if signed && i == top {
			want = b
		}
		if c := t.children[n][want]; c != 0 {
			n = c
		} else {
			want ^= 1
			n = t.children[n][want]
		}
		xor |= (want ^ b) << uint(i)
	}
	return xor, t.tags[n], true
}

// Walk calls f for every stored key in ascending unsigned order, stopping
// early when f returns false.
func (t *Trie) Walk(f func(key uint64, tag int) bool) {
	if t.keys == 0 {
		return
	}
	type frame struct {
		node  int32
		depth uint
		key   uint64
	}
	stack := []frame{{node: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth == t.width {
			if !f(top.key, t.tags[top.node]) {
				return
			}
			continue
		}

		// push the 1 child first so the 0 child is visited first
		for b := 1; b >= 0; b-- {
			if c := t.children[top.node][b]; c != 0 {
				stack = append(stack, frame{
					node:  c,
					depth: top.depth + 1,
					key:   top.key<<1 | uint64(b),
				})
			}
		}
	}
}
