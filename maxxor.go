// Package maxxor computes the maximum bitwise xor over the contiguous,
// non-empty subranges of an integer sequence.
//
// A Computer consumes the sequence one value at a time. It keeps the
// running prefix xor P and a binary trie of every prefix seen so far,
// including the empty one. The xor of a subrange [l, r] equals
// P[r+1] xor P[l], so each new prefix only needs to be matched against
// the stored prefix that maximises their xor. Each value costs O(width).
package maxxor

import (
	"errors"
	"fmt"

	"github.com/caio/go-maxxor/internal/bittrie"
)

var (
	// ErrEmptyInput is returned when a result is requested for a sequence
	// without values. The accompanying Result is the zero value.
	ErrEmptyInput = errors.New("maxxor: empty input")
	// ErrValueOutOfRange is returned when a value does not fit in the
	// configured width.
	ErrValueOutOfRange = errors.New("maxxor: value out of range")
	// ErrInvalidWidth is returned for widths outside [1, 64].
	ErrInvalidWidth = errors.New("maxxor: width must be within [1, 64]")
)

// Result is the maximum subrange xor together with one subrange
// achieving it. Start and End are 0-based and inclusive.
type Result struct {
	Value int64
	Start int
	End   int
}

func (r Result) String() string {
	return fmt.Sprintf("R<v=%d,[%d,%d]>", r.Value, r.Start, r.End)
}

// Len returns the number of values in the witnessing subrange.
func (r Result) Len() int {
	return r.End - r.Start + 1
}

// Computer tracks the maximum subrange xor of a growing sequence.
type Computer struct {
	trie     *bittrie.Trie
	width    uint
	capacity uint
	prefix   uint64
	count    int
	best     Result
}

// New creates an empty Computer configured by the given options.
// By default values are treated as signed 64-bit integers.
func New(options ...Option) (*Computer, error) {
	c := &Computer{width: 64}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	c.trie = bittrie.New(c.width, int(c.capacity)+1)
	c.Reset()
	return c, nil
}

// Compute returns the maximum xor of any contiguous, non-empty subrange
// of values. It returns ErrEmptyInput when values is empty.
func Compute(values []int64, options ...Option) (Result, error) {
	if len(values) > 0 {
		options = append([]Option{Capacity(uint(len(values)))}, options...)
	}
	c, err := New(options...)
	if err != nil {
		return Result{}, err
	}
	if err := c.AddAll(values); err != nil {
		return Result{}, err
	}
	return c.Max()
}

// signed reports whether the top trie bit is a two's complement sign bit.
func (c *Computer) signed() bool {
	return c.width == 64
}

func (c *Computer) checkRange(value int64) error {
	if c.width == 64 {
		return nil
	}
	if value < 0 || uint64(value)>>c.width != 0 {
		return fmt.Errorf("%w: %d does not fit in %d bits", ErrValueOutOfRange, value, c.width)
	}
	return nil
}

// Add appends value to the sequence. Values rejected with an error leave
// the Computer untouched.
func (c *Computer) Add(value int64) error {
	if err := c.checkRange(value); err != nil {
		return err
	}

	c.prefix ^= uint64(value)
	c.count++

	// The trie always holds the empty prefix, so the query cannot fail.
	xor, start, _ := c.trie.MaxXor(c.prefix, c.signed())
	if v := int64(xor); c.count == 1 || v > c.best.Value {
		c.best = Result{Value: v, Start: start, End: c.count - 1}
	}

	c.trie.Insert(c.prefix, c.count)
	return nil
}

// AddAll appends every value in order, stopping at the first error.
func (c *Computer) AddAll(values []int64) error {
	for i, v := range values {
		if err := c.Add(v); err != nil {
			return fmt.Errorf("value #%d: %w", i, err)
		}
	}
	return nil
}

// Max returns the maximum subrange xor of the values added so far.
func (c *Computer) Max() (Result, error) {
	if c.count == 0 {
		return Result{}, ErrEmptyInput
	}
	return c.best, nil
}

// Count returns how many values were added.
func (c *Computer) Count() int {
	return c.count
}

// Width returns the configured bit width.
func (c *Computer) Width() uint {
	return c.width
}

// Prefix returns the xor of every value added so far.
func (c *Computer) Prefix() int64 {
	return int64(c.prefix)
}

// Reset clears the sequence, keeping the configuration.
func (c *Computer) Reset() {
	c.trie.Reset()
	c.trie.Insert(0, 0)
	c.prefix = 0
	c.count = 0
	c.best = Result{}
}

func (c Computer) String() string {
	return fmt.Sprintf("MX<width=%d, count=%d, prefixes=%d>", c.width, c.count, c.trie.Len())
}
