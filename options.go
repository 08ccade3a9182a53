package maxxor

import "fmt"

// Option configures a Computer.
type Option func(*Computer) error

// Width sets the number of bits indexed per value
//
// The default of 64 accepts any int64 and maximises under signed
// ordering. Narrower widths build shallower tries (faster additions and
// a smaller memory footprint) but then every value must be non-negative
// and below 2^bits; Add rejects anything else with ErrValueOutOfRange.
//
// Width must be within [1, 64], New will error out otherwise.
func Width(bits uint) Option {
	return func(c *Computer) error {
		if bits < 1 || bits > 64 {
			return fmt.Errorf("%w: got %d", ErrInvalidWidth, bits)
		}
		c.width = bits
		return nil
	}
}

// Capacity hints how many values will be added so the trie can be sized
// up front.
func Capacity(n uint) Option {
	return func(c *Computer) error {
		c.capacity = n
		return nil
	}
}
