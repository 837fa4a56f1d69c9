package core

import "strings"

// MaxNeighborCount is the largest neighbour count a Moore-8 pattern can hold.
const MaxNeighborCount = 8

// Pattern is a set of neighbour counts in [0, 8]. It is a value type, so
// copies never alias, and Counts always lists members ascending without
// duplicates.
type Pattern uint16

// NewPattern builds a pattern from counts. Duplicates collapse and counts
// outside [0, 8] are ignored.
func NewPattern(counts ...int) Pattern {
	var p Pattern
	for _, c := range counts {
		p = p.With(c, true)
	}
	return p
}

// Has reports whether count is a member.
func (p Pattern) Has(count int) bool {
	if count < 0 || count > MaxNeighborCount {
		return false
	}
	return p&(1<<uint(count)) != 0
}

// With returns a copy of p with count added (on) or removed (off).
func (p Pattern) With(count int, on bool) Pattern {
	if count < 0 || count > MaxNeighborCount {
		return p
	}
	if on {
		return p | 1<<uint(count)
	}
	return p &^ (1 << uint(count))
}

// Toggle flips membership of count.
func (p Pattern) Toggle(count int) Pattern {
	return p.With(count, !p.Has(count))
}

// Counts lists the members in ascending order.
func (p Pattern) Counts() []int {
	var out []int
	for c := 0; c <= MaxNeighborCount; c++ {
		if p.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len reports the number of members.
func (p Pattern) Len() int {
	n := 0
	for c := 0; c <= MaxNeighborCount; c++ {
		if p.Has(c) {
			n++
		}
	}
	return n
}

// String renders the members as ascending digits with no separator.
func (p Pattern) String() string {
	var sb strings.Builder
	for c := 0; c <= MaxNeighborCount; c++ {
		if p.Has(c) {
			sb.WriteByte(byte('0' + c))
		}
	}
	return sb.String()
}

// ParsePattern reads a digit group such as "32" or "233". Every character
// must be a digit 0-8; repeats are allowed and collapse.
func ParsePattern(s string) (Pattern, bool) {
	var p Pattern
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '0'+MaxNeighborCount {
			return 0, false
		}
		p = p.With(int(c-'0'), true)
	}
	return p, true
}
