package core

import (
	"errors"
	"fmt"
	"strings"
)

// Boundary selects how samples outside the grid are resolved.
type Boundary uint8

const (
	// BoundaryClip treats outside samples as missing.
	BoundaryClip Boundary = iota
	// BoundaryWrap wraps coordinates toroidally.
	BoundaryWrap
	// BoundaryMirrorWrap tiles the plane with alternately mirrored copies.
	BoundaryMirrorWrap
)

// ErrUnknownBoundary is returned when a boundary name cannot be parsed.
var ErrUnknownBoundary = errors.New("unknown boundary")

var boundaryNames = [...]string{
	BoundaryClip:       "Clip",
	BoundaryWrap:       "Wrap",
	BoundaryMirrorWrap: "MirrorWrap",
}

// Boundaries lists every boundary policy in declaration order.
func Boundaries() []Boundary {
	return []Boundary{BoundaryClip, BoundaryWrap, BoundaryMirrorWrap}
}

func (b Boundary) String() string {
	if int(b) < len(boundaryNames) {
		return boundaryNames[b]
	}
	return fmt.Sprintf("Boundary(%d)", uint8(b))
}

// Next cycles to the following boundary policy.
func (b Boundary) Next() Boundary {
	return Boundary((int(b) + 1) % len(boundaryNames))
}

// ParseBoundary accepts a boundary name, ignoring case and surrounding space.
func ParseBoundary(s string) (Boundary, error) {
	s = strings.TrimSpace(s)
	for i, name := range boundaryNames {
		if strings.EqualFold(s, name) {
			return Boundary(i), nil
		}
	}
	return BoundaryWrap, fmt.Errorf("%w %q", ErrUnknownBoundary, s)
}
