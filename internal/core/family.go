package core

import (
	"errors"
	"fmt"
	"strings"
)

// Family enumerates the supported cellular automaton families.
type Family uint8

const (
	FamilyCyclic Family = iota
	FamilyGeneration
	FamilyLifelike
)

// ErrUnknownFamily is returned when a family name cannot be parsed.
var ErrUnknownFamily = errors.New("unknown family")

var familyNames = [...]string{
	FamilyCyclic:     "Cyclic",
	FamilyGeneration: "Generation",
	FamilyLifelike:   "Lifelike",
}

// Families lists every family in declaration order.
func Families() []Family {
	return []Family{FamilyCyclic, FamilyGeneration, FamilyLifelike}
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

// Next cycles to the following family.
func (f Family) Next() Family {
	return Family((int(f) + 1) % len(familyNames))
}

// ParseFamily accepts a family name, ignoring case and surrounding space.
func ParseFamily(s string) (Family, error) {
	s = strings.TrimSpace(s)
	for i, name := range familyNames {
		if strings.EqualFold(s, name) {
			return Family(i), nil
		}
	}
	return FamilyGeneration, fmt.Errorf("%w %q", ErrUnknownFamily, s)
}
