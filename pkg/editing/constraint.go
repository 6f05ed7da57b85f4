package editing

import (
	"slices"
	"unicode/utf8"
)

// Constraint decides whether an edit may turn old into new.
// An edit is dropped if any constraint of the State rejects it.
type Constraint interface {
	Allow(old, new string) bool
}

// ConstraintFunc adapts a function to the Constraint interface.
type ConstraintFunc func(old, new string) bool

// Allow calls f(old, new).
func (f ConstraintFunc) Allow(old, new string) bool {
	return f(old, new)
}

// AllowedCharacters accepts only text made of the listed characters.
type AllowedCharacters []rune

// Allow implements Constraint.
func (c AllowedCharacters) Allow(_, new string) bool {
	for _, r := range new {
		if !slices.Contains(c, r) {
			return false
		}
	}
	return true
}

// DisallowedCharacters rejects text containing any of the listed characters.
type DisallowedCharacters []rune

// Allow implements Constraint.
func (c DisallowedCharacters) Allow(_, new string) bool {
	for _, r := range new {
		if slices.Contains(c, r) {
			return false
		}
	}
	return true
}

// MaxLength rejects text longer than the given number of characters.
type MaxLength int

// Allow implements Constraint.
func (c MaxLength) Allow(_, new string) bool {
	return utf8.RuneCountInString(new) <= int(c)
}

// DefaultConstraints returns the constraints applied when a Config leaves
// Constraints nil: newlines are rejected.
func DefaultConstraints() []Constraint {
	return []Constraint{DisallowedCharacters{'\n'}}
}
