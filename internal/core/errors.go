package core

import (
	"fmt"

	"github.com/rprtr258/mng/internal/errors"
)

var (
	ErrInsufficientSurnames     = errors.New("insufficient surnames")
	ErrInsufficientCombinations = errors.New("insufficient combinations")
	ErrUnresolvableCollision    = errors.New("unresolvable collision")
)

// InsufficientSurnamesError is returned when unique surnames are requested
// and the selected pool has fewer surnames than requested names.
type InsufficientSurnamesError struct {
	Requested int
	Available int
}

func (e *InsufficientSurnamesError) Error() string {
	return fmt.Sprintf(
		"requested %d names with unique last names, but only %d surnames in the selected pool",
		e.Requested, e.Available,
	)
}

func (e *InsufficientSurnamesError) Unwrap() error {
	return ErrInsufficientSurnames
}

// InsufficientCombinationsError is returned when unique full names are requested
// and there are fewer first x last combinations than requested names.
type InsufficientCombinationsError struct {
	Requested    int
	Combinations int
	Firsts       int
	Lasts        int
}

func (e *InsufficientCombinationsError) Error() string {
	return fmt.Sprintf(
		"requested %d unique full names, but only %d unique combos possible (%d firsts × %d lasts)",
		e.Requested, e.Combinations, e.Firsts, e.Lasts,
	)
}

func (e *InsufficientCombinationsError) Unwrap() error {
	return ErrInsufficientCombinations
}

// UnresolvableCollisionError is returned when every first name is already
// paired with the chosen surname.
type UnresolvableCollisionError struct {
	Last string
}

func (e *UnresolvableCollisionError) Error() string {
	return fmt.Sprintf("ran out of unique first names for chosen last %q", e.Last)
}

func (e *UnresolvableCollisionError) Unwrap() error {
	return ErrUnresolvableCollision
}
