package core

import (
	"fmt"

	"github.com/rprtr258/fun"

	"github.com/rprtr258/mng/internal/errors"
)

type Gender int

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderUnspecified:
		return "any"
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", g)
	}
}

func ParseGender(s string) (Gender, error) {
	switch s {
	case "", "any":
		return GenderUnspecified, nil
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	default:
		return GenderUnspecified, errors.Newf("unknown gender: %q", s)
	}
}

type Class int

const (
	ClassUnspecified Class = iota
	ClassNoble
	ClassCommoner
)

func (c Class) String() string {
	switch c {
	case ClassUnspecified:
		return "any"
	case ClassNoble:
		return "noble"
	case ClassCommoner:
		return "commoner"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", c)
	}
}

func ParseClass(s string) (Class, error) {
	switch s {
	case "", "any":
		return ClassUnspecified, nil
	case "noble":
		return ClassNoble, nil
	case "commoner":
		return ClassCommoner, nil
	default:
		return ClassUnspecified, errors.Newf("unknown class: %q", s)
	}
}

// Pair is a generated full name
type Pair struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

func (p Pair) String() string {
	return p.First + " " + p.Last
}

// Request describes single generation call
type Request struct {
	Count      int
	Gender     Gender
	Class      Class
	UniqueLast bool // no surname repeats in the batch
	UniqueFull bool // no exact full name repeats in the batch
	// Seed, if set, makes output reproducible
	Seed fun.Option[int64]
}

func (r Request) Validate() error {
	if r.Count < 0 {
		return errors.Newf("count must not be negative, got %d", r.Count)
	}

	return nil
}
