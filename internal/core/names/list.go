package names

import (
	"github.com/rprtr258/mng/internal/errors"
)

// ListKind names a single pool for bulk export.
type ListKind string

const (
	ListGivenMale        ListKind = "mfirst"
	ListGivenFemale      ListKind = "ffirst"
	ListSurnamesNoble    ListKind = "nlast"
	ListSurnamesCommoner ListKind = "clast"
)

var ListKinds = []ListKind{
	ListGivenMale,
	ListGivenFemale,
	ListSurnamesNoble,
	ListSurnamesCommoner,
}

func (k ListKind) Description() string {
	switch k {
	case ListGivenMale:
		return "male given names"
	case ListGivenFemale:
		return "female given names"
	case ListSurnamesNoble:
		return "noble surnames"
	case ListSurnamesCommoner:
		return "commoner surnames"
	default:
		return "unknown list"
	}
}

func ParseListKind(s string) (ListKind, error) {
	for _, kind := range ListKinds {
		if string(kind) == s {
			return kind, nil
		}
	}

	return "", errors.Newf("unknown list %q, valid values are mfirst, ffirst, nlast and clast", s)
}

// List returns a copy of single named pool.
func List(kind ListKind) ([]string, error) {
	switch kind {
	case ListGivenMale:
		return GivenMale(), nil
	case ListGivenFemale:
		return GivenFemale(), nil
	case ListSurnamesNoble:
		return SurnamesNoble(), nil
	case ListSurnamesCommoner:
		return SurnamesCommoner(), nil
	default:
		return nil, errors.Newf("unknown list %q", string(kind))
	}
}
