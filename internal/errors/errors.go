// Package errors wraps standard errors with message-first helpers.
package errors

import (
	stdErrors "errors"
	"fmt"
	"strings"
)

var (
	Is = stdErrors.Is
	As = stdErrors.As
)

func New(msg string) error {
	return stdErrors.New(msg)
}

func Newf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

func Wrap(err error, msg string) error {
	return fmt.Errorf("%s: %w", msg, err)
}

func Wrapf(err error, format string, args ...any) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// multi holds several errors, reported on one line and matched by Is/As
// against each of them.
type multi []error

func (m multi) Error() string {
	var sb strings.Builder
	for i, err := range m {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (m multi) Unwrap() []error {
	return m
}

// Combine non-nil errs into one, nil if there are none.
func Combine(errs ...error) error {
	var res multi
	for _, err := range errs {
		if err != nil {
			res = append(res, err)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}
