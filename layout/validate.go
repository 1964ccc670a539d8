package layout

import (
	"cmp"
	"fmt"

	"github.com/arloliu/fbst/errs"
)

// Validate checks that buf is a valid flat layout.
//
// Returns:
//   - errs.ErrEmptyInput if buf has no elements
//   - errs.ErrLayoutViolation, wrapped with the offending position, if the
//     in-order walk decreases somewhere
func Validate[T cmp.Ordered](buf []T) error {
	if len(buf) == 0 {
		return errs.ErrEmptyInput
	}

	var err error
	prev := -1
	Walk(len(buf), func(pos int) bool {
		if prev >= 0 && buf[pos] < buf[prev] {
			err = fmt.Errorf("%w: position %d (%v) follows position %d (%v) in order",
				errs.ErrLayoutViolation, pos, buf[pos], prev, buf[prev])

			return false
		}
		prev = pos

		return true
	})

	return err
}
