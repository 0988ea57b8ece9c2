// Package sorting implements the six benchmarked sorting algorithms.
//
// Every algorithm shares one contract: it sorts the first n elements of t
// in non-decreasing order, in place, and returns t. Arrays with n < 2 are
// returned untouched. Elements past index n-1 are never read or written.
// A negative n or an n larger than len(t) fails fast with an *InputError.
package sorting

import (
	"cmp"
	"errors"
	"fmt"
)

// Func is the shared sort contract.
type Func[T cmp.Ordered] func(t []T, n int) ([]T, error)

var (
	// ErrNegativeLength is returned when the logical length is negative.
	ErrNegativeLength = errors.New("negative length")
	// ErrLengthOutOfRange is returned when the logical length exceeds the array size.
	ErrLengthOutOfRange = errors.New("length exceeds array size")
)

// InputError describes a rejected sort call.
type InputError struct {
	Algorithm string
	Length    int
	Size      int
	Err       error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid length %d for array of size %d: %v", e.Algorithm, e.Length, e.Size, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func checkLength(algorithm string, size, n int) error {
	switch {
	case n < 0:
		return &InputError{Algorithm: algorithm, Length: n, Size: size, Err: ErrNegativeLength}
	case n > size:
		return &InputError{Algorithm: algorithm, Length: n, Size: size, Err: ErrLengthOutOfRange}
	}
	return nil
}
