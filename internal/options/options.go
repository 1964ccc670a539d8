// Package options implements generic functional options shared by the table
// constructor and encoder.
package options

// Option configures a target of type T, usually a pointer to a config struct.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error.
// nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
