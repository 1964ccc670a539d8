package table

import (
	"slices"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
	"github.com/arloliu/fbst/internal/options"
	"github.com/arloliu/fbst/layout"
	"github.com/arloliu/fbst/search"
)

// Table is an immutable flat search tree over integers of type T.
type Table[T constraints.Integer] struct {
	buf    []T
	layout format.LayoutType
}

// New builds a Table from a non-decreasing sequence. sorted is copied.
//
// Returns:
//   - *Table[T]: the built table
//   - error: errs.ErrEmptyInput, errs.ErrUnsorted, or an option error
func New[T constraints.Integer](sorted []T, opts ...Option) (*Table[T], error) {
	cfg := newBuildConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(sorted) == 0 {
		return nil, errs.ErrEmptyInput
	}

	if !slices.IsSorted(sorted) {
		return nil, errs.ErrUnsorted
	}

	var buf []T
	switch cfg.layout {
	case format.LayoutMidpoint:
		buf = layout.BuildMidpoint(sorted)
	default:
		buf = layout.Build(sorted)
	}

	return &Table[T]{buf: buf, layout: cfg.layout}, nil
}

// FromLayout adopts an existing in-order flat buffer after validating it.
// buf is copied.
//
// Returns errs.ErrEmptyInput or a wrapped errs.ErrLayoutViolation.
func FromLayout[T constraints.Integer](buf []T) (*Table[T], error) {
	if err := layout.Validate(buf); err != nil {
		return nil, err
	}

	return &Table[T]{buf: slices.Clone(buf), layout: format.LayoutInOrder}, nil
}

// Len returns the number of values.
func (t *Table[T]) Len() int {
	return len(t.buf)
}

// Index returns the descent position for q.
func (t *Table[T]) Index(q T) int {
	return search.Index(t.buf, len(t.buf), q)
}

// Lookup returns the value at the descent position for q.
func (t *Table[T]) Lookup(q T) T {
	return t.buf[search.Index(t.buf, len(t.buf), q)]
}

// At returns the value stored at tree position pos.
func (t *Table[T]) At(pos int) T {
	return t.buf[pos]
}

// Begin returns a cursor at the root of the flat buffer.
func (t *Table[T]) Begin() search.Cursor[T] {
	return search.Begin[T](search.Slice[T](t.buf))
}

// End returns a cursor one past the last position of the flat buffer.
func (t *Table[T]) End() search.Cursor[T] {
	return search.End[T](search.Slice[T](t.buf))
}

// Layout returns the flat buffer. The caller must not modify it.
func (t *Table[T]) Layout() []T {
	return t.buf
}

// LayoutType returns the builder the table was created with.
func (t *Table[T]) LayoutType() format.LayoutType {
	return t.layout
}

// Width returns the storage width of T.
func (t *Table[T]) Width() format.Width {
	return widthOf[T]()
}

// Sorted returns a sorted copy of the values.
func (t *Table[T]) Sorted() []T {
	if t.layout == format.LayoutInOrder {
		return layout.InOrder(t.buf)
	}

	sorted := slices.Clone(t.buf)
	slices.Sort(sorted)

	return sorted
}

func widthOf[T constraints.Integer]() format.Width {
	var zero T

	return format.Width(unsafe.Sizeof(zero))
}

func isSigned[T constraints.Integer]() bool {
	var zero T

	return zero-1 < zero
}
