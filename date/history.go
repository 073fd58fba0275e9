package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values keyed by date.
// Dates are unique and the series is always sorted ascending.
// The zero value is an empty history ready to use.
type History[T float32 | float64] struct {
	points []point[T]
}

type point[T float32 | float64] struct {
	day   Date
	value T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.points) }

// search locates the insertion index for 'day'.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.points, day, func(p point[T], d Date) int {
		return p.day.Compare(d)
	})
}

// Set records a value at a date, overwriting any existing value there.
func (h *History[T]) Set(day Date, v T) *History[T] {
	i, found := h.search(day)
	if found {
		h.points[i].value = v
		return h
	}
	h.points = slices.Insert(h.points, i, point[T]{day, v})
	return h
}

// Add records a value at a date, summing with any existing value there.
// This is the merge primitive: series from several accounts accumulate
// into one by adding same-date points.
func (h *History[T]) Add(day Date, v T) *History[T] {
	i, found := h.search(day)
	if found {
		h.points[i].value += v
		return h
	}
	h.points = slices.Insert(h.points, i, point[T]{day, v})
	return h
}

// Get returns the value at 'day' and whether it exists.
func (h *History[T]) Get(day Date) (T, bool) {
	i, found := h.search(day)
	if !found {
		var zero T
		return zero, false
	}
	return h.points[i].value, true
}

// First returns the earliest date and value, or zero values when empty.
func (h *History[T]) First() (Date, T) {
	if len(h.points) == 0 {
		var zero T
		return Date{}, zero
	}
	return h.points[0].day, h.points[0].value
}

// Latest returns the most recent date and value, or zero values when empty.
func (h *History[T]) Latest() (Date, T) {
	if len(h.points) == 0 {
		var zero T
		return Date{}, zero
	}
	last := h.points[len(h.points)-1]
	return last.day, last.value
}

// Values iterates over all date/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for _, p := range h.points {
			if !yield(p.day, p.value) {
				return
			}
		}
	}
}
