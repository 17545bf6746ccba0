/*
Package ordered provides a finite set implementation for totally ordered
element types. Elements are kept sorted, giving every set a canonical element
order usable for lexicographic comparison between sets.
*/
package ordered

import (
	"fmt"
	"strings"

	"gitlab.com/kyle_anderson/go-utils/pkg/iterator"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

/* A finite set of elements kept in ascending order, without duplicates.
The zero value is an empty set ready for use. */
type Set[T constraints.Ordered] struct {
	elems []T
}

/* Creates a set of the given elements. Duplicates are merged. */
func New[T constraints.Ordered](elements ...T) Set[T] {
	elems := slices.Clone(elements)
	slices.Sort(elems)
	return Set[T]{slices.Compact(elems)}
}

/* Builds a set by draining the given iterator.
The iterator is closed before returning. An error is returned only if the
iterator itself errors. */
func FromIterator[T constraints.Ordered](it iterator.Iterator[T]) (Set[T], error) {
	defer it.Close()
	var elements []T
loop:
	for {
		elem, err := it.Next()
		switch {
		case err == nil:
			elements = append(elements, elem)
		case err.IsDone():
			break loop
		default:
			return Set[T]{}, fmt.Errorf(`ordered.FromIterator: iterator errored: %w`, err)
		}
	}
	return New(elements...), nil
}

/* Inserts the element, reporting whether it was newly added. */
func (s *Set[T]) Insert(element T) bool {
	i, found := slices.BinarySearch(s.elems, element)
	if found {
		return false
	}
	s.elems = slices.Insert(s.elems, i, element)
	return true
}

/* Removes the element, reporting whether it was present. */
func (s *Set[T]) Remove(element T) bool {
	i, found := slices.BinarySearch(s.elems, element)
	if !found {
		return false
	}
	s.elems = slices.Delete(s.elems, i, i+1)
	return true
}

func (s *Set[T]) Contains(element T) bool {
	_, found := slices.BinarySearch(s.elems, element)
	return found
}

func (s *Set[T]) Len() int {
	return len(s.elems)
}

func (s *Set[T]) IsEmpty() bool {
	return len(s.elems) == 0
}

/* Removes all elements from the set. */
func (s *Set[T]) Clear() {
	s.elems = nil
}

/* Returns the elements in ascending order. The returned slice is owned by the
caller and independent of the set. */
func (s *Set[T]) Elements() []T {
	return slices.Clone(s.elems)
}

/* Iterates the elements in ascending order.
The set must not be mutated while the iterator is in use. */
func (s *Set[T]) It() iterator.Iterator[T] {
	return iterator.SliceIterator(s.elems)
}

func (s *Set[T]) Clone() Set[T] {
	return Set[T]{slices.Clone(s.elems)}
}

func (s *Set[T]) Equal(other *Set[T]) bool {
	return slices.Equal(s.elems, other.elems)
}

/* Compares two sets lexicographically over their ascending element sequences,
returning -1, 0 or 1. */
func (s *Set[T]) Compare(other *Set[T]) int {
	return slices.Compare(s.elems, other.elems)
}

func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, elem := range s.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", elem)
	}
	sb.WriteByte('}')
	return sb.String()
}
