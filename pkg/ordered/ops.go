package ordered

import "gitlab.com/kyle_anderson/go-utils/pkg/umath"

/* Returns a new set holding the elements present in either s or other. */
func (s *Set[T]) Union(other *Set[T]) Set[T] {
	merged := make([]T, 0, len(s.elems)+len(other.elems))
	i, j := 0, 0
	for i < len(s.elems) && j < len(other.elems) {
		switch {
		case s.elems[i] < other.elems[j]:
			merged = append(merged, s.elems[i])
			i++
		case other.elems[j] < s.elems[i]:
			merged = append(merged, other.elems[j])
			j++
		default:
			merged = append(merged, s.elems[i])
			i++
			j++
		}
	}
	merged = append(merged, s.elems[i:]...)
	merged = append(merged, other.elems[j:]...)
	return Set[T]{merged}
}

/* Returns a new set holding the elements present in both s and other. */
func (s *Set[T]) Intersect(other *Set[T]) Set[T] {
	merged := make([]T, 0, umath.Min(len(s.elems), len(other.elems)))
	i, j := 0, 0
	for i < len(s.elems) && j < len(other.elems) {
		switch {
		case s.elems[i] < other.elems[j]:
			i++
		case other.elems[j] < s.elems[i]:
			j++
		default:
			merged = append(merged, s.elems[i])
			i++
			j++
		}
	}
	return Set[T]{merged}
}

/* Returns a new set holding the elements of s that are not in other. */
func (s *Set[T]) Difference(other *Set[T]) Set[T] {
	merged := make([]T, 0, len(s.elems))
	i, j := 0, 0
	for i < len(s.elems) && j < len(other.elems) {
		switch {
		case s.elems[i] < other.elems[j]:
			merged = append(merged, s.elems[i])
			i++
		case other.elems[j] < s.elems[i]:
			j++
		default:
			i++
			j++
		}
	}
	merged = append(merged, s.elems[i:]...)
	return Set[T]{merged}
}

/* Reports whether every element of s is also an element of other. */
func (s *Set[T]) IsSubset(other *Set[T]) bool {
	if len(s.elems) > len(other.elems) {
		return false
	}
	i, j := 0, 0
	for i < len(s.elems) && j < len(other.elems) {
		switch {
		case s.elems[i] < other.elems[j]:
			return false
		case other.elems[j] < s.elems[i]:
			j++
		default:
			i++
			j++
		}
	}
	return i == len(s.elems)
}

/* Reports whether s and other have no elements in common. */
func (s *Set[T]) IsDisjoint(other *Set[T]) bool {
	i, j := 0, 0
	for i < len(s.elems) && j < len(other.elems) {
		switch {
		case s.elems[i] < other.elems[j]:
			i++
		case other.elems[j] < s.elems[i]:
			j++
		default:
			return false
		}
	}
	return true
}
