package infset

/* Reports whether s has no members in common with other.

A union and a complement are disjoint exactly when every member of the union
is excluded by the complement. Two complements are never disjoint: each
excludes only finitely many values, so their overlap is itself infinite. */
func (s *Set[T]) IsDisjoint(other *Set[T]) bool {
	switch {
	case !s.complement && !other.complement:
		return s.storage.IsDisjoint(&other.storage)
	case !s.complement:
		return s.storage.IsSubset(&other.storage)
	case !other.complement:
		return other.storage.IsSubset(&s.storage)
	default:
		return false
	}
}

/* Reports whether every member of s is a member of other.

Between two unions this is the finite subset test. Between two complements the
test reverses: s is the smaller set when it excludes at least everything other
excludes. Comparing a union against a complement has no defined result and
returns an [*ErrMixedComparison]. */
func (s *Set[T]) IsSubset(other *Set[T]) (bool, error) {
	switch {
	case !s.complement && !other.complement:
		return s.storage.IsSubset(&other.storage), nil
	case s.complement && other.complement:
		return other.storage.IsSubset(&s.storage), nil
	default:
		return false, &ErrMixedComparison{s.complement, other.complement}
	}
}

/* Reports whether every member of other is a member of s.
Subject to the same mixed-representation restriction as [Set.IsSubset]. */
func (s *Set[T]) IsSuperset(other *Set[T]) (bool, error) {
	return other.IsSubset(s)
}

/* Returns the set of values that are members of s or other (or both).

Two unions merge their members. A union and a complement form a complement
that no longer excludes the union's members. Two complements keep only the
exclusions they agree on. */
func (s *Set[T]) Union(other *Set[T]) Set[T] {
	switch {
	case !s.complement && !other.complement:
		return Set[T]{complement: false, storage: s.storage.Union(&other.storage)}
	case s.complement && other.complement:
		return Set[T]{complement: true, storage: s.storage.Intersect(&other.storage)}
	case s.complement:
		return Set[T]{complement: true, storage: s.storage.Difference(&other.storage)}
	default:
		return Set[T]{complement: true, storage: other.storage.Difference(&s.storage)}
	}
}

/* Returns the set of values that are members of both s and other.

Two unions keep their common members. A union and a complement keep the
union's members that the complement does not exclude, which is again a finite
union. Two complements pool their exclusions. */
func (s *Set[T]) Intersect(other *Set[T]) Set[T] {
	switch {
	case !s.complement && !other.complement:
		return Set[T]{complement: false, storage: s.storage.Intersect(&other.storage)}
	case s.complement && other.complement:
		return Set[T]{complement: true, storage: s.storage.Union(&other.storage)}
	case s.complement:
		return Set[T]{complement: false, storage: other.storage.Difference(&s.storage)}
	default:
		return Set[T]{complement: false, storage: s.storage.Difference(&other.storage)}
	}
}

/* In-place form of [Set.Union].
The result's representation may differ from the receiver's original one, so
the full result is built first and then replaces the receiver wholesale. */
func (s *Set[T]) UnionWith(other *Set[T]) {
	*s = s.Union(other)
}

/* In-place form of [Set.Intersect]. Replaces the receiver wholesale, as
[Set.UnionWith] does. */
func (s *Set[T]) IntersectWith(other *Set[T]) {
	*s = s.Intersect(other)
}
