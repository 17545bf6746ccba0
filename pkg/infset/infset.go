/*
Package infset implements sets drawn from a conceptually infinite universe of
values.

A [Set] is either a union, enumerating its members outright, or a complement,
enumerating the values it excludes while containing every other value. An
empty complement therefore contains literally everything, not nothing.

The element type is assumed to have infinitely many possible values. Choosing
a type with few inhabitants (such as a small enumeration) still works, but an
empty complement is never collapsed to the finite enumeration of those
inhabitants: it keeps meaning "all".
*/
package infset

import (
	"gitlab.com/kyle_anderson/go-utils/pkg/iterator"
	"gitlab.com/kyle_anderson/infset/pkg/ordered"
	"golang.org/x/exp/constraints"
)

/* A set that is either a finite union of members or the complement of a
finite exclusion list. The zero value is the empty set. */
type Set[T constraints.Ordered] struct {
	complement bool
	storage    ordered.Set[T]
}

/* Creates the empty set: a union with no members. */
func New[T constraints.Ordered]() Set[T] {
	return Set[T]{}
}

/* Creates the set containing all values: a complement with no exclusions. */
func All[T constraints.Ordered]() Set[T] {
	return Set[T]{complement: true}
}

/* Creates a union of the given members. Duplicates are merged. */
func From[T constraints.Ordered](elements ...T) Set[T] {
	return Set[T]{storage: ordered.New(elements...)}
}

/* Creates the complement of the given elements: every value not listed is a
member, every value listed is excluded. Duplicates are merged. */
func FromComplement[T constraints.Ordered](excluded ...T) Set[T] {
	return Set[T]{complement: true, storage: ordered.New(excluded...)}
}

/* Creates a union whose members are the given finite set.
The set takes ownership of the storage. */
func FromSet[T constraints.Ordered](members ordered.Set[T]) Set[T] {
	return Set[T]{storage: members}
}

/* Creates a complement whose exclusions are the given finite set.
The set takes ownership of the storage. */
func FromComplementSet[T constraints.Ordered](excluded ordered.Set[T]) Set[T] {
	return Set[T]{complement: true, storage: excluded}
}

/* Creates a union of the members produced by the given iterator. */
func FromIterator[T constraints.Ordered](it iterator.Iterator[T]) (Set[T], error) {
	storage, err := ordered.FromIterator(it)
	if err != nil {
		return Set[T]{}, err
	}
	return FromSet(storage), nil
}

/* Creates a complement of the exclusions produced by the given iterator. */
func FromComplementIterator[T constraints.Ordered](it iterator.Iterator[T]) (Set[T], error) {
	storage, err := ordered.FromIterator(it)
	if err != nil {
		return Set[T]{}, err
	}
	return FromComplementSet(storage), nil
}

/* Resets the set to the empty union.
A complement is not reduced to an empty complement: clearing always yields the
empty set, never "all". */
func (s *Set[T]) Clear() {
	*s = New[T]()
}

/* Reports whether value is a member of the set. */
func (s *Set[T]) Contains(value T) bool {
	if s.complement {
		return !s.storage.Contains(value)
	}
	return s.storage.Contains(value)
}

/* Makes value a member of the set.
A union gains a stored member; a complement loses a stored exclusion. Either
way Contains(value) is true afterwards. */
func (s *Set[T]) Insert(value T) {
	if s.complement {
		s.storage.Remove(value)
	} else {
		s.storage.Insert(value)
	}
}

/* Reports whether the set has no members.
Only an empty union is empty; a complement always has members, even with no
exclusions stored. */
func (s *Set[T]) IsEmpty() bool {
	return !s.complement && s.storage.IsEmpty()
}

/* Reports whether the set contains every value, i.e. is a complement with no
exclusions stored. */
func (s *Set[T]) IsAll() bool {
	return s.complement && s.storage.IsEmpty()
}

func (s *Set[T]) IsUnion() bool {
	return !s.complement
}

func (s *Set[T]) IsComplement() bool {
	return s.complement
}

/* Grants read-only access to the underlying finite storage, regardless of how
it is interpreted. Callers must not mutate it. */
func (s *Set[T]) Storage() *ordered.Set[T] {
	return &s.storage
}

/* Returns an owned copy of the underlying finite storage, regardless of how
it is interpreted. */
func (s *Set[T]) IntoStorage() ordered.Set[T] {
	return s.storage.Clone()
}

/* Returns the membership storage if the set is a union. */
func (s *Set[T]) AsUnion() (*ordered.Set[T], bool) {
	if s.complement {
		return nil, false
	}
	return &s.storage, true
}

/* Returns the exclusion storage if the set is a complement. */
func (s *Set[T]) AsComplement() (*ordered.Set[T], bool) {
	if !s.complement {
		return nil, false
	}
	return &s.storage, true
}

/* Narrows the set to its finite membership.
Succeeds only for unions, returning an owned copy of the members. On failure
the set is left untouched, so no data is lost by attempting the conversion. */
func (s *Set[T]) IntoUnion() (ordered.Set[T], bool) {
	if s.complement {
		return ordered.Set[T]{}, false
	}
	return s.storage.Clone(), true
}

/* Narrows the set to its finite exclusion list.
Succeeds only for complements; the counterpart of [Set.IntoUnion]. */
func (s *Set[T]) IntoComplement() (ordered.Set[T], bool) {
	if !s.complement {
		return ordered.Set[T]{}, false
	}
	return s.storage.Clone(), true
}

func (s *Set[T]) Clone() Set[T] {
	return Set[T]{s.complement, s.storage.Clone()}
}

/* Reports whether the two sets have the same representation.
Equality is representational: a union and a complement are never equal, even
if they happen to describe the same membership. */
func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.complement == other.complement && s.storage.Equal(&other.storage)
}

/* Orders sets by representation: unions before complements, then
lexicographically by storage. Returns -1, 0 or 1. */
func (s *Set[T]) Compare(other *Set[T]) int {
	if s.complement != other.complement {
		if other.complement {
			return -1
		}
		return 1
	}
	return s.storage.Compare(&other.storage)
}

/* Renders the storage in its usual textual form, prefixed with "!" for a
complement. Intended for diagnostics, not parsing. */
func (s *Set[T]) String() string {
	if s.complement {
		return "!" + s.storage.String()
	}
	return s.storage.String()
}
