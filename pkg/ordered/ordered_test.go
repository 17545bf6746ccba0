package ordered

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gitlab.com/kyle_anderson/go-utils/pkg/iterator"
)

func TestOperations(t *testing.T) {
	items := []int{3, 1, 4, 2}
	s := New(items...)

	t.Run("elements are sorted and deduplicated", func(t *testing.T) {
		dup := New(2, 1, 2, 3, 1)
		if got, want := dup.Elements(), []int{1, 2, 3}; !cmp.Equal(got, want) {
			t.Errorf("Elements(): -want +got\n%s", cmp.Diff(want, got))
		}
	})

	t.Run("iterator", func(t *testing.T) {
		var received []int
		it := s.It()
		defer it.Close()
	loop:
		for {
			elem, err := it.Next()
			switch {
			case err == nil:
				received = append(received, elem)
			case err.IsDone():
				break loop
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if want := []int{1, 2, 3, 4}; !cmp.Equal(received, want) {
			t.Errorf("iterated elements: -want +got\n%s", cmp.Diff(want, received))
		}
	})

	t.Run("contains and remove", func(t *testing.T) {
		s := New(items...)
		for _, value := range items {
			if !s.Contains(value) {
				t.Errorf("Contains(%v) was false when it should have been true", value)
			}
			if !s.Remove(value) {
				t.Errorf("Remove(%v) reported the value as absent", value)
			}
			if s.Contains(value) {
				t.Errorf("Contains(%v) was true after removing the item when it should be false", value)
			}
		}
		if !s.IsEmpty() {
			t.Errorf("set was not empty after removing every item: %v", s.Elements())
		}
	})

	t.Run("contains and insert", func(t *testing.T) {
		s := New(items...)
		toAdd := []int{9, 928, -910, 0b11101}
		for _, value := range toAdd {
			if s.Contains(value) {
				t.Errorf("set contains %v prior to adding it", value)
			}
			if !s.Insert(value) {
				t.Errorf("Insert(%v) reported the value as already present", value)
			}
			if !s.Contains(value) {
				t.Errorf("set does not contain %v after adding it", value)
			}
		}
		if s.Insert(9) {
			t.Error("Insert(9) reported a duplicate value as newly added")
		}
	})

	t.Run("clear", func(t *testing.T) {
		s := New(items...)
		s.Clear()
		if !s.IsEmpty() || s.Len() != 0 {
			t.Errorf("set was not empty after Clear: %v", s.Elements())
		}
	})
}

func TestFromIterator(t *testing.T) {
	s, err := FromIterator[string](iterator.SliceIterator([]string{"b", "a", "b", "c"}))
	if err != nil {
		t.Fatalf("FromIterator returned unexpected error: %v", err)
	}
	if got, want := s.Elements(), []string{"a", "b", "c"}; !cmp.Equal(got, want) {
		t.Errorf("Elements(): -want +got\n%s", cmp.Diff(want, got))
	}
}

func TestClone(t *testing.T) {
	original := New(1, 2)
	clone := original.Clone()
	clone.Insert(3)
	if original.Contains(3) {
		t.Error("mutating a clone affected the original set")
	}
	if clone.Len() != 3 || original.Len() != 2 {
		t.Errorf("unexpected lengths after clone mutation: original %d, clone %d", original.Len(), clone.Len())
	}
}

func TestComparisons(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Set[int]
		want int
	}{
		{"equal sets", New(1, 2, 3), New(3, 2, 1), 0},
		{"prefix orders first", New(1, 2), New(1, 2, 3), -1},
		{"smaller element orders first", New(1, 4), New(2, 3), -1},
		{"empty orders first", New[int](), New(0), -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Compare(&tc.b); got != tc.want {
				t.Errorf("Compare() = %d, want %d", got, tc.want)
			}
			if got := tc.b.Compare(&tc.a); got != -tc.want {
				t.Errorf("reversed Compare() = %d, want %d", got, -tc.want)
			}
			if got, want := tc.a.Equal(&tc.b), tc.want == 0; got != want {
				t.Errorf("Equal() = %t, want %t", got, want)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := New(3, 1, 2)
	if got, want := s.String(), "{1 2 3}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	empty := New[int]()
	if got, want := empty.String(), "{}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
