package infset

import "fmt"

/* Error type returned when a subset test relates a union to a complement.
No result is defined for such comparisons. */
type ErrMixedComparison struct {
	selfComplement, otherComplement bool
}

func (e *ErrMixedComparison) Error() string {
	return fmt.Sprintf("subset test between a %s and a %s is not defined",
		representationName(e.selfComplement), representationName(e.otherComplement))
}

func representationName(complement bool) string {
	if complement {
		return "complement"
	}
	return "union"
}
