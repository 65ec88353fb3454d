package entity

import "slices"

// ShiftToIndex moves an existing value to targetIndex, clamped to the
// sequence bounds after the value has been removed. A value that is not in
// the sequence is ignored; callers that want insertion must do it themselves.
func ShiftToIndex[T comparable](s *[]T, targetIndex int, value T) {
	index := slices.Index(*s, value)
	if index < 0 {
		return
	}

	rest := slices.Delete(*s, index, index+1)
	targetIndex = min(max(targetIndex, 0), len(rest))
	*s = slices.Insert(rest, targetIndex, value)
}
