package domain

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
// Patch types use it to merge optional fields.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
