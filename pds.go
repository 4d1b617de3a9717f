package pds

// Ordered is the constraint for element types carrying a natural `<`
// ordering. It admits the built-in integer, float and string kinds,
// including named types derived from them.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Min returns the smaller of a and b.
func Min[T Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
