package vars

// FirstNonZero returns the first argument that is not the zero value,
// typically a flag, then a config value, then a default.
func FirstNonZero[T comparable](candidates ...T) (ret T) {
	for _, candidate := range candidates {
		if candidate != ret {
			return candidate
		}
	}
	return
}
