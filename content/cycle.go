package content

// Next returns the index after i in a ring of n items.
func Next(i, n int) int {
	if n <= 0 {
		return 0
	}
	return Wrap(i+1, n)
}

// Prev returns the index before i in a ring of n items.
func Prev(i, n int) int {
	if n <= 0 {
		return 0
	}
	return Wrap(i-1, n)
}

// Wrap folds any index, including negative ones, into [0, n).
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
