package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Sum[T ~int | ~int64 | ~float64](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}
