package utils

func Filter[T any](src []T, predicate func(T) bool) []T {
	dst := make([]T, 0, len(src))
	for _, item := range src {
		if predicate(item) {
			dst = append(dst, item)
		}
	}
	return dst
}

func Map[T any, U any](src []T, mapper func(T) U) []U {
	dst := make([]U, 0, len(src))
	for _, item := range src {
		dst = append(dst, mapper(item))
	}
	return dst
}

func Find[T any](items []T, predicate func(T) bool) *T {
	for i := range items {
		if predicate(items[i]) {
			return &items[i]
		}
	}
	return nil
}

func Contains[T comparable](items []T, v T) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

// GroupBy keeps the keys in first-appearance order alongside the grouped map.
func GroupBy[T any, K comparable](items []T, keyFunc func(T) K) ([]K, map[K][]T) {
	var keys []K
	result := make(map[K][]T)
	for _, item := range items {
		key := keyFunc(item)
		if _, ok := result[key]; !ok {
			keys = append(keys, key)
		}
		result[key] = append(result[key], item)
	}
	return keys, result
}
