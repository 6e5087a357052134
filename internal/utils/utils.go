package utils

import "fmt"

// Mod - Returns the Euclidean modulo of a and n, which unlike the % operator is never negative.
// n must be higher than 0 (zero).
func Mod(a, n int64) int64 {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}

// DoubleCapacity - Returns capacity * 2 unless the result would pass maxCapacity (or overflow), in which case an error is returned
func DoubleCapacity(capacity, maxCapacity int64) (newCapacity int64, err error) {
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}
	if capacity > maxCapacity/2 {
		err = fmt.Errorf("doubled capacity %d would exceed max capacity %d", capacity, maxCapacity)
		return
	}

	newCapacity = capacity * 2

	return
}
