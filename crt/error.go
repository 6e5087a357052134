package crt

// SeparateChaining - Collision resolution technique where every bucket holds a linked chain of records
const SeparateChaining = 1

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// KeyExists - Custom error to inform that a record with the same key is already stored
type KeyExists struct {
	msg string
}

// Error - Used to notify that the key already exists
func (E KeyExists) Error() string {
	if E.msg == "" {
		return "key already exists"
	}
	return E.msg
}

// CapacityExhausted - Custom error to inform that the bucket array can not grow any further
type CapacityExhausted struct {
	msg string
}

// Error - Used to notify that capacity is exhausted
func (E CapacityExhausted) Error() string {
	if E.msg == "" {
		return "capacity exhausted"
	}
	return E.msg
}

// HashAlgorithm - Custom error to inform that something went wrong concerning a hash algorithm
type HashAlgorithm struct {
	msg string
}

// Error - Used to notify that a hash algorithm misbehaved
func (H HashAlgorithm) Error() string {
	if H.msg == "" {
		return "hash algorithm returned bucket number outside table size"
	}
	return H.msg
}
