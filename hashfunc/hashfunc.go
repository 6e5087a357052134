package hashfunc

// HashAlgorithm - Interface that permits an implementation using the RecordTable to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the record table is created and every time the bucket array grows. Hence, if a custom
	// hash algorithm is supplied that implements this interface and the instance is already having a table size, it
	// will be overwritten by the current capacity of the record table.
	//   - tableSize is the number of buckets the bucket array addresses
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key int64) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// The record table requires the table size to be exactly what was given in the last call to SetTableSize,
	// an algorithm that rounds the size (to a power of 2 or a prime) can not be used since capacity must
	// double exactly on growth.
	GetTableSize() int64
}
