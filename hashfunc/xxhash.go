package hashfunc

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - A bucket selection algorithm that mixes the key with xxhash before applying the modulo.
// Sequential or strided keys (all multiples of 10 for instance) that would pile up in a few buckets with plain
// key modulo capacity are spread evenly instead.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance, the table size is set by the record table
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the bucket array addresses
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc1(key int64) int64 {
	if X.tableSize <= 0 {
		return -1
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	h := xxhash.Sum64(buf[:])

	return int64(h % uint64(X.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
