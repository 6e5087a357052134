package hash

import "github.com/gostonefire/recordtable/internal/utils"

// ModuloHashAlgorithm - The internally used bucket selection algorithm is implemented as bucket = key mod tableSize,
// where the modulo is Euclidean so that negative keys also end up in 0 -> tableSize - 1.
// Unlike algorithms rounding to a power of 2 the table size is kept exactly as given, which is what makes the
// capacity of the record table double exactly on growth.
type ModuloHashAlgorithm struct {
	tableSize int64
}

// NewModuloHashAlgorithm - Returns a pointer to a new ModuloHashAlgorithm instance
func NewModuloHashAlgorithm(tableSize int64) *ModuloHashAlgorithm {
	ha := &ModuloHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the bucket array addresses
func (M *ModuloHashAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (M *ModuloHashAlgorithm) HashFunc1(key int64) int64 {
	if M.tableSize <= 0 {
		return -1
	}
	return utils.Mod(key, M.tableSize)
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (M *ModuloHashAlgorithm) GetTableSize() int64 {
	return M.tableSize
}
