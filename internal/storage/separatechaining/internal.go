package separatechaining

import (
	"fmt"
	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/hashfunc"
	"github.com/gostonefire/recordtable/internal/chain"
	"github.com/gostonefire/recordtable/internal/utils"
)

// bucketNo - Returns the bucket number for key using hashAlgorithm, checking it against capacity
func (S *SCBuckets) bucketNo(hashAlgorithm hashfunc.HashAlgorithm, key, capacity int64) (bucketNo int64, err error) {
	bucketNo = hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= capacity {
		err = fmt.Errorf("%w: got %d for key %d, table size is %d", crt.HashAlgorithm{}, bucketNo, key, capacity)
		return
	}

	return
}

// rehash - Grows the bucket array to twice the capacity and reinserts every record into fresh chains.
// Old chains are walked with an iterator that advances before the record is handed out, so reinsertion never
// depends on an old node. The new array and capacity are swapped in together once every record is placed,
// on any error the old array, capacity and hash algorithm table size are left (or put back) as they were.
func (S *SCBuckets) rehash() (err error) {
	newCapacity, err := utils.DoubleCapacity(S.capacity, S.maxCapacity)
	if err != nil {
		err = fmt.Errorf("%w: %s", crt.CapacityExhausted{}, err)
		return
	}

	S.hashAlgorithm.SetTableSize(newCapacity)
	defer func() {
		if err != nil {
			S.hashAlgorithm.SetTableSize(S.capacity)
		}
	}()
	if S.hashAlgorithm.GetTableSize() != newCapacity {
		err = fmt.Errorf("%w: table size %d differs from capacity %d", crt.HashAlgorithm{}, S.hashAlgorithm.GetTableSize(), newCapacity)
		return
	}

	newBuckets := make([]*chain.Chain, newCapacity)
	for _, c := range S.buckets {
		if c == nil {
			continue
		}

		iter := c.Records()
		for iter.HasNext() {
			record, _ := iter.Next()

			var bucketNo int64
			bucketNo, err = S.bucketNo(S.hashAlgorithm, record.Key(), newCapacity)
			if err != nil {
				releaseBuckets(newBuckets)
				return
			}

			if newBuckets[bucketNo] == nil {
				newBuckets[bucketNo] = chain.New()
			}
			newBuckets[bucketNo].Append(record)
		}
	}

	oldBuckets := S.buckets
	S.buckets = newBuckets
	S.capacity = newCapacity
	S.rehashes++

	releaseBuckets(oldBuckets)

	return
}

// releaseBuckets - Releases every chain in buckets and sets each slot to nil
func releaseBuckets(buckets []*chain.Chain) {
	for i, c := range buckets {
		if c != nil {
			c.Release()
			buckets[i] = nil
		}
	}
}
