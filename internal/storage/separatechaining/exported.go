package separatechaining

import (
	"fmt"
	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/hashfunc"
	"github.com/gostonefire/recordtable/internal/chain"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/gostonefire/recordtable/internal/hash"
	"github.com/gostonefire/recordtable/internal/model"
)

// SCBuckets - Represents an in-memory implementation of the Separate Chaining Collision Resolution Technique.
// It holds an array of buckets where each non-nil bucket is a chain of records sharing the same bucket number.
// The bucket array grows to twice its capacity whenever an insert makes a chain longer than the collision
// threshold.
type SCBuckets struct {
	buckets            []*chain.Chain
	initialCapacity    int64
	capacity           int64
	records            int64
	collisionThreshold int64
	maxCapacity        int64
	rehashes           int64
	hashAlgorithm      hashfunc.HashAlgorithm
	internalAlgorithm  bool
}

// NewSCBuckets - Returns a pointer to a new instance of the Separate Chaining implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters affecting bucket processing
//
// It returns:
//   - scBuckets which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCBuckets(crtConf model.CRTConf) (scBuckets *SCBuckets, err error) {
	if crtConf.InitialCapacity <= 0 {
		err = fmt.Errorf("initial capacity must be a positive value higher than 0 (zero)")
		return
	}
	if crtConf.MaxCapacity <= 0 || crtConf.MaxCapacity > conf.MaxCapacity {
		crtConf.MaxCapacity = conf.MaxCapacity
	}
	if crtConf.InitialCapacity > crtConf.MaxCapacity {
		err = fmt.Errorf("%w: initial capacity %d is higher than %d", crt.CapacityExhausted{}, crtConf.InitialCapacity, crtConf.MaxCapacity)
		return
	}
	if crtConf.CollisionThreshold <= 0 {
		crtConf.CollisionThreshold = conf.CollisionThreshold
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewModuloHashAlgorithm(crtConf.InitialCapacity)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.InitialCapacity)
		if crtConf.HashAlgorithm.GetTableSize() != crtConf.InitialCapacity {
			err = fmt.Errorf("%w: table size %d differs from capacity %d", crt.HashAlgorithm{}, crtConf.HashAlgorithm.GetTableSize(), crtConf.InitialCapacity)
			return
		}
	}

	scBuckets = &SCBuckets{
		buckets:            make([]*chain.Chain, crtConf.InitialCapacity),
		initialCapacity:    crtConf.InitialCapacity,
		capacity:           crtConf.InitialCapacity,
		collisionThreshold: crtConf.CollisionThreshold,
		maxCapacity:        crtConf.MaxCapacity,
		hashAlgorithm:      crtConf.HashAlgorithm,
		internalAlgorithm:  internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCBuckets
func (S *SCBuckets) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		InitialCapacity:              S.initialCapacity,
		Capacity:                     S.capacity,
		Records:                      S.records,
		CollisionThreshold:           S.collisionThreshold,
		MaxCapacity:                  S.maxCapacity,
		Rehashes:                     S.rehashes,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// GetBucketNo - Returns which bucket number that the given key results in at the current capacity
//   - key is the identifier of a record
func (S *SCBuckets) GetBucketNo(key int64) (bucketNo int64, err error) {
	return S.bucketNo(S.hashAlgorithm, key, S.capacity)
}

// GetBucket - Returns an iterator over the records of a bucket given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - iterator is a chain.Records struct that can be used to get the bucket records in chain order.
//   - err is standard error
func (S *SCBuckets) GetBucket(bucketNo int64) (iterator *chain.Records, err error) {
	if bucketNo < 0 || bucketNo >= S.capacity {
		err = fmt.Errorf("bucket number %d is outside 0 -> %d", bucketNo, S.capacity-1)
		return
	}

	if c := S.buckets[bucketNo]; c != nil {
		iterator = c.Records()
	} else {
		iterator = chain.NewRecords(nil)
	}

	return
}

// GetBucketLength - Returns the chain length of a bucket, 0 (zero) for an empty bucket or an invalid bucket number
func (S *SCBuckets) GetBucketLength(bucketNo int64) int64 {
	if bucketNo < 0 || bucketNo >= S.capacity || S.buckets[bucketNo] == nil {
		return 0
	}

	return S.buckets[bucketNo].Len()
}

// Get - Gets record that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - record is a copy of the matching record if found, if not found an error of type crt.NoRecordFound is returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCBuckets) Get(key int64) (record model.Record, err error) {
	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	c := S.buckets[bucketNo]
	if c == nil {
		err = crt.NoRecordFound{}
		return
	}

	node := c.Find(key)
	if node == nil {
		err = crt.NoRecordFound{}
		return
	}

	record = node.Record()

	return
}

// Insert - Adds a record to the tail of its bucket chain.
// If the chain after the append is longer than the collision threshold the bucket array is grown. Should growth
// fail the record is taken out again, leaving the buckets exactly as they were before the call.
//   - record is the record to add, its key must not already be stored
//
// It returns:
//   - err is either of type crt.KeyExists, crt.CapacityExhausted, crt.HashAlgorithm or a standard error
func (S *SCBuckets) Insert(record model.Record) (err error) {
	bucketNo, err := S.GetBucketNo(record.Key())
	if err != nil {
		return
	}

	c := S.buckets[bucketNo]
	if c == nil {
		c = chain.New()
		S.buckets[bucketNo] = c
	} else if c.Find(record.Key()) != nil {
		err = crt.KeyExists{}
		return
	}

	collisions := c.Append(record)
	S.records++

	if collisions >= S.collisionThreshold {
		err = S.rehash()
		if err != nil {
			c.Remove(record.Key())
			S.records--
			if c.IsEmpty() {
				S.buckets[bucketNo] = nil
			}
			err = fmt.Errorf("error while growing bucket array, record not inserted: %w", err)
		}
	}

	return
}

// Delete - Removes the record with the given key from its bucket chain
//   - key is the identifier of a record
//
// It returns:
//   - record is the removed record
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCBuckets) Delete(key int64) (record model.Record, err error) {
	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	c := S.buckets[bucketNo]
	if c == nil {
		err = crt.NoRecordFound{}
		return
	}

	record, ok := c.Remove(key)
	if !ok {
		err = crt.NoRecordFound{}
		return
	}

	S.records--
	if c.IsEmpty() {
		S.buckets[bucketNo] = nil
	}

	return
}

// Clear - Releases every chain and empties every bucket, capacity is kept as is
func (S *SCBuckets) Clear() {
	releaseBuckets(S.buckets)
	S.records = 0
}
