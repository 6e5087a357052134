package recordtable

import (
	"errors"
	"fmt"
	"github.com/gostonefire/recordtable/crt"
)

// Insert - Adds a record to the table, the table becomes the owner of the record from here on.
// If the insert makes the bucket chain longer than the collision threshold the table grows to twice its
// capacity and every record is rehashed, all before Insert returns.
//   - record is the record to add, its key must not already exist in the table
//
// It returns:
//   - err is of type KeyExists if the key is already stored, otherwise a standard error if something went wrong.
//     On any error the table is left unchanged.
func (R *RecordTable) Insert(record Record) (err error) {
	err = R.buckets.Insert(record)
	if err != nil && !errors.Is(err, crt.KeyExists{}) {
		err = fmt.Errorf("error while inserting record with key %d: %w", record.Key(), err)
	}

	return
}

// Get - Gets the record that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - record is a copy of the matching record if found, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (R *RecordTable) Get(key int64) (record Record, err error) {
	return R.buckets.Get(key)
}

// Has - Returns true if a record with key is stored
func (R *RecordTable) Has(key int64) bool {
	_, err := R.buckets.Get(key)
	return err == nil
}

// Delete - Removes the record with the given key.
//   - key is the identifier of a record
//
// It returns:
//   - deleted is true if a record existed and was removed, false if not found (table unchanged)
//   - err is a standard error, if something went wrong, not finding the key is not an error
func (R *RecordTable) Delete(key int64) (deleted bool, err error) {
	_, err = R.Pop(key)
	if err == nil {
		deleted = true
	} else if errors.Is(err, crt.NoRecordFound{}) {
		err = nil
	}

	return
}

// Pop - Returns the record corresponding to key and removes it from the table.
//   - key is the identifier of a record
//
// It returns:
//   - record is the removed record if found, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (R *RecordTable) Pop(key int64) (record Record, err error) {
	return R.buckets.Delete(key)
}

// Clear - Removes every record, the capacity and the bucket array are kept for subsequent inserts
func (R *RecordTable) Clear() {
	R.buckets.Clear()
}

// Len - Returns the number of stored records
func (R *RecordTable) Len() int64 {
	return R.buckets.GetStorageParameters().Records
}

// Capacity - Returns the current number of buckets
func (R *RecordTable) Capacity() int64 {
	return R.buckets.GetStorageParameters().Capacity
}

// GetBucketNo - Returns which bucket number that the given key results in at the current capacity
//   - key is the identifier of a record
func (R *RecordTable) GetBucketNo(key int64) (bucketNo int64, err error) {
	return R.buckets.GetBucketNo(key)
}

// GetBucket - Returns the records of one bucket in chain (insertion) order
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (R *RecordTable) GetBucket(bucketNo int64) (records []Record, err error) {
	iter, err := R.buckets.GetBucket(bucketNo)
	if err != nil {
		return
	}

	records = make([]Record, 0, R.buckets.GetBucketLength(bucketNo))
	var record Record
	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			return
		}
		records = append(records, record)
	}

	return
}

// Records - Returns an iterator over all records, bucket by bucket in bucket number order and in insertion
// order within a bucket. The order is deterministic but not sorted by key.
// The table must not be changed while the iterator is in use.
func (R *RecordTable) Records() *RecordIterator {
	return newRecordIterator(R.buckets)
}

// ForEach - Calls fn for every record in the same order as Records, stopping early if fn returns false
func (R *RecordTable) ForEach(fn func(record Record) bool) (err error) {
	return R.ForEachWithBucket(func(record Record, _ int64) bool { return fn(record) })
}

// ForEachWithBucket - Like ForEach but fn also gets the bucket number the record is stored in
func (R *RecordTable) ForEachWithBucket(fn func(record Record, bucketNo int64) bool) (err error) {
	iter := R.Records()
	var record Record
	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			return
		}
		if !fn(record, iter.BucketNo()) {
			return
		}
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of records per bucket, false will set TableStat.BucketDistribution to nil.
func (R *RecordTable) Stat(includeDistribution bool) (tableStat *TableStat, err error) {
	sp := R.buckets.GetStorageParameters()
	ts := TableStat{
		Records:  sp.Records,
		Capacity: sp.Capacity,
		Rehashes: sp.Rehashes,
	}

	if includeDistribution {
		ts.BucketDistribution = make([]int64, sp.Capacity)
	}

	// Iterate over every available bucket
	var length, records int64
	for i := int64(0); i < sp.Capacity; i++ {
		length = R.buckets.GetBucketLength(i)
		if length == 0 {
			continue
		}

		records += length
		ts.UsedBuckets++
		if length > ts.LongestChain {
			ts.LongestChain = length
		}
		if includeDistribution {
			ts.BucketDistribution[i] = length
		}
	}

	if records != sp.Records {
		err = fmt.Errorf("record count %d differs from records found in buckets %d", sp.Records, records)
		return
	}

	tableStat = &ts
	return
}
