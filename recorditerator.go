package recordtable

import (
	"fmt"
	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/chain"
)

// RecordIterator - Is used to iterate over all records in a RecordTable one by one.
type RecordIterator struct {
	buckets  bucketManagement
	capacity int64
	bucketNo int64
	records  *chain.Records
	err      error
}

// newRecordIterator - Returns a pointer to a new RecordIterator struct positioned before the first bucket
func newRecordIterator(buckets bucketManagement) *RecordIterator {
	return &RecordIterator{
		buckets:  buckets,
		capacity: buckets.GetStorageParameters().Capacity,
		bucketNo: -1,
		records:  chain.NewRecords(nil),
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
// It also returns true if a bucket could not be read, the following call to Next then returns the error.
func (R *RecordIterator) HasNext() bool {
	if R.err != nil {
		return true
	}

	for !R.records.HasNext() {
		R.bucketNo++
		if R.bucketNo >= R.capacity {
			return false
		}

		records, err := R.buckets.GetBucket(R.bucketNo)
		if err != nil {
			R.err = fmt.Errorf("error while reading bucket %d: %w", R.bucketNo, err)
			return true
		}
		R.records = records
	}

	return true
}

// Next - Returns record.
// It returns:
//   - record is the next record.
//   - err is of type NoRecordFound if there are no more records when calling this function, or the error from
//     reading a bucket, which also ends the iteration.
func (R *RecordIterator) Next() (record Record, err error) {
	if !R.HasNext() {
		err = crt.NoRecordFound{}
		return
	}
	if R.err != nil {
		err = R.err
		R.err = nil
		R.bucketNo = R.capacity
		return
	}

	return R.records.Next()
}

// BucketNo - Returns the bucket number of the record returned by the latest call to Next, valid until HasNext is called again
func (R *RecordIterator) BucketNo() int64 {
	return R.bucketNo
}
