package recordtable

import (
	"github.com/gostonefire/recordtable/hashfunc"
	"github.com/gostonefire/recordtable/internal/chain"
	"github.com/gostonefire/recordtable/internal/model"
	"github.com/gostonefire/recordtable/internal/storage/separatechaining"
)

// bucketManagement - Interface for any bucket management implementation
type bucketManagement interface {
	Get(key int64) (record model.Record, err error)
	Insert(record model.Record) (err error)
	Delete(key int64) (record model.Record, err error)
	Clear()
	GetBucket(bucketNo int64) (iterator *chain.Records, err error)
	GetBucketLength(bucketNo int64) int64
	GetBucketNo(key int64) (bucketNo int64, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// Record - A stored record identified by its integer key, see NewRecord
type Record = model.Record

// NewRecord - Returns a new Record, the name fields are copied so the record never aliases caller memory.
//   - key is the unique identifier of the record
//   - firstName and lastName are the display names
//   - score is the grade-point value
func NewRecord(key int64, firstName, lastName string, score float64) Record {
	return model.NewRecord(key, firstName, lastName, score)
}

// TableInfo - Information structure containing some information about the record table created
//   - InitialCapacity is the number of buckets the table starts with
//   - CollisionThreshold is the max number of collisions in a bucket before the table grows
//   - MaxCapacity is the number of buckets the table may never grow past
//   - InternalAlgorithm is true if the internal key modulo capacity hash algorithm is used
type TableInfo struct {
	InitialCapacity    int64
	CollisionThreshold int64
	MaxCapacity        int64
	InternalAlgorithm  bool
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Capacity is the current number of buckets
//   - Rehashes is the number of times the bucket array has grown
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the length of the longest chain
//   - BucketDistribution is the number of records stored in each available bucket
type TableStat struct {
	Records            int64
	Capacity           int64
	Rehashes           int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// RecordTable - The main implementation struct.
// A RecordTable is not safe for concurrent use, wrap it with NewLockedRecordTable if it has to be shared.
type RecordTable struct {
	buckets bucketManagement
}

// NewRecordTable - Returns a new record table with initialCapacity buckets.
// The table grows to twice its capacity whenever an insert makes a bucket chain longer than the collision
// threshold (3), so the initial capacity is a starting point rather than a limit.
//   - initialCapacity is the number of buckets to start with, it has to be higher than 0 (zero)
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil gives key mod capacity.
//
// It returns:
//   - recordTable is a pointer to a RecordTable struct
//   - tableInfo is a TableInfo struct containing some data regarding the record table created.
//   - err is a normal go Error which should be nil if everything went ok
func NewRecordTable(initialCapacity int64, hashAlgorithm hashfunc.HashAlgorithm) (
	recordTable *RecordTable,
	tableInfo TableInfo,
	err error,
) {
	return newRecordTable(model.CRTConf{InitialCapacity: initialCapacity, HashAlgorithm: hashAlgorithm})
}

// newRecordTable - Creates the record table given a complete model.CRTConf
func newRecordTable(crtConf model.CRTConf) (recordTable *RecordTable, tableInfo TableInfo, err error) {
	var bm bucketManagement
	bm, err = separatechaining.NewSCBuckets(crtConf)
	if err != nil {
		return
	}

	recordTable = &RecordTable{buckets: bm}

	sp := bm.GetStorageParameters()

	tableInfo = TableInfo{
		InitialCapacity:    sp.InitialCapacity,
		CollisionThreshold: sp.CollisionThreshold,
		MaxCapacity:        sp.MaxCapacity,
		InternalAlgorithm:  sp.InternalAlgorithm,
	}

	return
}
