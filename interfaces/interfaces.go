package interfaces

import "github.com/gostonefire/recordtable/internal/model"

// RecordInserter - Interface for anything records can be inserted into, such as RecordTable and LockedRecordTable.
// It is what the bulk loader needs from a table.
type RecordInserter interface {
	// Insert - Adds a record, an error of type crt.KeyExists is expected if the key is already in use
	Insert(record model.Record) error
}

// RecordSource - Interface for anything that can hand out all its records in a deterministic order.
// It is what the display needs from a table.
type RecordSource interface {
	// ForEach - Calls fn for every record until fn returns false
	ForEach(fn func(record model.Record) bool) error
}

// PositionedRecordSource - Interface for anything that can hand out all its records together with the bucket
// number each record is stored in
type PositionedRecordSource interface {
	// ForEachWithBucket - Calls fn for every record and its bucket number until fn returns false
	ForEachWithBucket(fn func(record model.Record, bucketNo int64) bool) error
}
