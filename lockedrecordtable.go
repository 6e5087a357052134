package recordtable

import "sync"

// LockedRecordTable - Wraps a RecordTable with one mutex held around every operation.
// Growth replaces the whole bucket array, so every operation shares the one lock and no reader can
// observe a bucket array that is half replaced.
type LockedRecordTable struct {
	mu    sync.Mutex
	table *RecordTable
}

// NewLockedRecordTable - Returns a pointer to a new LockedRecordTable guarding table.
// The table must not be used directly once wrapped.
func NewLockedRecordTable(table *RecordTable) *LockedRecordTable {
	return &LockedRecordTable{table: table}
}

// Insert - See RecordTable.Insert
func (L *LockedRecordTable) Insert(record Record) error {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.Insert(record)
}

// Get - See RecordTable.Get
func (L *LockedRecordTable) Get(key int64) (Record, error) {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.Get(key)
}

// Has - See RecordTable.Has
func (L *LockedRecordTable) Has(key int64) bool {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.Has(key)
}

// Delete - See RecordTable.Delete
func (L *LockedRecordTable) Delete(key int64) (bool, error) {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.Delete(key)
}

// Pop - See RecordTable.Pop
func (L *LockedRecordTable) Pop(key int64) (Record, error) {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.Pop(key)
}

// Clear - See RecordTable.Clear
func (L *LockedRecordTable) Clear() {
	L.mu.Lock()
	defer L.mu.Unlock()
	L.table.Clear()
}

// Len - See RecordTable.Len
func (L *LockedRecordTable) Len() int64 {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.Len()
}

// Capacity - See RecordTable.Capacity
func (L *LockedRecordTable) Capacity() int64 {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.Capacity()
}

// GetBucketNo - See RecordTable.GetBucketNo
func (L *LockedRecordTable) GetBucketNo(key int64) (int64, error) {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.GetBucketNo(key)
}

// ForEach - See RecordTable.ForEach, the lock is held for the whole iteration so fn must not call back into L
func (L *LockedRecordTable) ForEach(fn func(record Record) bool) error {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.ForEach(fn)
}

// ForEachWithBucket - See RecordTable.ForEachWithBucket, the lock is held for the whole iteration so fn must not call back into L
func (L *LockedRecordTable) ForEachWithBucket(fn func(record Record, bucketNo int64) bool) error {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.ForEachWithBucket(fn)
}

// Stat - See RecordTable.Stat
func (L *LockedRecordTable) Stat(includeDistribution bool) (*TableStat, error) {
	L.mu.Lock()
	defer L.mu.Unlock()
	return L.table.Stat(includeDistribution)
}
