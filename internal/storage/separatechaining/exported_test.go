//go:build unit

package separatechaining

import (
	"errors"
	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/conf"
	"github.com/gostonefire/recordtable/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"sort"
	"testing"
)

// constantHashAlgorithm - Sends every key to the same bucket, used to provoke long chains
type constantHashAlgorithm struct {
	tableSize int64
	bucketNo  int64
}

func (C *constantHashAlgorithm) SetTableSize(tableSize int64) { C.tableSize = tableSize }
func (C *constantHashAlgorithm) HashFunc1(key int64) int64    { return C.bucketNo }
func (C *constantHashAlgorithm) GetTableSize() int64          { return C.tableSize }

// growthFailingHashAlgorithm - Works at the initial table size of 4 but gives invalid bucket numbers once grown
type growthFailingHashAlgorithm struct {
	tableSize int64
}

func (G *growthFailingHashAlgorithm) SetTableSize(tableSize int64) { G.tableSize = tableSize }
func (G *growthFailingHashAlgorithm) GetTableSize() int64          { return G.tableSize }
func (G *growthFailingHashAlgorithm) HashFunc1(key int64) int64 {
	if G.tableSize > 4 {
		return G.tableSize
	}
	return 0
}

// roundingHashAlgorithm - Rounds the table size up to a power of 2, which the record table does not accept
type roundingHashAlgorithm struct {
	tableSize int64
}

func (R *roundingHashAlgorithm) SetTableSize(tableSize int64) {
	R.tableSize = 1
	for R.tableSize < tableSize {
		R.tableSize <<= 1
	}
}
func (R *roundingHashAlgorithm) HashFunc1(key int64) int64 { return key & (R.tableSize - 1) }
func (R *roundingHashAlgorithm) GetTableSize() int64       { return R.tableSize }

func newTestBuckets(t *testing.T, capacity int64) *SCBuckets {
	scBuckets, err := NewSCBuckets(model.CRTConf{InitialCapacity: capacity})
	require.NoError(t, err, "create new SCBuckets instance")
	return scBuckets
}

func insertKeys(t *testing.T, scBuckets *SCBuckets, keys ...int64) {
	for _, k := range keys {
		require.NoError(t, scBuckets.Insert(model.NewRecord(k, "First", "Last", 2.5)), "inserts key %d", k)
	}
}

func allKeys(scBuckets *SCBuckets) []int64 {
	var keys []int64
	for i := int64(0); i < scBuckets.capacity; i++ {
		iter, _ := scBuckets.GetBucket(i)
		for iter.HasNext() {
			r, _ := iter.Next()
			keys = append(keys, r.Key())
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// checkInvariants - Every record must be in the bucket its key hashes to at the current capacity
func checkInvariants(t *testing.T, scBuckets *SCBuckets) {
	var count int64
	for i := int64(0); i < scBuckets.capacity; i++ {
		iter, err := scBuckets.GetBucket(i)
		require.NoError(t, err, "gets bucket")
		for iter.HasNext() {
			r, _ := iter.Next()
			bucketNo, err := scBuckets.GetBucketNo(r.Key())
			require.NoError(t, err, "gets bucket number")
			assert.Equal(t, i, bucketNo, "key %d in correct bucket", r.Key())
			count++
		}
	}
	assert.Equal(t, scBuckets.records, count, "record count matches chains")
	assert.Equal(t, scBuckets.capacity, scBuckets.hashAlgorithm.GetTableSize(), "hash table size matches capacity")
	assert.Equal(t, scBuckets.capacity, int64(len(scBuckets.buckets)), "bucket array matches capacity")
}

func TestNewSCBuckets(t *testing.T) {
	t.Run("creates a new SCBuckets instance", func(t *testing.T) {
		// Prepare
		crtConf := model.CRTConf{InitialCapacity: 10}

		// Execute
		scBuckets, err := NewSCBuckets(crtConf)

		// Check
		assert.NoError(t, err, "create new SCBuckets instance")
		assert.Equal(t, int64(10), scBuckets.capacity, "capacity preserved")
		assert.Equal(t, int64(10), scBuckets.initialCapacity, "initial capacity preserved")
		assert.Len(t, scBuckets.buckets, 10, "bucket array allocated")
		assert.Equal(t, conf.CollisionThreshold, scBuckets.collisionThreshold, "default collision threshold")
		assert.True(t, scBuckets.internalAlgorithm, "internal hash algorithm")
		assert.NotNil(t, scBuckets.hashAlgorithm, "hash algorithm is assigned")
	})

	t.Run("error on zero capacity", func(t *testing.T) {
		// Execute
		_, err := NewSCBuckets(model.CRTConf{InitialCapacity: 0})

		// Check
		assert.Error(t, err, "zero capacity rejected")
	})

	t.Run("error on capacity above max", func(t *testing.T) {
		// Execute
		_, err := NewSCBuckets(model.CRTConf{InitialCapacity: conf.MaxCapacity + 1})

		// Check
		assert.True(t, errors.Is(err, crt.CapacityExhausted{}), "capacity exhausted")
	})

	t.Run("error on hash algorithm not honouring table size", func(t *testing.T) {
		// Execute
		_, err := NewSCBuckets(model.CRTConf{InitialCapacity: 10, HashAlgorithm: &roundingHashAlgorithm{}})

		// Check
		assert.True(t, errors.Is(err, crt.HashAlgorithm{}), "hash algorithm rejected")
	})
}

func TestSCBuckets_GetStorageParameters(t *testing.T) {
	t.Run("gets storage parameters", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, 1, 2)

		// Execute
		sp := scBuckets.GetStorageParameters()

		// Check
		assert.Equal(t, crt.SeparateChaining, sp.CollisionResolutionTechnique, "correct crt")
		assert.Equal(t, int64(10), sp.InitialCapacity, "initial capacity")
		assert.Equal(t, int64(10), sp.Capacity, "capacity")
		assert.Equal(t, int64(2), sp.Records, "records")
		assert.Equal(t, conf.CollisionThreshold, sp.CollisionThreshold, "collision threshold")
		assert.Zero(t, sp.Rehashes, "no rehash yet")
		assert.True(t, sp.InternalAlgorithm, "indicates using internal hash algorithm")
	})
}

func TestSCBuckets_Insert(t *testing.T) {
	t.Run("inserts into empty bucket", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)

		// Execute
		err := scBuckets.Insert(model.NewRecord(7, "Ada", "Lovelace", 3.9))

		// Check
		assert.NoError(t, err, "inserts record")
		assert.Equal(t, int64(1), scBuckets.records, "one record")
		assert.Equal(t, int64(1), scBuckets.GetBucketLength(7), "bucket 7 holds record")
	})

	t.Run("appends colliding keys in insertion order", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)

		// Execute
		insertKeys(t, scBuckets, 5, 15, 25)

		// Check
		iter, err := scBuckets.GetBucket(5)
		assert.NoError(t, err, "gets bucket")
		var keys []int64
		for iter.HasNext() {
			r, _ := iter.Next()
			keys = append(keys, r.Key())
		}
		assert.Equal(t, []int64{5, 15, 25}, keys, "chain in insertion order")
		assert.Equal(t, int64(10), scBuckets.capacity, "three in a chain does not grow")
	})

	t.Run("rejects duplicate key", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, 3, 13)

		// Execute
		err := scBuckets.Insert(model.NewRecord(13, "Other", "Name", 1.0))

		// Check
		assert.True(t, errors.Is(err, crt.KeyExists{}), "key exists")
		assert.Equal(t, int64(2), scBuckets.records, "count unchanged")
		r, _ := scBuckets.Get(13)
		assert.Equal(t, "First", r.FirstName(), "original record kept")
	})

	t.Run("grows when fourth record lands in a bucket", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, 3, 13, 23)
		assert.Equal(t, int64(10), scBuckets.capacity, "no growth yet")

		// Execute
		err := scBuckets.Insert(model.NewRecord(33, "First", "Last", 2.5))

		// Check
		assert.NoError(t, err, "inserts record")
		assert.Equal(t, int64(20), scBuckets.capacity, "capacity doubled")
		assert.Equal(t, int64(1), scBuckets.rehashes, "one rehash")
		assert.Equal(t, []int64{3, 13, 23, 33}, allKeys(scBuckets), "all records kept")
		assert.Equal(t, int64(2), scBuckets.GetBucketLength(3), "keys 3 and 23 in bucket 3")
		assert.Equal(t, int64(2), scBuckets.GetBucketLength(13), "keys 13 and 33 in bucket 13")
		checkInvariants(t, scBuckets)
	})

	t.Run("keeps records intact when growth is impossible", func(t *testing.T) {
		// Prepare
		scBuckets, err := NewSCBuckets(model.CRTConf{InitialCapacity: 10, MaxCapacity: 16, HashAlgorithm: &constantHashAlgorithm{}})
		require.NoError(t, err, "create new SCBuckets instance")
		insertKeys(t, scBuckets, 1, 2, 3)

		// Execute
		err = scBuckets.Insert(model.NewRecord(4, "First", "Last", 2.5))

		// Check
		assert.True(t, errors.Is(err, crt.CapacityExhausted{}), "capacity exhausted")
		assert.Equal(t, int64(10), scBuckets.capacity, "capacity unchanged")
		assert.Equal(t, int64(3), scBuckets.records, "count unchanged")
		assert.Equal(t, int64(3), scBuckets.GetBucketLength(0), "chain unchanged")
		_, err = scBuckets.Get(4)
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "rejected record not stored")
	})

	t.Run("restores table when hash algorithm fails during growth", func(t *testing.T) {
		// Prepare
		ha := &growthFailingHashAlgorithm{}
		scBuckets, err := NewSCBuckets(model.CRTConf{InitialCapacity: 4, HashAlgorithm: ha})
		require.NoError(t, err, "create new SCBuckets instance")
		insertKeys(t, scBuckets, 1, 2, 3)

		// Execute
		err = scBuckets.Insert(model.NewRecord(4, "First", "Last", 2.5))

		// Check
		assert.True(t, errors.Is(err, crt.HashAlgorithm{}), "hash algorithm error")
		assert.Equal(t, int64(4), scBuckets.capacity, "capacity unchanged")
		assert.Equal(t, int64(4), ha.GetTableSize(), "table size restored")
		assert.Equal(t, int64(3), scBuckets.records, "count unchanged")
		assert.Equal(t, int64(3), scBuckets.GetBucketLength(0), "chain unchanged")
	})

	t.Run("grows with a custom threshold", func(t *testing.T) {
		// Prepare
		scBuckets, err := NewSCBuckets(model.CRTConf{InitialCapacity: 10, CollisionThreshold: 1})
		require.NoError(t, err, "create new SCBuckets instance")

		// Execute
		insertKeys(t, scBuckets, 0, 10)

		// Check
		assert.Equal(t, int64(20), scBuckets.capacity, "capacity doubled after one collision")
		checkInvariants(t, scBuckets)
	})
}

func TestSCBuckets_Get(t *testing.T) {
	t.Run("gets a record", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		err := scBuckets.Insert(model.NewRecord(42, "Alan", "Turing", 3.25))
		require.NoError(t, err, "inserts record")

		// Execute
		record, err := scBuckets.Get(42)

		// Check
		assert.NoError(t, err, "gets record")
		assert.Equal(t, int64(42), record.Key(), "key preserved")
		assert.Equal(t, "Alan", record.FirstName(), "first name preserved")
		assert.Equal(t, "Turing", record.LastName(), "last name preserved")
		assert.Equal(t, 3.25, record.Score(), "score preserved")
	})

	t.Run("gets a record from the end of a chain", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, 1, 11, 21)

		// Execute
		record, err := scBuckets.Get(21)

		// Check
		assert.NoError(t, err, "gets record")
		assert.Equal(t, int64(21), record.Key(), "correct record")
	})

	t.Run("NoRecordFound for empty bucket", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)

		// Execute
		_, err := scBuckets.Get(3)

		// Check
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "no record found")
	})

	t.Run("NoRecordFound for key not in chain", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, 3, 13)

		// Execute
		_, err := scBuckets.Get(23)

		// Check
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "no record found")
	})

	t.Run("negative key", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, -3)

		// Execute
		record, err := scBuckets.Get(-3)

		// Check
		assert.NoError(t, err, "gets record")
		assert.Equal(t, int64(-3), record.Key(), "correct record")
		assert.Equal(t, int64(1), scBuckets.GetBucketLength(7), "stored in bucket 7")
	})
}

func TestSCBuckets_Delete(t *testing.T) {
	t.Run("deletes single node chain", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, 7)

		// Execute
		record, err := scBuckets.Delete(7)

		// Check
		assert.NoError(t, err, "deletes record")
		assert.Equal(t, int64(7), record.Key(), "removed record returned")
		assert.Zero(t, scBuckets.records, "no records")
		assert.Nil(t, scBuckets.buckets[7], "bucket emptied")
		assert.Equal(t, int64(10), scBuckets.capacity, "capacity unchanged")
	})

	t.Run("deletes head, middle and tail", func(t *testing.T) {
		tests := []struct {
			name     string
			key      int64
			expected []int64
		}{
			{name: "head", key: 5, expected: []int64{15, 25}},
			{name: "middle", key: 15, expected: []int64{5, 25}},
			{name: "tail", key: 25, expected: []int64{5, 15}},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				// Prepare
				scBuckets := newTestBuckets(t, 10)
				insertKeys(t, scBuckets, 5, 15, 25)

				// Execute
				_, err := scBuckets.Delete(test.key)

				// Check
				assert.NoError(t, err, "deletes record")
				assert.Equal(t, test.expected, allKeys(scBuckets), "remaining chain")
				assert.Equal(t, int64(2), scBuckets.records, "count decreased by one")
				_, err = scBuckets.Get(test.key)
				assert.True(t, errors.Is(err, crt.NoRecordFound{}), "deleted record gone")
			})
		}
	})

	t.Run("no match leaves buckets unchanged", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, 5, 15)

		// Execute
		_, errChain := scBuckets.Delete(25)
		_, errEmpty := scBuckets.Delete(6)

		// Check
		assert.True(t, errors.Is(errChain, crt.NoRecordFound{}), "no record found in chain")
		assert.True(t, errors.Is(errEmpty, crt.NoRecordFound{}), "no record found in empty bucket")
		assert.Equal(t, []int64{5, 15}, allKeys(scBuckets), "records unchanged")
		assert.Equal(t, int64(2), scBuckets.records, "count unchanged")
	})
}

func TestSCBuckets_Clear(t *testing.T) {
	t.Run("clears all buckets and keeps capacity", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, 3, 13, 23, 33, 4, 5)
		capacity := scBuckets.capacity

		// Execute
		scBuckets.Clear()
		scBuckets.Clear()

		// Check
		assert.Zero(t, scBuckets.records, "no records")
		assert.Equal(t, capacity, scBuckets.capacity, "capacity unchanged")
		assert.Empty(t, allKeys(scBuckets), "no records in buckets")
		for _, c := range scBuckets.buckets {
			assert.Nil(t, c, "bucket emptied")
		}
	})

	t.Run("reuses bucket array after clear", func(t *testing.T) {
		// Prepare
		scBuckets := newTestBuckets(t, 10)
		insertKeys(t, scBuckets, 1, 2)
		scBuckets.Clear()

		// Execute
		insertKeys(t, scBuckets, 1)

		// Check
		_, err := scBuckets.Get(1)
		assert.NoError(t, err, "gets reinserted record")
		assert.Equal(t, int64(1), scBuckets.records, "one record")
	})
}

func TestSCBuckets_rehash(t *testing.T) {
	t.Run("random workload keeps invariants", func(t *testing.T) {
		// Prepare
		rand.Seed(123)
		scBuckets := newTestBuckets(t, 3)
		oracle := make(map[int64]bool)

		// Execute
		for i := 0; i < 5000; i++ {
			key := rand.Int63n(2000) - 1000
			if rand.Intn(3) == 0 {
				_, err := scBuckets.Delete(key)
				assert.Equal(t, oracle[key], err == nil, "delete result matches oracle for key %d", key)
				delete(oracle, key)
			} else {
				capacityBefore := scBuckets.capacity
				keysBefore := allKeys(scBuckets)
				err := scBuckets.Insert(model.NewRecord(key, "F", "L", 1))
				if oracle[key] {
					assert.True(t, errors.Is(err, crt.KeyExists{}), "duplicate rejected")
				} else {
					assert.NoError(t, err, "inserts record")
					oracle[key] = true
					if scBuckets.capacity != capacityBefore {
						assert.Equal(t, capacityBefore*2, scBuckets.capacity, "capacity exactly doubled")
						keysAfter := allKeys(scBuckets)
						expected := append(keysBefore, key)
						sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })
						assert.Equal(t, expected, keysAfter, "rehash preserved record set")
					}
				}
			}
		}

		// Check
		checkInvariants(t, scBuckets)
		assert.Equal(t, int64(len(oracle)), scBuckets.records, "count matches oracle")
		for key := range oracle {
			_, err := scBuckets.Get(key)
			assert.NoError(t, err, "key %d retrievable", key)
		}
	})
}
