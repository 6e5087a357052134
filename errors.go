package recordtable

import "github.com/gostonefire/recordtable/crt"

// NoRecordFound - Returned by Get and Pop when no record with the key exists, match with errors.Is(err, NoRecordFound{})
type NoRecordFound = crt.NoRecordFound

// KeyExists - Returned by Insert when a record with the same key is already stored
type KeyExists = crt.KeyExists

// CapacityExhausted - Returned when the table can not be created or grown within max capacity
type CapacityExhausted = crt.CapacityExhausted

// HashAlgorithmFailure - Returned when a custom hash algorithm gives a bucket number outside the table
type HashAlgorithmFailure = crt.HashAlgorithm
