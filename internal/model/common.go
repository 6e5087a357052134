package model

import "github.com/gostonefire/recordtable/hashfunc"

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	InitialCapacity              int64
	Capacity                     int64
	Records                      int64
	CollisionThreshold           int64
	MaxCapacity                  int64
	Rehashes                     int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXBuckets and contains configuration that affects
// bucket processing.
//   - InitialCapacity is the number of buckets to start with, it has to be higher than 0 (zero)
//   - CollisionThreshold is the max number of collisions in a bucket before the bucket array is grown, 0 (zero) means conf.CollisionThreshold
//   - MaxCapacity is the capacity the bucket array may never grow past, 0 (zero) means conf.MaxCapacity
//   - HashAlgorithm is the hash function to use, nil means the internal key modulo capacity algorithm
type CRTConf struct {
	InitialCapacity    int64
	CollisionThreshold int64
	MaxCapacity        int64
	HashAlgorithm      hashfunc.HashAlgorithm
}
