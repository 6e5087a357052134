package chain

import "github.com/gostonefire/recordtable/internal/model"

// Node - One link in a chain, it wraps exactly one record and owns the next node (nil if last)
type Node struct {
	record model.Record
	next   *Node
}

// Record - Returns the record held by the node
func (N *Node) Record() model.Record {
	return N.record
}

// Chain - A singly linked chain of records sharing a bucket.
// The chain owns its head node and each node owns its successor, nodes are never shared between chains.
type Chain struct {
	head   *Node
	tail   *Node
	length int64
}

// New - Returns a pointer to a new empty Chain
func New() *Chain {
	return &Chain{}
}

// Len - Returns the number of nodes in the chain
func (C *Chain) Len() int64 {
	return C.length
}

// IsEmpty - Returns true if the chain holds no nodes
func (C *Chain) IsEmpty() bool {
	return C.head == nil
}

// Append - Links a new node holding record at the tail of the chain.
// It returns the number of nodes that were already in the chain, i.e. the number of collisions.
func (C *Chain) Append(record model.Record) (collisions int64) {
	collisions = C.length
	node := &Node{record: record}

	if C.head == nil {
		C.head = node
	} else {
		C.tail.next = node
	}
	C.tail = node
	C.length++

	return
}

// Find - Returns the node holding the record with key, or nil if not in the chain.
// The node is an internal handle, callers outside the storage layer should get a model.Record instead.
func (C *Chain) Find(key int64) *Node {
	for current := C.head; current != nil; current = current.next {
		if current.record.Key() == key {
			return current
		}
	}

	return nil
}

// Remove - Unlinks and releases the node holding the record with key.
// The five cases single node, head, middle, tail and no match are all covered by tracking the previous node.
//
// It returns:
//   - record is the removed record
//   - ok is false if no record with key was found, the chain is then unchanged
func (C *Chain) Remove(key int64) (record model.Record, ok bool) {
	var previous *Node
	for current := C.head; current != nil; previous, current = current, current.next {
		if current.record.Key() != key {
			continue
		}

		if previous == nil {
			C.head = current.next
		} else {
			previous.next = current.next
		}
		if C.tail == current {
			C.tail = previous
		}
		C.length--

		record = current.record
		current.next = nil
		ok = true
		return
	}

	return
}

// Release - Releases every node in the chain, walking node to node and unlinking each before advancing
func (C *Chain) Release() {
	current := C.head
	for current != nil {
		next := current.next
		current.next = nil
		current = next
	}

	C.head = nil
	C.tail = nil
	C.length = 0
}

// Records - Returns an iterator over the chain records in insertion order
func (C *Chain) Records() *Records {
	return NewRecords(C.head)
}
