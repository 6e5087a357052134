package chain

import (
	"github.com/gostonefire/recordtable/crt"
	"github.com/gostonefire/recordtable/internal/model"
)

// Records - Is used to iterate over chain records one by one.
// The iterator advances to the successor before the record is handed out, so the caller may reinsert the
// record elsewhere or release the node it came from without breaking the iteration.
type Records struct {
	current *Node
}

// NewRecords - Returns a pointer to a new Records struct starting at node (nil gives an exhausted iterator)
func NewRecords(node *Node) *Records {
	return &Records{current: node}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.current != nil
}

// Next - Returns record.
// It returns:
//   - record is the next record in the chain.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (R *Records) Next() (record model.Record, err error) {
	if R.current == nil {
		err = crt.NoRecordFound{}
		return
	}

	record = R.current.record
	R.current = R.current.next

	return
}
