package commands

import "pod/internal/core/domain/model/kernel"

// ItemFailure describes one rejected item of a batch. ID is empty when the
// item never got an identity, as with bills that failed validation.
type ItemFailure struct {
	Index  int
	ID     string
	Reason string
}

// BatchResult lists what a batch operation did per item. Items are processed
// independently, so a failure never undoes earlier successes.
type BatchResult struct {
	Succeeded []kernel.UUID
	Failed    []ItemFailure
}

// Count is the number of items that succeeded.
func (r BatchResult) Count() int {
	return len(r.Succeeded)
}

func (r *BatchResult) fail(index int, id string, err error) {
	r.Failed = append(r.Failed, ItemFailure{Index: index, ID: id, Reason: err.Error()})
}
