package result

import "github.com/frol/nearlib/pkg/util"

// TransactionStatus is the remote execution state of a submitted
// transaction.
type TransactionStatus string

// All statuses the node reports.
const (
	TransactionStarted   TransactionStatus = "Started"
	TransactionCompleted TransactionStatus = "Completed"
	TransactionFailed    TransactionStatus = "Failed"
)

// Final returns true when the status can no longer change.
func (s TransactionStatus) Final() bool {
	return s == TransactionCompleted || s == TransactionFailed
}

// TransactionResult is the submission/execution outcome of a transaction. A
// Failed status is an application-level outcome reported by the node, not a
// transport error.
type TransactionResult struct {
	Status TransactionStatus `json:"status"`
	Hash   util.Uint256      `json:"hash"`
	Logs   []string          `json:"logs,omitempty"`
}
