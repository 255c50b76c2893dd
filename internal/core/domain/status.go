package domain

import "strings"

// StackStatus is a CloudFormation stack status.
type StackStatus string

const (
	StatusCreateInProgress                        StackStatus = "CREATE_IN_PROGRESS"
	StatusCreateFailed                            StackStatus = "CREATE_FAILED"
	StatusCreateComplete                          StackStatus = "CREATE_COMPLETE"
	StatusRollbackInProgress                      StackStatus = "ROLLBACK_IN_PROGRESS"
	StatusRollbackFailed                          StackStatus = "ROLLBACK_FAILED"
	StatusRollbackComplete                        StackStatus = "ROLLBACK_COMPLETE"
	StatusDeleteInProgress                        StackStatus = "DELETE_IN_PROGRESS"
	StatusDeleteFailed                            StackStatus = "DELETE_FAILED"
	StatusDeleteComplete                          StackStatus = "DELETE_COMPLETE"
	StatusUpdateInProgress                        StackStatus = "UPDATE_IN_PROGRESS"
	StatusUpdateCompleteCleanupInProgress         StackStatus = "UPDATE_COMPLETE_CLEANUP_IN_PROGRESS"
	StatusUpdateComplete                          StackStatus = "UPDATE_COMPLETE"
	StatusUpdateFailed                            StackStatus = "UPDATE_FAILED"
	StatusUpdateRollbackInProgress                StackStatus = "UPDATE_ROLLBACK_IN_PROGRESS"
	StatusUpdateRollbackFailed                    StackStatus = "UPDATE_ROLLBACK_FAILED"
	StatusUpdateRollbackCompleteCleanupInProgress StackStatus = "UPDATE_ROLLBACK_COMPLETE_CLEANUP_IN_PROGRESS"
	StatusUpdateRollbackComplete                  StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StatusReviewInProgress                        StackStatus = "REVIEW_IN_PROGRESS"
	StatusImportInProgress                        StackStatus = "IMPORT_IN_PROGRESS"
	StatusImportComplete                          StackStatus = "IMPORT_COMPLETE"
	StatusImportRollbackInProgress                StackStatus = "IMPORT_ROLLBACK_IN_PROGRESS"
	StatusImportRollbackFailed                    StackStatus = "IMPORT_ROLLBACK_FAILED"
	StatusImportRollbackComplete                  StackStatus = "IMPORT_ROLLBACK_COMPLETE"
)

var allStatuses = []StackStatus{
	StatusCreateInProgress, StatusCreateFailed, StatusCreateComplete,
	StatusRollbackInProgress, StatusRollbackFailed, StatusRollbackComplete,
	StatusDeleteInProgress, StatusDeleteFailed, StatusDeleteComplete,
	StatusUpdateInProgress, StatusUpdateCompleteCleanupInProgress, StatusUpdateComplete,
	StatusUpdateFailed, StatusUpdateRollbackInProgress, StatusUpdateRollbackFailed,
	StatusUpdateRollbackCompleteCleanupInProgress, StatusUpdateRollbackComplete,
	StatusReviewInProgress,
	StatusImportInProgress, StatusImportComplete, StatusImportRollbackInProgress,
	StatusImportRollbackFailed, StatusImportRollbackComplete,
}

// Stable states a stack may be read from or updated in.
var readyStatuses = map[StackStatus]struct{}{
	StatusCreateComplete:         {},
	StatusUpdateComplete:         {},
	StatusImportComplete:         {},
	StatusRollbackComplete:       {},
	StatusUpdateRollbackComplete: {},
	StatusImportRollbackComplete: {},
}

// States CloudFormation will not leave without a new request.
var terminalStatuses = map[StackStatus]struct{}{
	StatusCreateComplete:         {},
	StatusCreateFailed:           {},
	StatusRollbackFailed:         {},
	StatusRollbackComplete:       {},
	StatusDeleteFailed:           {},
	StatusDeleteComplete:         {},
	StatusUpdateComplete:         {},
	StatusUpdateRollbackFailed:   {},
	StatusUpdateRollbackComplete: {},
	StatusImportComplete:         {},
	StatusImportRollbackFailed:   {},
	StatusImportRollbackComplete: {},
}

// ParseStackStatus returns the status named by s and whether it is part of
// the known vocabulary.
func ParseStackStatus(s string) (StackStatus, bool) {
	status := StackStatus(s)
	for _, known := range allStatuses {
		if known == status {
			return status, true
		}
	}
	return status, false
}

// AllStatuses returns the full status vocabulary.
func AllStatuses() []StackStatus {
	out := make([]StackStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s StackStatus) IsReady() bool {
	_, ok := readyStatuses[s]
	return ok
}

func (s StackStatus) IsTerminal() bool {
	_, ok := terminalStatuses[s]
	return ok
}

func (s StackStatus) IsFailed() bool {
	return strings.Contains(string(s), "_FAILED")
}

func (s StackStatus) IsRollback() bool {
	return strings.Contains(string(s), "ROLLBACK")
}

func (s StackStatus) String() string {
	return string(s)
}
