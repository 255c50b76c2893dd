package domain

import "time"

// SyncResult describes a completed synchronization.
type SyncResult struct {
	SourceStackName string
	TargetStackName string
	StackID         string
	Operation       Operation
	Status          StackStatus
	Parameters      ParameterSet
	Polls           int
	Waited          time.Duration
}

// RolledBack reports whether the target ended in a rollback state even
// though the provider considers the operation finished.
func (r SyncResult) RolledBack() bool {
	return r.Status.IsRollback()
}
