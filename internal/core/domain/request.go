package domain

// SyncRequest is the caller's description of one synchronization. It is
// built once at the boundary and passed by value through the pipeline.
type SyncRequest struct {
	SourceStackName         string
	TargetStackName         string
	IgnoreSourceStackStatus bool
	Overrides               ParameterSet
	RoleARN                 string
}
