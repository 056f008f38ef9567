package request

// SchedulerRequest represents the JSON body for scheduler control.
type SchedulerRequest struct {
	// Action controls the scheduler. Allowed values:
	// - "start": start periodic snapshots
	// - "stop":  stop periodic snapshots
	// - "run":   run one snapshot now
	Action string `json:"action"`
}
