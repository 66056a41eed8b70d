package shared

// Asynq task types
const (
	TypePurgeDeletedPresentations = "presentation:purge_deleted"
)

// Asynq queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)
