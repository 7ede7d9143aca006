package types

// Event types for the agentpay module
const (
	EventTypeServiceRegistered  = "service_registered"
	EventTypeServiceDeactivated = "service_deactivated"

	EventTypeTaskCreated     = "task_created"
	EventTypeResultSubmitted = "result_submitted"
	EventTypeTaskCompleted   = "task_completed"
	EventTypeTaskDisputed    = "task_disputed"
	EventTypeTaskExpired     = "task_expired"

	EventTypeReputationVerified = "reputation_verified"
	EventTypeParamsUpdated      = "params_updated"
)

// Event attribute keys for the agentpay module
const (
	AttributeKeyProvider       = "provider"
	AttributeKeyRequester      = "requester"
	AttributeKeyServiceListing = "service_listing"
	AttributeKeyServiceID      = "service_id"
	AttributeKeyTask           = "task"
	AttributeKeyTaskID         = "task_id"
	AttributeKeyPrice          = "price"
	AttributeKeyAmount         = "amount"
	AttributeKeyDeadline       = "deadline"
	AttributeKeyResultHash     = "result_hash"
	AttributeKeyZkVerified     = "zk_verified"
	AttributeKeyRecipient      = "recipient"
	AttributeKeyCaller         = "caller"
	AttributeKeyThreshold      = "threshold"
	AttributeKeyTasksCompleted = "tasks_completed"
	AttributeKeyMinReputation  = "min_reputation"
)
