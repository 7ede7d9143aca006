package cli

// Flag constants for agentpay CLI commands
const (
	// Listing and task flags
	FlagDescription   = "description"
	FlagMinReputation = "min-reputation"
	FlagMaxPayment    = "max-payment"

	// Query filter flags
	FlagRequester    = "requester"
	FlagProvider     = "provider"
	FlagStatus       = "status"
	FlagKeyword      = "keyword"
	FlagMaxPrice     = "max-price"
	FlagMinCompleted = "min-completed"
	FlagMaxResults   = "max-results"

	// ZK tooling flags
	FlagKeysDir     = "keys-dir"
	FlagKeyPassword = "key-password"
	FlagCircuit     = "circuit"
	FlagOutput      = "output"
	FlagThreshold   = "threshold"
	FlagScore       = "score"
	FlagSalt        = "salt"
)
