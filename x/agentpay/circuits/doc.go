// Package circuits defines the gnark circuits whose Groth16 proofs gate
// result submission and reputation thresholds, plus native helpers that
// compute the same MiMC hashes off-circuit.
package circuits

// Circuit identifiers, also used as key file names.
const (
	ResultCircuitName     = "result-hash-v1"
	ReputationCircuitName = "reputation-threshold-v1"
)
