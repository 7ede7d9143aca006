package keeper

import (
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// MockVerifier accepts or rejects every proof and records what it was asked.
type MockVerifier struct {
	Accept     bool
	Calls      int
	LastInputs []types.PublicInput
}

var _ types.ProofVerifier = (*MockVerifier)(nil)

func (m *MockVerifier) Verify(_, _, _ []byte, publicInputs []types.PublicInput) bool {
	m.Calls++
	m.LastInputs = append([]types.PublicInput(nil), publicInputs...)
	return m.Accept
}

// NewMockVerifiers returns accepting mocks for both circuits.
func NewMockVerifiers() (types.Verifiers, *MockVerifier, *MockVerifier) {
	result := &MockVerifier{Accept: true}
	reputation := &MockVerifier{Accept: true}
	return types.Verifiers{Result: result, Reputation: reputation}, result, reputation
}
