package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the ledger the escrow runs on: atomic balance transfers
// between accounts, including derived task accounts.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// ProofVerifier checks a Groth16 proof against a public input vector.
// It must be deterministic and side-effect free; malformed input is a
// rejection, never a panic.
type ProofVerifier interface {
	Verify(proofA, proofB, proofC []byte, publicInputs []PublicInput) bool
}

// ProofVerifierFunc adapts a plain function to ProofVerifier.
type ProofVerifierFunc func(proofA, proofB, proofC []byte, publicInputs []PublicInput) bool

func (f ProofVerifierFunc) Verify(proofA, proofB, proofC []byte, publicInputs []PublicInput) bool {
	return f(proofA, proofB, proofC, publicInputs)
}

// Verifiers groups the verifier used for each gated operation. A nil
// verifier rejects every proof.
type Verifiers struct {
	Result     ProofVerifier
	Reputation ProofVerifier
}
