package keeper

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

const (
	resultCircuit     = "result"
	reputationCircuit = "reputation"
)

// VerifyReputation checks a proof that the committed provider score meets
// threshold. It reads the listing only to require it is active and writes
// nothing; callers run it before CreateTask as a client-side gate.
func (k Keeper) VerifyReputation(
	ctx context.Context,
	proof types.Groth16Proof,
	threshold uint64,
	providerCommitment [types.PublicInputLength]byte,
	listingAddr sdk.AccAddress,
) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	listing, err := k.GetServiceListing(ctx, listingAddr)
	if err != nil {
		return err
	}
	if !listing.IsActive {
		return types.WrapWithRecovery(types.ErrServiceNotActive, "listing %s", listingAddr)
	}

	inputs := []types.PublicInput{types.PublicInputFromUint64(threshold), providerCommitment}
	if !k.verifyProof(sdkCtx, reputationCircuit, k.verifiers.Reputation, proof, inputs) {
		return types.WrapWithRecovery(types.ErrReputationTooLow, "threshold %d", threshold)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReputationVerified,
			sdk.NewAttribute(types.AttributeKeyServiceListing, listingAddr.String()),
			sdk.NewAttribute(types.AttributeKeyThreshold, fmt.Sprintf("%d", threshold)),
			sdk.NewAttribute("provider_commitment", hex.EncodeToString(providerCommitment[:])),
		),
	)
	return nil
}

// verifyProof charges gas up front, then runs the verifier. A missing
// verifier rejects everything.
func (k Keeper) verifyProof(
	ctx sdk.Context,
	circuit string,
	v types.ProofVerifier,
	proof types.Groth16Proof,
	inputs []types.PublicInput,
) bool {
	ctx.GasMeter().ConsumeGas(k.GetParams(ctx).ProofVerifyGas, "agentpay_zk_proof_verification")

	if v == nil {
		k.Logger(ctx).Error("no verifier configured", "circuit", circuit)
		k.metrics.ProofVerifications.WithLabelValues(circuit, "unconfigured").Inc()
		return false
	}

	start := time.Now()
	ok := v.Verify(proof.A[:], proof.B[:], proof.C[:], inputs)
	k.metrics.ProofVerificationTime.WithLabelValues(circuit).Observe(time.Since(start).Seconds())

	result := "rejected"
	if ok {
		result = "accepted"
	}
	k.metrics.ProofVerifications.WithLabelValues(circuit, result).Inc()
	return ok
}
