package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultEscrowDenom is the denomination escrow is locked in.
	DefaultEscrowDenom = "uapay"

	// DefaultProofVerifyGas is charged before every pairing check.
	DefaultProofVerifyGas uint64 = 250_000
)

// DefaultParams returns default agentpay parameters
func DefaultParams() Params {
	return Params{
		EscrowDenom:     DefaultEscrowDenom,
		ExpiryBatchSize: 0,
		ProofVerifyGas:  DefaultProofVerifyGas,
	}
}

// Validate checks the parameter set.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.EscrowDenom); err != nil {
		return ErrInvalidParams.Wrapf("escrow denom: %s", err)
	}
	if p.ExpiryBatchSize > 10_000 {
		return ErrInvalidParams.Wrapf("expiry batch size %d exceeds 10000", p.ExpiryBatchSize)
	}
	return nil
}

// MarshalParams encodes params for the store.
func MarshalParams(p Params) ([]byte, error) {
	return p.Marshal()
}

// UnmarshalParams decodes stored params.
func UnmarshalParams(bz []byte) (Params, error) {
	var p Params
	if err := p.Unmarshal(bz); err != nil {
		return Params{}, ErrInvalidParams.Wrap(err.Error())
	}
	return p, nil
}
