package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// Namespace tags mixed into every derived entity address.
var (
	ServiceNamespace = []byte("service")
	TaskNamespace    = []byte("task")
)

// IDLength is the width of caller-chosen service and task identifiers.
const IDLength = 16

// ServiceListingAddress derives the address of the listing registered by
// provider under serviceID. Any client can recompute it without an index.
func ServiceListingAddress(provider sdk.AccAddress, serviceID [IDLength]byte) sdk.AccAddress {
	return address.Module(ModuleName, ServiceNamespace, provider, serviceID[:])
}

// TaskRequestAddress derives the address of the task created by requester
// under taskID. The same address is the task's escrow account.
func TaskRequestAddress(requester sdk.AccAddress, taskID [IDLength]byte) sdk.AccAddress {
	return address.Module(ModuleName, TaskNamespace, requester, taskID[:])
}

// ParseID copies a caller supplied identifier into its fixed-width form.
func ParseID(bz []byte) ([IDLength]byte, error) {
	var id [IDLength]byte
	if len(bz) != IDLength {
		return id, ErrInvalidID.Wrapf("expected %d bytes, got %d", IDLength, len(bz))
	}
	copy(id[:], bz)
	return id, nil
}
