package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "agentpay"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// ServiceListingKeyPrefix is the prefix for service listing records
	ServiceListingKeyPrefix = []byte{0x02}

	// TaskRequestKeyPrefix is the prefix for task request records
	TaskRequestKeyPrefix = []byte{0x03}

	// ListingsByProviderPrefix indexes listings by provider
	ListingsByProviderPrefix = []byte{0x04}

	// TasksByRequesterPrefix indexes tasks by requester
	TasksByRequesterPrefix = []byte{0x05}

	// TasksByProviderPrefix indexes tasks by provider
	TasksByProviderPrefix = []byte{0x06}

	// TasksByStatusPrefix indexes tasks by status
	TasksByStatusPrefix = []byte{0x07}

	// OpenTaskDeadlinePrefix indexes open tasks by deadline for the expiry crank.
	// Key: prefix + deadline (8 bytes, big endian) + task address
	OpenTaskDeadlinePrefix = []byte{0x08}
)

// ServiceListingKey returns the store key for a listing.
func ServiceListingKey(listing sdk.AccAddress) []byte {
	return append(append([]byte{}, ServiceListingKeyPrefix...), address.MustLengthPrefix(listing)...)
}

// TaskRequestKey returns the store key for a task.
func TaskRequestKey(task sdk.AccAddress) []byte {
	return append(append([]byte{}, TaskRequestKeyPrefix...), address.MustLengthPrefix(task)...)
}

// ListingsByProviderPrefixKey returns the index prefix for all listings of a provider.
func ListingsByProviderPrefixKey(provider sdk.AccAddress) []byte {
	return append(append([]byte{}, ListingsByProviderPrefix...), address.MustLengthPrefix(provider)...)
}

// ListingByProviderKey returns the index key for a listing owned by provider.
func ListingByProviderKey(provider, listing sdk.AccAddress) []byte {
	return append(ListingsByProviderPrefixKey(provider), address.MustLengthPrefix(listing)...)
}

// TasksByRequesterPrefixKey returns the index prefix for all tasks of a requester.
func TasksByRequesterPrefixKey(requester sdk.AccAddress) []byte {
	return append(append([]byte{}, TasksByRequesterPrefix...), address.MustLengthPrefix(requester)...)
}

// TaskByRequesterKey returns the index key for a task created by requester.
func TaskByRequesterKey(requester, task sdk.AccAddress) []byte {
	return append(TasksByRequesterPrefixKey(requester), address.MustLengthPrefix(task)...)
}

// TasksByProviderPrefixKey returns the index prefix for all tasks served by a provider.
func TasksByProviderPrefixKey(provider sdk.AccAddress) []byte {
	return append(append([]byte{}, TasksByProviderPrefix...), address.MustLengthPrefix(provider)...)
}

// TaskByProviderKey returns the index key for a task served by provider.
func TaskByProviderKey(provider, task sdk.AccAddress) []byte {
	return append(TasksByProviderPrefixKey(provider), address.MustLengthPrefix(task)...)
}

// TasksByStatusPrefixKey returns the index prefix for all tasks in a status.
func TasksByStatusPrefixKey(status TaskStatus) []byte {
	return append(append([]byte{}, TasksByStatusPrefix...), byte(status))
}

// TaskByStatusKey returns the status index key for a task.
func TaskByStatusKey(status TaskStatus, task sdk.AccAddress) []byte {
	return append(TasksByStatusPrefixKey(status), address.MustLengthPrefix(task)...)
}

// OpenTaskDeadlineKey returns the deadline index key for an open task.
// Negative deadlines clamp to zero so the big-endian ordering stays monotonic.
func OpenTaskDeadlineKey(deadline int64, task sdk.AccAddress) []byte {
	key := make([]byte, 0, len(OpenTaskDeadlinePrefix)+8+1+len(task))
	key = append(key, OpenTaskDeadlinePrefix...)
	key = append(key, deadlineBytes(deadline)...)
	return append(key, address.MustLengthPrefix(task)...)
}

// OpenTaskDeadlineUpperBound returns the exclusive end key covering every
// deadline strictly lower than before.
func OpenTaskDeadlineUpperBound(before int64) []byte {
	return append(append([]byte{}, OpenTaskDeadlinePrefix...), deadlineBytes(before)...)
}

// ParseOpenTaskDeadlineKey splits a deadline index key (without prefix) into its parts.
func ParseOpenTaskDeadlineKey(key []byte) (int64, sdk.AccAddress, bool) {
	if len(key) < 9 {
		return 0, nil, false
	}
	deadline := int64(binary.BigEndian.Uint64(key[:8]))
	addrLen := int(key[8])
	if len(key) != 9+addrLen {
		return 0, nil, false
	}
	return deadline, sdk.AccAddress(key[9:]), true
}

// ParseLengthPrefixedAddress reads a single length-prefixed address, as stored
// at the end of every index key.
func ParseLengthPrefixedAddress(bz []byte) (sdk.AccAddress, bool) {
	if len(bz) == 0 {
		return nil, false
	}
	n := int(bz[0])
	if len(bz) != 1+n {
		return nil, false
	}
	return sdk.AccAddress(bz[1:]), true
}

func deadlineBytes(deadline int64) []byte {
	if deadline < 0 {
		deadline = 0
	}
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(deadline))
	return bz
}
