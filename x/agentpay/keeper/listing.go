package keeper

import (
	"context"
	"encoding/hex"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// RegisterService creates a listing at the address derived from
// (provider, serviceID). The pair must not have been used before.
func (k Keeper) RegisterService(
	ctx context.Context,
	provider sdk.AccAddress,
	serviceID [types.IDLength]byte,
	description []byte,
	price uint64,
	minReputation uint64,
) (sdk.AccAddress, error) {
	desc, err := types.NewListingDescription(description)
	if err != nil {
		return nil, err
	}

	listing := types.ServiceListing{
		Provider:       provider,
		ServiceID:      serviceID,
		Description:    desc,
		PriceLamports:  price,
		IsActive:       true,
		TasksCompleted: 0,
		MinReputation:  minReputation,
	}
	addr := listing.Address()

	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if k.getStore(ctx).Has(types.ServiceListingKey(addr)) {
			return types.WrapWithRecovery(types.ErrServiceAlreadyExists, "listing %s", addr)
		}
		listing.CreatedAt = now(ctx)
		if err := k.setServiceListing(ctx, listing); err != nil {
			return err
		}
		k.getStore(ctx).Set(types.ListingByProviderKey(provider, addr), []byte{1})

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeServiceRegistered,
				sdk.NewAttribute(types.AttributeKeyServiceListing, addr.String()),
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyServiceID, hex.EncodeToString(serviceID[:])),
				sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", price)),
				sdk.NewAttribute(types.AttributeKeyMinReputation, fmt.Sprintf("%d", minReputation)),
			),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	k.metrics.ListingsRegistered.Inc()
	k.Logger(ctx).Info("service registered", "listing", addr.String(), "provider", provider.String(), "price", price)
	return addr, nil
}

// DeactivateService closes a listing to new tasks. There is no way back.
// Tasks already created against the listing are unaffected.
func (k Keeper) DeactivateService(ctx context.Context, caller, listingAddr sdk.AccAddress) error {
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		listing, err := k.GetServiceListing(ctx, listingAddr)
		if err != nil {
			return err
		}
		if !listing.Provider.Equals(caller) {
			return types.WrapWithRecovery(types.ErrUnauthorizedServiceOwner, "caller %s", caller)
		}

		listing.IsActive = false
		if err := k.setServiceListing(ctx, listing); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeServiceDeactivated,
				sdk.NewAttribute(types.AttributeKeyServiceListing, listingAddr.String()),
				sdk.NewAttribute(types.AttributeKeyProvider, caller.String()),
			),
		)
		return nil
	})
	if err != nil {
		return err
	}

	k.metrics.ListingsDeactivated.Inc()
	return nil
}

// GetServiceListing loads a listing by its derived address.
func (k Keeper) GetServiceListing(ctx context.Context, addr sdk.AccAddress) (types.ServiceListing, error) {
	bz := k.getStore(ctx).Get(types.ServiceListingKey(addr))
	if bz == nil {
		return types.ServiceListing{}, types.WrapWithRecovery(types.ErrServiceNotFound, "listing %s", addr)
	}
	var listing types.ServiceListing
	if err := listing.UnmarshalBinary(bz); err != nil {
		return types.ServiceListing{}, err
	}
	return listing, nil
}

func (k Keeper) setServiceListing(ctx context.Context, listing types.ServiceListing) error {
	bz, err := listing.MarshalBinary()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ServiceListingKey(listing.Address()), bz)
	return nil
}

// IterateServiceListings calls cb for every listing until cb returns true.
func (k Keeper) IterateServiceListings(ctx context.Context, cb func(addr sdk.AccAddress, listing types.ServiceListing) (stop bool)) error {
	it := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.ServiceListingKeyPrefix)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		addr, ok := types.ParseLengthPrefixedAddress(it.Key()[len(types.ServiceListingKeyPrefix):])
		if !ok {
			return types.ErrCorruptRecord.Wrapf("listing key %x", it.Key())
		}
		var listing types.ServiceListing
		if err := listing.UnmarshalBinary(it.Value()); err != nil {
			return err
		}
		if cb(addr, listing) {
			break
		}
	}
	return nil
}
