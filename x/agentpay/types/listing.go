package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ServiceListingSize is the encoded width of a listing record.
const ServiceListingSize = DiscriminatorLength + IdentitySlotLength + IDLength +
	ListingDescriptionCapacity + 8 + 1 + 8 + 8 + 8

// ServiceListing is a provider's offer of a paid service, stored at the
// address derived from (provider, service_id).
type ServiceListing struct {
	Provider       sdk.AccAddress
	ServiceID      [IDLength]byte
	Description    [ListingDescriptionCapacity]byte
	PriceLamports  uint64
	IsActive       bool
	TasksCompleted uint64
	CreatedAt      int64
	// MinReputation is advisory, 0 disables it.
	MinReputation uint64
}

// Address returns the derived storage address of the listing.
func (l ServiceListing) Address() sdk.AccAddress {
	return ServiceListingAddress(l.Provider, l.ServiceID)
}

// DescriptionText returns the description without padding.
func (l ServiceListing) DescriptionText() string {
	return TrimDescription(l.Description[:])
}

// MarshalBinary encodes the listing in its fixed-width layout.
func (l ServiceListing) MarshalBinary() ([]byte, error) {
	w := newRecordWriter(ServiceListingSize)
	w.raw(ServiceListingDiscriminator[:])
	if err := w.identity(l.Provider); err != nil {
		return nil, err
	}
	w.raw(l.ServiceID[:])
	w.raw(l.Description[:])
	w.u64(l.PriceLamports)
	w.flag(l.IsActive)
	w.u64(l.TasksCompleted)
	w.i64(l.CreatedAt)
	w.u64(l.MinReputation)
	return w.buf, nil
}

// UnmarshalBinary decodes a listing from its fixed-width layout.
func (l *ServiceListing) UnmarshalBinary(bz []byte) error {
	if err := checkHeader(bz, ServiceListingSize, ServiceListingDiscriminator); err != nil {
		return err
	}
	r := &recordReader{buf: bz, off: DiscriminatorLength}

	var (
		out ServiceListing
		err error
	)
	if out.Provider, err = r.identity(); err != nil {
		return err
	}
	copy(out.ServiceID[:], r.next(IDLength))
	copy(out.Description[:], r.next(ListingDescriptionCapacity))
	out.PriceLamports = r.u64()
	if out.IsActive, err = r.flag(); err != nil {
		return err
	}
	out.TasksCompleted = r.u64()
	out.CreatedAt = r.i64()
	out.MinReputation = r.u64()

	*l = out
	return nil
}
