package types

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

func testAddr(seed byte, n int) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{seed}, n))
}

func sampleListing(t *testing.T) ServiceListing {
	t.Helper()
	desc, err := NewListingDescription([]byte("summarize a pdf"))
	require.NoError(t, err)
	return ServiceListing{
		Provider:       testAddr(0xaa, 20),
		ServiceID:      [IDLength]byte{1, 2, 3},
		Description:    desc,
		PriceLamports:  1000,
		IsActive:       true,
		TasksCompleted: 7,
		CreatedAt:      1_700_000_000,
		MinReputation:  50,
	}
}

func sampleTask(t *testing.T) TaskRequest {
	t.Helper()
	desc, err := NewTaskDescription([]byte("translate to french"))
	require.NoError(t, err)
	listing := sampleListing(t)
	return TaskRequest{
		Requester:      testAddr(0xbb, 32),
		Provider:       listing.Provider,
		ServiceListing: listing.Address(),
		TaskID:         [IDLength]byte{9},
		Description:    desc,
		AmountLamports: 1000,
		Status:         TaskStatusSubmitted,
		ResultHash:     [ResultHashLength]byte{0xde, 0xad},
		Deadline:       1_700_000_100,
		CreatedAt:      1_700_000_000,
		ZkVerified:     true,
	}
}

func TestServiceListingLayout(t *testing.T) {
	require.Equal(t, 218, ServiceListingSize)

	l := sampleListing(t)
	bz, err := l.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, bz, ServiceListingSize)
	require.Equal(t, ServiceListingDiscriminator[:], bz[:DiscriminatorLength])

	// identity slot: length byte then zero padded address
	require.Equal(t, byte(20), bz[8])
	require.Equal(t, []byte(l.Provider), bz[9:29])
	require.True(t, isZero(bz[29:41]))

	var decoded ServiceListing
	require.NoError(t, decoded.UnmarshalBinary(bz))
	require.Equal(t, l, decoded)
	require.Equal(t, "summarize a pdf", decoded.DescriptionText())
}

func TestTaskRequestLayout(t *testing.T) {
	require.Equal(t, 437, TaskRequestSize)

	task := sampleTask(t)
	bz, err := task.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, bz, TaskRequestSize)

	statusOffset := DiscriminatorLength + 3*IdentitySlotLength + IDLength + TaskDescriptionCapacity + 8
	require.Equal(t, byte(TaskStatusSubmitted), bz[statusOffset])
	require.Equal(t, byte(1), bz[TaskRequestSize-1])

	var decoded TaskRequest
	require.NoError(t, decoded.UnmarshalBinary(bz))
	require.Equal(t, task, decoded)
}

func TestDecodeRejectsCorruptRecords(t *testing.T) {
	task := sampleTask(t)
	good, err := task.MarshalBinary()
	require.NoError(t, err)

	statusOffset := DiscriminatorLength + 3*IdentitySlotLength + IDLength + TaskDescriptionCapacity + 8

	cases := map[string]func([]byte) []byte{
		"short":         func(bz []byte) []byte { return bz[:len(bz)-1] },
		"discriminator": func(bz []byte) []byte { bz[0] ^= 0xff; return bz },
		"status":        func(bz []byte) []byte { bz[statusOffset] = 9; return bz },
		"flag":          func(bz []byte) []byte { bz[len(bz)-1] = 2; return bz },
		"identity len":  func(bz []byte) []byte { bz[8] = 0; return bz },
		"padding":       func(bz []byte) []byte { bz[8] = 20; bz[40] = 1; return bz },
	}
	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			bz := corrupt(append([]byte{}, good...))
			var decoded TaskRequest
			require.ErrorIs(t, decoded.UnmarshalBinary(bz), ErrCorruptRecord)
		})
	}

	var listing ServiceListing
	require.ErrorIs(t, listing.UnmarshalBinary(good), ErrCorruptRecord)
}

func TestDescriptionCapacity(t *testing.T) {
	_, err := NewListingDescription(bytes.Repeat([]byte("x"), ListingDescriptionCapacity))
	require.NoError(t, err)
	_, err = NewListingDescription(bytes.Repeat([]byte("x"), ListingDescriptionCapacity+1))
	require.ErrorIs(t, err, ErrDescriptionTooLong)

	_, err = NewTaskDescription(bytes.Repeat([]byte("x"), TaskDescriptionCapacity))
	require.NoError(t, err)
	_, err = NewTaskDescription(bytes.Repeat([]byte("x"), TaskDescriptionCapacity+1))
	require.ErrorIs(t, err, ErrDescriptionTooLong)
}

func TestMarshalRejectsOversizedIdentity(t *testing.T) {
	l := sampleListing(t)
	l.Provider = testAddr(1, 33)
	_, err := l.MarshalBinary()
	require.ErrorIs(t, err, ErrInvalidAddress)
}
