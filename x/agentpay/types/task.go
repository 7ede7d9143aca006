package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TaskRequestSize is the encoded width of a task record.
const TaskRequestSize = DiscriminatorLength + 3*IdentitySlotLength + IDLength +
	TaskDescriptionCapacity + 8 + 1 + ResultHashLength + 8 + 8 + 1

// TaskRequest is a unit of paid work. Its derived address doubles as the
// escrow account holding AmountLamports until a terminal transition.
type TaskRequest struct {
	Requester      sdk.AccAddress
	Provider       sdk.AccAddress
	ServiceListing sdk.AccAddress
	TaskID         [IDLength]byte
	Description    [TaskDescriptionCapacity]byte
	AmountLamports uint64
	Status         TaskStatus
	ResultHash     [ResultHashLength]byte
	Deadline       int64
	CreatedAt      int64
	ZkVerified     bool
}

// Address returns the derived storage and escrow address of the task.
func (t TaskRequest) Address() sdk.AccAddress {
	return TaskRequestAddress(t.Requester, t.TaskID)
}

// DescriptionText returns the description without padding.
func (t TaskRequest) DescriptionText() string {
	return TrimDescription(t.Description[:])
}

// MarshalBinary encodes the task in its fixed-width layout.
func (t TaskRequest) MarshalBinary() ([]byte, error) {
	if !t.Status.IsValid() {
		return nil, ErrInvalidTaskStatus.Wrapf("cannot encode status %d", uint8(t.Status))
	}
	w := newRecordWriter(TaskRequestSize)
	w.raw(TaskRequestDiscriminator[:])
	for _, id := range []sdk.AccAddress{t.Requester, t.Provider, t.ServiceListing} {
		if err := w.identity(id); err != nil {
			return nil, err
		}
	}
	w.raw(t.TaskID[:])
	w.raw(t.Description[:])
	w.u64(t.AmountLamports)
	w.raw([]byte{byte(t.Status)})
	w.raw(t.ResultHash[:])
	w.i64(t.Deadline)
	w.i64(t.CreatedAt)
	w.flag(t.ZkVerified)
	return w.buf, nil
}

// UnmarshalBinary decodes a task from its fixed-width layout.
func (t *TaskRequest) UnmarshalBinary(bz []byte) error {
	if err := checkHeader(bz, TaskRequestSize, TaskRequestDiscriminator); err != nil {
		return err
	}
	r := &recordReader{buf: bz, off: DiscriminatorLength}

	var (
		out TaskRequest
		err error
	)
	if out.Requester, err = r.identity(); err != nil {
		return err
	}
	if out.Provider, err = r.identity(); err != nil {
		return err
	}
	if out.ServiceListing, err = r.identity(); err != nil {
		return err
	}
	copy(out.TaskID[:], r.next(IDLength))
	copy(out.Description[:], r.next(TaskDescriptionCapacity))
	out.AmountLamports = r.u64()
	out.Status = TaskStatus(r.next(1)[0])
	if !out.Status.IsValid() {
		return ErrCorruptRecord.Wrapf("status byte %d", uint8(out.Status))
	}
	copy(out.ResultHash[:], r.next(ResultHashLength))
	out.Deadline = r.i64()
	out.CreatedAt = r.i64()
	if out.ZkVerified, err = r.flag(); err != nil {
		return err
	}

	*t = out
	return nil
}
