package types

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DiscriminatorLength is the width of the record type tag.
	DiscriminatorLength = 8

	// IdentitySlotLength holds a 1-byte length and up to 32 address bytes.
	IdentitySlotLength = 1 + MaxIdentityLength

	// MaxIdentityLength is the widest address a record can hold.
	MaxIdentityLength = 32

	// ListingDescriptionCapacity is the byte capacity of a listing description.
	ListingDescriptionCapacity = 128

	// TaskDescriptionCapacity is the byte capacity of a task description.
	TaskDescriptionCapacity = 256

	// ResultHashLength is the width of a submitted result hash.
	ResultHashLength = 32
)

// Record type tags, the first 8 bytes of sha256("account:<Name>").
var (
	ServiceListingDiscriminator = discriminator("ServiceListing")
	TaskRequestDiscriminator    = discriminator("TaskRequest")
)

func discriminator(name string) [DiscriminatorLength]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [DiscriminatorLength]byte
	copy(d[:], sum[:DiscriminatorLength])
	return d
}

// recordWriter appends fixed-width little-endian fields.
type recordWriter struct {
	buf []byte
}

func newRecordWriter(size int) *recordWriter {
	return &recordWriter{buf: make([]byte, 0, size)}
}

func (w *recordWriter) raw(bz []byte) {
	w.buf = append(w.buf, bz...)
}

func (w *recordWriter) identity(addr sdk.AccAddress) error {
	if len(addr) == 0 || len(addr) > MaxIdentityLength {
		return ErrInvalidAddress.Wrapf("identity must be 1..%d bytes, got %d", MaxIdentityLength, len(addr))
	}
	var slot [IdentitySlotLength]byte
	slot[0] = byte(len(addr))
	copy(slot[1:], addr)
	w.buf = append(w.buf, slot[:]...)
	return nil
}

func (w *recordWriter) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *recordWriter) i64(v int64) {
	w.u64(uint64(v))
}

func (w *recordWriter) flag(v bool) {
	if v {
		w.buf = append(w.buf, 1)
		return
	}
	w.buf = append(w.buf, 0)
}

// recordReader consumes fixed-width little-endian fields. The caller checks
// the total length up front so reads never run past the end.
type recordReader struct {
	buf []byte
	off int
}

func (r *recordReader) next(n int) []byte {
	bz := r.buf[r.off : r.off+n]
	r.off += n
	return bz
}

func (r *recordReader) identity() (sdk.AccAddress, error) {
	slot := r.next(IdentitySlotLength)
	n := int(slot[0])
	if n == 0 || n > MaxIdentityLength {
		return nil, ErrCorruptRecord.Wrapf("identity length %d", n)
	}
	if !isZero(slot[1+n:]) {
		return nil, ErrCorruptRecord.Wrap("identity padding is not zero")
	}
	addr := make(sdk.AccAddress, n)
	copy(addr, slot[1:1+n])
	return addr, nil
}

func (r *recordReader) u64() uint64 {
	return binary.LittleEndian.Uint64(r.next(8))
}

func (r *recordReader) i64() int64 {
	return int64(r.u64())
}

func (r *recordReader) flag() (bool, error) {
	switch b := r.next(1)[0]; b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrCorruptRecord.Wrapf("flag byte %d", b)
	}
}

func checkHeader(bz []byte, size int, disc [DiscriminatorLength]byte) error {
	if len(bz) != size {
		return ErrCorruptRecord.Wrapf("expected %d bytes, got %d", size, len(bz))
	}
	if !bytes.Equal(bz[:DiscriminatorLength], disc[:]) {
		return ErrCorruptRecord.Wrap("discriminator mismatch")
	}
	return nil
}

func isZero(bz []byte) bool {
	for _, b := range bz {
		if b != 0 {
			return false
		}
	}
	return true
}

// NewListingDescription packs text into a listing description. Text longer
// than the capacity is rejected, shorter text is zero padded.
func NewListingDescription(text []byte) ([ListingDescriptionCapacity]byte, error) {
	var d [ListingDescriptionCapacity]byte
	if len(text) > ListingDescriptionCapacity {
		return d, ErrDescriptionTooLong.Wrapf("%d bytes exceeds %d", len(text), ListingDescriptionCapacity)
	}
	copy(d[:], text)
	return d, nil
}

// NewTaskDescription packs text into a task description.
func NewTaskDescription(text []byte) ([TaskDescriptionCapacity]byte, error) {
	var d [TaskDescriptionCapacity]byte
	if len(text) > TaskDescriptionCapacity {
		return d, ErrDescriptionTooLong.Wrapf("%d bytes exceeds %d", len(text), TaskDescriptionCapacity)
	}
	copy(d[:], text)
	return d, nil
}

// TrimDescription drops the zero padding of a stored description.
func TrimDescription(d []byte) string {
	return string(bytes.TrimRight(d, "\x00"))
}
