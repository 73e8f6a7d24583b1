package bytesrepr

import (
	"fmt"
	"math"
)

// VecSerializedLength is the encoded length of items as a Vec: the
// u32 count followed by every element.
func VecSerializedLength[T Encoder](items []T) int {
	n := U32SerializedLength
	for _, it := range items {
		n += it.SerializedLength()
	}
	return n
}

// AppendVec appends the element count and then each element in order.
func AppendVec[T Encoder](dst []byte, items []T) ([]byte, error) {
	if uint64(len(items)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d elements", ErrAllocation, len(items))
	}
	dst = AppendU32(dst, uint32(len(items)))
	var err error
	for _, it := range items {
		if dst, err = it.AppendBytes(dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// DecodeVec decodes a count-prefixed sequence. It stops after exactly
// the recorded number of elements and returns whatever follows.
func DecodeVec[T any, PT interface {
	*T
	Decoder
}](b []byte) ([]T, []byte, error) {
	count, rest, err := DecodeU32(b)
	if err != nil {
		return nil, nil, err
	}
	// Every element occupies at least one byte.
	if uint64(count) > uint64(len(rest)) {
		return nil, nil, fmt.Errorf("%w: vec of %d elements in %d bytes", ErrUnexpectedEnd, count, len(rest))
	}
	n := int(count)
	items := make([]T, 0, n)
	for i := 0; i < n; i++ {
		var it T
		if rest, err = PT(&it).FromBytes(rest); err != nil {
			return nil, nil, fmt.Errorf("bytesrepr: vec element %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, rest, nil
}
