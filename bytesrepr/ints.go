package bytesrepr

import "encoding/binary"

// Serialized lengths of the fixed-width integers.
const (
	U8SerializedLength  = 1
	U32SerializedLength = 4
	U64SerializedLength = 8
)

// AppendU8 appends v as a single byte.
func AppendU8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// DecodeU8 reads one byte.
func DecodeU8(b []byte) (uint8, []byte, error) {
	if len(b) < U8SerializedLength {
		return 0, nil, ErrUnexpectedEnd
	}
	return b[0], b[1:], nil
}

// AppendU32 appends v in little-endian order.
func AppendU32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// DecodeU32 reads a little-endian u32.
func DecodeU32(b []byte) (uint32, []byte, error) {
	head, rest, err := take(b, U32SerializedLength)
	if err != nil {
		return 0, nil, err
	}
	return binary.LittleEndian.Uint32(head), rest, nil
}

// AppendU64 appends v in little-endian order.
func AppendU64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// DecodeU64 reads a little-endian u64.
func DecodeU64(b []byte) (uint64, []byte, error) {
	head, rest, err := take(b, U64SerializedLength)
	if err != nil {
		return 0, nil, err
	}
	return binary.LittleEndian.Uint64(head), rest, nil
}
