package bytesrepr

// HashLength is the size of account and contract hash identifiers.
const HashLength = 32

// Hash is a fixed-size 32-byte identifier. It is encoded as its raw
// bytes with no length prefix.
type Hash [HashLength]byte

func (h Hash) SerializedLength() int { return HashLength }

func (h Hash) AppendBytes(dst []byte) ([]byte, error) {
	return append(dst, h[:]...), nil
}

func (h *Hash) FromBytes(b []byte) ([]byte, error) {
	head, rest, err := take(b, HashLength)
	if err != nil {
		return nil, err
	}
	copy(h[:], head)
	return rest, nil
}
