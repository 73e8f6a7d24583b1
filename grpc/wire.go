package clgrpc

// Request and response envelopes for the StorageService RPCs.
// Value fields hold bytesrepr payloads verbatim.

// PutKeyRequest writes Value under Name, replacing any previous value.
type PutKeyRequest struct {
	Name  string `cramberry:"1"`
	Value []byte `cramberry:"2"`
}

// PutKeyResponse is the (empty) response to PutKey.
type PutKeyResponse struct{}

// GetKeyRequest reads the value stored under Name.
type GetKeyRequest struct {
	Name string `cramberry:"1"`
}

// GetKeyResponse carries the stored value. A missing key is reported
// as a NotFound status, not as an empty response.
type GetKeyResponse struct {
	Value []byte `cramberry:"1"`
}
