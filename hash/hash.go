/*
Package hash computes digests over CBOR encoded values so that two
structurally equal values always produce the same digest, regardless of
how they were built.
*/
package hash

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/fxamacker/cbor/v2"
)

/*
New creates a "hash calculator" using the given hash function.
Values written to the hash are encoded as CBOR before hashing.
*/
func New(h hash.Hash) *Hash {
	return &Hash{h: h, enc: encoderMode.NewEncoder(h)}
}

type Hash struct {
	h   hash.Hash
	enc *cbor.Encoder
	err error
}

/*
Write serializes the argument as CBOR and adds it to the hash.
*/
func (h *Hash) Write(v any) {
	if h.err != nil {
		return
	}
	h.err = h.enc.Encode(v)
}

/*
Sum returns the hash value calculated and the first error (if any) that
happened during hashing (in case of non-nil error the hash value is not
valid).
*/
func (h *Hash) Sum() ([]byte, error) {
	return h.h.Sum(nil), h.err
}

// Sum256 returns the SHA-256 digest of the CBOR encoding of the values.
func Sum256(values ...any) ([]byte, error) {
	hasher := New(sha256.New())
	for _, v := range values {
		hasher.Write(v)
	}
	return hasher.Sum()
}

var encoderMode cbor.EncMode

func init() {
	// it is extremely unlikely that building encoder mode from options
	// provided by the CBOR library fails (ie memory corruption...)
	var err error
	if encoderMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(fmt.Errorf("initializing CBOR encoder mode: %w", err))
	}
}
