// Package testutils generates "valid looking" accounts and token ids for
// tests.
package testutils

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/trozler/erc721admin/types"
)

// RandomAccount generates a random non-null account.
func RandomAccount(t *testing.T) types.Account {
	t.Helper()
	var a types.Account
	if _, err := rand.Read(a[:]); err != nil {
		t.Fatal("failed to generate account:", err)
	}
	if types.IsNone(a) {
		a[0] = 1
	}
	return a
}

// RandomTokenID generates a random non-zero token id.
func RandomTokenID(t *testing.T) types.TokenID {
	t.Helper()
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		t.Fatal("failed to generate token ID:", err)
	}
	id := types.TokenID(binary.BigEndian.Uint64(buf))
	if id == 0 {
		id = 1
	}
	return id
}
