package hash

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	_ struct{} `cbor:",toarray"`
	A uint64
	B []byte
}

func Test_Sum256(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		h1, err := Sum256(&record{A: 1, B: []byte{0x02}})
		require.NoError(t, err)
		h2, err := Sum256(&record{A: 1, B: []byte{0x02}})
		require.NoError(t, err)
		require.Equal(t, h1, h2)
		require.Len(t, h1, sha256.Size)
	})

	t.Run("content sensitive", func(t *testing.T) {
		h1, err := Sum256(&record{A: 1})
		require.NoError(t, err)
		h2, err := Sum256(&record{A: 2})
		require.NoError(t, err)
		require.NotEqual(t, h1, h2)
	})

	t.Run("multiple writes differ from single write", func(t *testing.T) {
		h1, err := Sum256(uint64(1), uint64(2))
		require.NoError(t, err)
		h2, err := Sum256(uint64(1))
		require.NoError(t, err)
		require.NotEqual(t, h1, h2)
	})
}

func Test_Hash_Write(t *testing.T) {
	hasher := New(sha256.New())
	hasher.Write(&record{A: 7})
	sum, err := hasher.Sum()
	require.NoError(t, err)

	want, err := Sum256(&record{A: 7})
	require.NoError(t, err)
	require.Equal(t, want, sum)
}
