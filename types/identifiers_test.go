package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_TokenID(t *testing.T) {
	require.Equal(t, "#42", TokenID(42).String())
}

func Test_IsNone(t *testing.T) {
	require.True(t, IsNone(NoAccount))
	require.True(t, IsNone(Account{}))
	require.False(t, IsNone(Account{0x01}))
}
