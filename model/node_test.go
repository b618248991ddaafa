package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeIDRoundTrip(t *testing.T) {
	require.Equal(t, "W_7", WarehouseNodeID(7))
	require.Equal(t, "C_42", CustomerNodeID(42))

	kind, id, err := ParseNodeID("C_42")
	require.NoError(t, err)
	require.Equal(t, KindCustomer, kind)
	require.EqualValues(t, 42, id)

	kind, id, err = ParseNodeID("W_7")
	require.NoError(t, err)
	require.Equal(t, KindWarehouse, kind)
	require.EqualValues(t, 7, id)
}

func TestParseNodeID_Malformed(t *testing.T) {
	for _, bad := range []string{"", "X_1", "C_", "C_abc", "7"} {
		_, _, err := ParseNodeID(bad)
		require.ErrorIs(t, err, ErrMalformedNodeID, "input %q", bad)
	}
}

func TestIsCustomerWarehouseNode(t *testing.T) {
	require.True(t, IsCustomerNode("C_1"))
	require.False(t, IsCustomerNode("W_1"))
	require.True(t, IsWarehouseNode("W_1"))
	require.False(t, IsWarehouseNode("C_1"))
}

func TestNodeIDSuffix(t *testing.T) {
	require.Equal(t, "20", NodeIDSuffix("C_20"))
	require.Equal(t, "3", NodeIDSuffix("W_3"))
}
