package sdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressDomain(t *testing.T) {
	require.Equal(t, AddressDomainSystem, Address("system:grant_vault").Domain())
	require.Equal(t, AddressDomainContract, Address("contract:grantvault").Domain())
	require.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
}

func TestAddressIsValid(t *testing.T) {
	require.True(t, Address("hive:alice").IsValid())
	require.True(t, Address("system:unissued").IsValid())
	require.False(t, Address("").IsValid())
	require.False(t, Address("alice").IsValid())
	require.False(t, Address(":alice").IsValid())
	require.False(t, Address("hive:").IsValid())
}

func TestAssetIsValid(t *testing.T) {
	require.True(t, Asset("gvt").IsValid())
	require.True(t, Asset("hbd_savings").IsValid())
	require.False(t, Asset("").IsValid())
	require.False(t, Asset("GVT").IsValid())
	require.False(t, Asset("way_too_long_ticker_name").IsValid())
	require.False(t, Asset("g v t").IsValid())
}
