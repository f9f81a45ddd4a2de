package contract

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestGrantCodecRoundTrip(t *testing.T) {
	g := &Grant{
		ID:        7,
		Name:      "infra budget",
		Purpose:   "pay the node operators",
		Token:     AssetFromString("gvt"),
		Recipient: AddressFromString("hive:carol"),
		Creator:   AddressFromString("hive:owner"),
		Amount:    uint256.MustFromDecimal("340282366920938463463374607431768211456"),
		Start:     1756857600,
		End:       1756857600 + FundingWindowSeconds,
	}

	decoded := decodeGrant(encodeGrant(g))
	require.NotNil(t, decoded)
	require.Equal(t, g.ID, decoded.ID)
	require.Equal(t, g.Name, decoded.Name)
	require.Equal(t, g.Purpose, decoded.Purpose)
	require.Equal(t, g.Token, decoded.Token)
	require.Equal(t, g.Recipient, decoded.Recipient)
	require.Equal(t, g.Creator, decoded.Creator)
	require.True(t, g.Amount.Eq(decoded.Amount))
	require.Equal(t, g.Start, decoded.Start)
	require.Equal(t, g.End, decoded.End)
}

func TestGrantCodecRejectsTruncated(t *testing.T) {
	g := &Grant{
		ID:        1,
		Name:      "x",
		Token:     AssetFromString("gvt"),
		Recipient: AddressFromString("hive:carol"),
		Creator:   AddressFromString("hive:owner"),
		Amount:    uint256.NewInt(5),
		Start:     0,
		End:       FundingWindowSeconds,
	}
	blob := encodeGrant(g)

	require.Nil(t, decodeGrant(blob[:len(blob)-1]))
	require.Nil(t, decodeGrant(""))
}

func TestGrantKeysDoNotCollide(t *testing.T) {
	require.NotEqual(t, grantKey(1), grantKey(256))
	require.NotEqual(t,
		funderKey(1, AddressFromString("hive:alice")),
		funderKey(1, AddressFromString("hive:bob")))
	require.NotEqual(t,
		balanceKey(AssetFromString("gvt"), AddressFromString("hive:alice")),
		allowanceKey(AssetFromString("gvt"), AddressFromString("hive:alice"), AddressFromString("hive:alice")))
}
