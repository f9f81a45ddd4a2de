package contract_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"grantvault/contract"
)

func maxDec() string {
	return new(uint256.Int).SetAllOne().Dec()
}

func TestMintIsOwnerOnly(t *testing.T) {
	setup(t, "open")

	callRevert(t, contract.TokenMint,
		`{"token":"gvt","to":"hive:alice","amount":"100"}`,
		funderA, t0, contract.ErrUnauthorized)

	mintTo(t, funderA, "100")
	require.Equal(t, "100", balanceOf(t, funderA))
	require.Equal(t, "tm|token:gvt|to:hive:alice|am:100", lastLog(t))
}

func TestMintConservesSupply(t *testing.T) {
	setup(t, "open")
	mintTo(t, funderA, "250")
	mintTo(t, funderB, "750")

	// unissued + all balances always add back up to MAX
	expected := new(uint256.Int).Sub(new(uint256.Int).SetAllOne(), uint256.NewInt(1000))
	require.Equal(t, expected.Dec(), balanceOf(t, contract.AddressUnissued))
}

func TestTransferMovesBalance(t *testing.T) {
	setup(t, "open")
	mintTo(t, funderA, "100")

	callOK(t, contract.TokenTransfer,
		`{"token":"gvt","to":"hive:bob","amount":"40"}`,
		funderA, t0)
	require.Equal(t, "60", balanceOf(t, funderA))
	require.Equal(t, "40", balanceOf(t, funderB))
}

func TestTransferInsufficientBalance(t *testing.T) {
	setup(t, "open")
	mintTo(t, funderA, "10")

	callRevert(t, contract.TokenTransfer,
		`{"token":"gvt","to":"hive:bob","amount":"11"}`,
		funderA, t0, contract.ErrInsufficientBalance)
	require.Equal(t, "10", balanceOf(t, funderA))
	require.Equal(t, "0", balanceOf(t, funderB))
}

func TestTransferRejectsReservedRecipients(t *testing.T) {
	setup(t, "open")
	mintTo(t, funderA, "10")

	for _, to := range []string{"", contract.AddressUnissued.String(), contract.AddressTokenLedger.String()} {
		callRevert(t, contract.TokenTransfer,
			`{"token":"gvt","to":"`+to+`","amount":"1"}`,
			funderA, t0, contract.ErrInvalidRecipient)
	}
}

func TestZeroTransferSucceedsAndEmits(t *testing.T) {
	setup(t, "open")

	callOK(t, contract.TokenTransfer,
		`{"token":"gvt","to":"hive:bob","amount":"0"}`,
		funderA, t0)
	require.Equal(t, "tt|token:gvt|from:hive:alice|to:hive:bob|am:0", lastLog(t))
}

func TestApproveOverwrites(t *testing.T) {
	setup(t, "open")

	callOK(t, contract.TokenApprove,
		`{"token":"gvt","spender":"hive:bob","amount":"100"}`,
		funderA, t0)
	require.Equal(t, "100", allowanceOf(t, funderA, funderB))

	// approve is overwrite semantics, never additive
	callOK(t, contract.TokenApprove,
		`{"token":"gvt","spender":"hive:bob","amount":"40"}`,
		funderA, t0)
	require.Equal(t, "40", allowanceOf(t, funderA, funderB))
}

func TestTransferFromSpendsAllowance(t *testing.T) {
	setup(t, "open")
	mintTo(t, funderA, "100")
	callOK(t, contract.TokenApprove,
		`{"token":"gvt","spender":"hive:bob","amount":"50"}`,
		funderA, t0)

	callOK(t, contract.TokenTransferFrom,
		`{"token":"gvt","from":"hive:alice","to":"hive:carol","amount":"30"}`,
		funderB, t0)
	require.Equal(t, "70", balanceOf(t, funderA))
	require.Equal(t, "30", balanceOf(t, grantee))
	require.Equal(t, "20", allowanceOf(t, funderA, funderB))

	callRevert(t, contract.TokenTransferFrom,
		`{"token":"gvt","from":"hive:alice","to":"hive:carol","amount":"21"}`,
		funderB, t0, contract.ErrInsufficientAllowance)
}

func TestInfiniteAllowanceNeverDecrements(t *testing.T) {
	setup(t, "open")
	mintTo(t, funderA, "100")
	callOK(t, contract.TokenApprove,
		`{"token":"gvt","spender":"hive:bob","amount":"`+maxDec()+`"}`,
		funderA, t0)

	callOK(t, contract.TokenTransferFrom,
		`{"token":"gvt","from":"hive:alice","to":"hive:carol","amount":"60"}`,
		funderB, t0)
	require.Equal(t, maxDec(), allowanceOf(t, funderA, funderB))
	require.Equal(t, "40", balanceOf(t, funderA))
}

func TestTokenQueriesValidateAsset(t *testing.T) {
	setup(t, "open")
	callRevert(t, contract.TokenBalance,
		`{"token":"NOT VALID","account":"hive:alice"}`,
		funderA, t0, contract.ErrInvalidAsset)
	callRevert(t, contract.TokenTransfer,
		`{"token":"","to":"hive:bob","amount":"1"}`,
		funderA, t0, contract.ErrInvalidAsset)
}
