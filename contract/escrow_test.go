package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grantvault/contract"
)

// escrowGrant creates a fully funded grant as the owner and returns its id.
func escrowGrant(t *testing.T, amount string) string {
	t.Helper()
	return callOK(t, contract.CreateGrant,
		`{"token":"gvt","name":"dev bounty","recipient":"hive:carol","amount":"`+amount+`"}`,
		ownerAddr, t0)
}

func TestEscrowCreatePullsFullAmount(t *testing.T) {
	setup(t, "escrow")
	mintTo(t, ownerAddr, "1000")
	approveVault(t, ownerAddr, "500")

	id := escrowGrant(t, "500")
	require.Equal(t, "1", id)
	require.Equal(t, "500", balanceOf(t, ownerAddr))
	require.Equal(t, "500", balanceOf(t, contract.AddressGrantVault))

	view := grantView(t, id)
	require.Equal(t, "500", view.Amount)
	require.Equal(t, ownerAddr.String(), view.Creator)
	require.False(t, view.Spent)
}

func TestEscrowCreateOwnerOnly(t *testing.T) {
	setup(t, "escrow")
	mintTo(t, funderA, "1000")
	approveVault(t, funderA, "500")

	callRevert(t, contract.CreateGrant,
		`{"token":"gvt","name":"dev bounty","recipient":"hive:carol","amount":"500"}`,
		funderA, t0, contract.ErrUnauthorized)
}

func TestEscrowCreateNeedsPositiveAmount(t *testing.T) {
	setup(t, "escrow")
	callRevert(t, contract.CreateGrant,
		`{"token":"gvt","name":"dev bounty","recipient":"hive:carol","amount":"0"}`,
		ownerAddr, t0, contract.ErrInvalidAmount)
	callRevert(t, contract.CreateGrant,
		`{"token":"gvt","name":"dev bounty","recipient":"hive:carol"}`,
		ownerAddr, t0, contract.ErrInvalidAmount)
}

func TestEscrowCreateWithoutAllowanceRollsBack(t *testing.T) {
	setup(t, "escrow")
	mintTo(t, ownerAddr, "1000")

	callRevert(t, contract.CreateGrant,
		`{"token":"gvt","name":"dev bounty","recipient":"hive:carol","amount":"500"}`,
		ownerAddr, t0, contract.ErrInsufficientAllowance)

	// the failed pull discards the half-written grant and the id counter
	require.Equal(t, "0", callOK(t, contract.CurrentGrantID, "", ownerAddr, t0))
	require.Equal(t, "1000", balanceOf(t, ownerAddr))
}

func TestEscrowRemoveRefundsCreator(t *testing.T) {
	setup(t, "escrow")
	mintTo(t, ownerAddr, "1000")
	approveVault(t, ownerAddr, "500")
	id := escrowGrant(t, "500")

	callOK(t, contract.RemoveGrant, id, ownerAddr, midWindow)
	require.Equal(t, "1000", balanceOf(t, ownerAddr))
	require.Equal(t, "0", balanceOf(t, contract.AddressGrantVault))
	require.True(t, grantView(t, id).Spent)

	// removing the now-empty grant again has nothing left to refund
	callRevert(t, contract.RemoveGrant, id, ownerAddr, midWindow, contract.ErrZeroAmount)
}

func TestEscrowRemoveOnlyBeforeWindowEnds(t *testing.T) {
	setup(t, "escrow")
	mintTo(t, ownerAddr, "1000")
	approveVault(t, ownerAddr, "500")
	id := escrowGrant(t, "500")

	callRevert(t, contract.RemoveGrant, id, ownerAddr, atWindowEnd, contract.ErrWindowClosed)
	callRevert(t, contract.RemoveGrant, id, ownerAddr, afterWindow, contract.ErrWindowClosed)

	// past the window only the recipient's claim path remains
	callOK(t, contract.ClaimGrant, id, grantee, afterWindow)
	require.Equal(t, "500", balanceOf(t, grantee))
}

func TestEscrowRemoveOwnerOnly(t *testing.T) {
	setup(t, "escrow")
	mintTo(t, ownerAddr, "1000")
	approveVault(t, ownerAddr, "500")
	id := escrowGrant(t, "500")

	callRevert(t, contract.RemoveGrant, id, outsider, midWindow, contract.ErrUnauthorized)
}

func TestEscrowRejectsOpenPolicyOps(t *testing.T) {
	setup(t, "escrow")
	mintTo(t, ownerAddr, "1000")
	approveVault(t, ownerAddr, "500")
	escrowGrant(t, "500")

	callRevert(t, contract.FundGrant, `{"id":1,"amount":"5"}`,
		funderA, midWindow, contract.ErrPolicyViolation)
	callRevert(t, contract.WithdrawGrant, `{"id":1,"amount":"5"}`,
		funderA, midWindow, contract.ErrPolicyViolation)
}
