package contract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"grantvault/contract"
	"grantvault/sdk"
)

func TestInitFixesPolicyAndOwner(t *testing.T) {
	sdk.MockReset()
	out := callOK(t, contract.Init, "open", ownerAddr, t0)
	require.Equal(t, "initialized with open funding policy", out)
	require.Equal(t, "init|own:hive:owner|pol:open", lastLog(t))

	owner := callOK(t, contract.Owner, "", outsider, t0)
	require.Equal(t, ownerAddr.String(), owner)
}

func TestInitRejectsUnknownPolicy(t *testing.T) {
	sdk.MockReset()
	callRevert(t, contract.Init, "yolo", ownerAddr, t0, contract.ErrInvalidPayload)
	callRevert(t, contract.Init, "", ownerAddr, t0, contract.ErrInvalidPayload)
}

func TestInitOnlyOnce(t *testing.T) {
	setup(t, "open")
	callRevert(t, contract.Init, "escrow", ownerAddr, t0, contract.ErrAlreadyInitialized)
	// not even the owner can flip the policy afterwards
	callRevert(t, contract.Init, "open", ownerAddr, t0, contract.ErrAlreadyInitialized)
}

func TestEntryPointsRequireInit(t *testing.T) {
	sdk.MockReset()
	callRevert(t, contract.CreateGrant,
		`{"token":"gvt","name":"x","recipient":"hive:carol"}`,
		funderA, t0, contract.ErrNotInitialized)
	callRevert(t, contract.TokenTransfer,
		`{"token":"gvt","to":"hive:bob","amount":"1"}`,
		funderA, t0, contract.ErrNotInitialized)
	callRevert(t, contract.Owner, "", funderA, t0, contract.ErrNotInitialized)
}
