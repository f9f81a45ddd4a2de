package contract_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"grantvault/contract"
	"grantvault/sdk"
)

const (
	ownerAddr = sdk.Address("hive:owner")
	funderA   = sdk.Address("hive:alice")
	funderB   = sdk.Address("hive:bob")
	grantee   = sdk.Address("hive:carol")
	outsider  = sdk.Address("hive:mallory")

	// The funding window is 7 days, so with t0 at Sep 3 the window ends at
	// Sep 10 00:00 and afterWindow is safely past it.
	t0          = "2025-09-03T00:00:00"
	midWindow   = "2025-09-06T12:00:00"
	atWindowEnd = "2025-09-10T00:00:00"
	afterWindow = "2025-09-11T00:00:00"
)

type entryFn func(*string) *string

// call runs one entry point as one simulated transaction. A revert or abort
// rolls the kv store back to the pre-call snapshot, matching how the host
// discards all writes of a failed call.
func call(t *testing.T, fn entryFn, payload string, sender sdk.Address, ts string) (result *string, revert *sdk.RevertError) {
	t.Helper()
	sdk.MockBeginTx(sender, ts)
	snap := sdk.MockStateSnapshot()
	defer func() {
		if r := recover(); r != nil {
			sdk.MockStateRestore(snap)
			switch e := r.(type) {
			case *sdk.RevertError:
				revert = e
			case *sdk.AbortError:
				t.Fatalf("unexpected abort: %s", e.Msg)
			default:
				panic(r)
			}
		}
	}()
	var p *string
	if payload != "" {
		p = &payload
	}
	result = fn(p)
	return
}

func callOK(t *testing.T, fn entryFn, payload string, sender sdk.Address, ts string) string {
	t.Helper()
	res, rev := call(t, fn, payload, sender, ts)
	if rev != nil {
		t.Fatalf("unexpected revert %q: %s", rev.Symbol, rev.Msg)
	}
	require.NotNil(t, res)
	return *res
}

func callRevert(t *testing.T, fn entryFn, payload string, sender sdk.Address, ts string, symbol string) *sdk.RevertError {
	t.Helper()
	res, rev := call(t, fn, payload, sender, ts)
	if rev == nil {
		got := "<nil>"
		if res != nil {
			got = *res
		}
		t.Fatalf("expected revert %q, call succeeded with %q", symbol, got)
	}
	require.Equal(t, symbol, rev.Symbol, "revert message was: %s", rev.Msg)
	return rev
}

// setup wipes the mock host and initializes the contract under the policy.
func setup(t *testing.T, policy string) {
	t.Helper()
	sdk.MockReset()
	callOK(t, contract.Init, policy, ownerAddr, t0)
}

func mintTo(t *testing.T, to sdk.Address, amount string) {
	t.Helper()
	callOK(t, contract.TokenMint,
		`{"token":"gvt","to":"`+to.String()+`","amount":"`+amount+`"}`,
		ownerAddr, t0)
}

// approveVault lets the grant engine pull contributions from the account.
func approveVault(t *testing.T, owner sdk.Address, amount string) {
	t.Helper()
	callOK(t, contract.TokenApprove,
		`{"token":"gvt","spender":"`+contract.AddressGrantVault.String()+`","amount":"`+amount+`"}`,
		owner, t0)
}

func balanceOf(t *testing.T, account sdk.Address) string {
	t.Helper()
	out := callOK(t, contract.TokenBalance,
		`{"token":"gvt","account":"`+account.String()+`"}`,
		ownerAddr, t0)
	return amountField(t, out)
}

func allowanceOf(t *testing.T, owner, spender sdk.Address) string {
	t.Helper()
	out := callOK(t, contract.TokenAllowance,
		`{"token":"gvt","owner":"`+owner.String()+`","spender":"`+spender.String()+`"}`,
		ownerAddr, t0)
	return amountField(t, out)
}

func contributionOf(t *testing.T, grantID string, account sdk.Address) string {
	t.Helper()
	out := callOK(t, contract.GetContribution,
		`{"id":`+grantID+`,"account":"`+account.String()+`"}`,
		ownerAddr, t0)
	return amountField(t, out)
}

func grantView(t *testing.T, grantID string) contract.GrantView {
	t.Helper()
	out := callOK(t, contract.GetGrant, grantID, ownerAddr, t0)
	var view contract.GrantView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	return view
}

func amountField(t *testing.T, raw string) string {
	t.Helper()
	var v contract.AmountView
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v.Amount
}

func lastLog(t *testing.T) string {
	t.Helper()
	logs := sdk.MockLogs()
	require.NotEmpty(t, logs)
	return logs[len(logs)-1]
}
