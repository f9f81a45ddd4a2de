package contract

import (
	"github.com/holiman/uint256"

	"grantvault/sdk"
)

// Per-(grant, funder) contribution ledger for the open-funding policy.
// Invariant: the sum over all funders of a grant equals the grant's amount
// at every point before its terminal transition. Contributions are not
// cleared on claim; the grant is spent and the residue is historical.

// getContribution reads how much the funder has currently contributed.
func getContribution(grantID uint64, addr sdk.Address) *uint256.Int {
	key := funderKey(grantID, addr)
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return uint256.NewInt(0)
	}
	return parseStoredAmount(*ptr)
}

// setContribution stores the decimal amount back to the host kv.
func setContribution(grantID uint64, addr sdk.Address, amount *uint256.Int) {
	sdk.StateSetObject(funderKey(grantID, addr), amount.Dec())
}

// addContribution bumps the funder's running total with checked arithmetic.
func addContribution(grantID uint64, addr sdk.Address, amount *uint256.Int) {
	current := getContribution(grantID, addr)
	sum, overflow := new(uint256.Int).AddOverflow(current, amount)
	if overflow {
		sdk.Revert("contribution overflow", ErrInvalidAmount)
	}
	setContribution(grantID, addr, sum)
}

// subContribution lowers the total; underflow fails the whole call, never clamps.
func subContribution(grantID uint64, addr sdk.Address, amount *uint256.Int) {
	current := getContribution(grantID, addr)
	rest, underflow := new(uint256.Int).SubOverflow(current, amount)
	if underflow {
		sdk.Revert("contribution underflow", ErrInvalidAmount)
	}
	setContribution(grantID, addr, rest)
}
