package contract

import (
	"github.com/holiman/uint256"

	"grantvault/sdk"
)

// Ledger state. Per asset the total supply is the fixed constant MAX
// (2^256-1): the unissued sentinel account lazily holds MAX minus whatever
// has been minted, so the conservation invariant
// sum(balances) + unissued == MAX holds without an issuance event.

// maxSupply is both the per-asset total supply and the infinite-allowance sentinel.
var maxSupply = new(uint256.Int).SetAllOne()

// parseStoredAmount decodes a decimal kv value; corrupt state is fatal.
func parseStoredAmount(val string) *uint256.Int {
	v, err := uint256.FromDecimal(val)
	if err != nil {
		sdk.Abort("corrupt amount in state: " + val)
	}
	return v
}

// getBalance reads the stored balance; the unissued sentinel defaults to MAX.
func getBalance(asset sdk.Asset, account sdk.Address) *uint256.Int {
	ptr := sdk.StateGetObject(balanceKey(asset, account))
	if ptr == nil || *ptr == "" {
		if account == AddressUnissued {
			return maxSupply.Clone()
		}
		return uint256.NewInt(0)
	}
	return parseStoredAmount(*ptr)
}

// setBalance writes the balance back as a decimal string.
func setBalance(asset sdk.Asset, account sdk.Address, amount *uint256.Int) {
	key := balanceKey(asset, account)
	if amount.IsZero() && account != AddressUnissued {
		sdk.StateDeleteObject(key)
		return
	}
	sdk.StateSetObject(key, amount.Dec())
}

// getAllowance reads allowance(owner, spender) for the asset, zero when unset.
func getAllowance(asset sdk.Asset, owner, spender sdk.Address) *uint256.Int {
	ptr := sdk.StateGetObject(allowanceKey(asset, owner, spender))
	if ptr == nil || *ptr == "" {
		return uint256.NewInt(0)
	}
	return parseStoredAmount(*ptr)
}

// setAllowance overwrites the allowance; zero clears the key entirely.
func setAllowance(asset sdk.Asset, owner, spender sdk.Address, amount *uint256.Int) {
	key := allowanceKey(asset, owner, spender)
	if amount.IsZero() {
		sdk.StateDeleteObject(key)
		return
	}
	sdk.StateSetObject(key, amount.Dec())
}
