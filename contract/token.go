package contract

import (
	"github.com/holiman/uint256"

	"grantvault/sdk"
)

// ValueLedger is the transfer contract the grant engine moves value through.
// Every method either completes or reverts the whole enclosing call; there
// is no partial-success mode.
type ValueLedger interface {
	BalanceOf(asset sdk.Asset, account sdk.Address) *uint256.Int
	Allowance(asset sdk.Asset, owner, spender sdk.Address) *uint256.Int
	Approve(asset sdk.Asset, owner, spender sdk.Address, amount *uint256.Int)
	Transfer(asset sdk.Asset, from, to sdk.Address, amount *uint256.Int)
	TransferFrom(asset sdk.Asset, spender, from, to sdk.Address, amount *uint256.Int)
	Mint(asset sdk.Asset, to sdk.Address, amount *uint256.Int)
}

// ledger is the kv-backed instance the engine and the token entry points share.
var ledger ValueLedger = kvLedger{}

type kvLedger struct{}

// requireValidRecipient rejects the null account, the ledger's own account
// and the unissued sentinel as transfer targets. Transfers never mint or
// burn; only Mint touches the sentinel.
func requireValidRecipient(to sdk.Address) {
	if to == "" || to == AddressTokenLedger || to == AddressUnissued {
		sdk.Revert("invalid recipient", ErrInvalidRecipient)
	}
}

func (kvLedger) BalanceOf(asset sdk.Asset, account sdk.Address) *uint256.Int {
	return getBalance(asset, account)
}

func (kvLedger) Allowance(asset sdk.Asset, owner, spender sdk.Address) *uint256.Int {
	return getAllowance(asset, owner, spender)
}

// Approve overwrites (never increments) the allowance and emits the approval event.
func (kvLedger) Approve(asset sdk.Asset, owner, spender sdk.Address, amount *uint256.Int) {
	setAllowance(asset, owner, spender, amount)
	emitApproval(asset, owner, spender, amount)
}

// Transfer moves value between two balance slots. Zero-amount transfers
// succeed and still emit the notification.
func (kvLedger) Transfer(asset sdk.Asset, from, to sdk.Address, amount *uint256.Int) {
	requireValidRecipient(to)
	fromBal := getBalance(asset, from)
	rest, underflow := new(uint256.Int).SubOverflow(fromBal, amount)
	if underflow {
		sdk.Revert("insufficient balance", ErrInsufficientBalance)
	}
	setBalance(asset, from, rest)
	toBal := getBalance(asset, to)
	sum, overflow := new(uint256.Int).AddOverflow(toBal, amount)
	if overflow {
		sdk.Revert("balance overflow", ErrInvalidAmount)
	}
	setBalance(asset, to, sum)
	emitTransfer(asset, from, to, amount)
}

// TransferFrom behaves as Transfer but spends the (from, spender) allowance.
// The MAX sentinel allowance is infinite and never decremented.
func (l kvLedger) TransferFrom(asset sdk.Asset, spender, from, to sdk.Address, amount *uint256.Int) {
	allowance := getAllowance(asset, from, spender)
	if allowance.Lt(amount) {
		sdk.Revert("insufficient allowance", ErrInsufficientAllowance)
	}
	if !allowance.Eq(maxSupply) {
		setAllowance(asset, from, spender, new(uint256.Int).Sub(allowance, amount))
	}
	l.Transfer(asset, from, to, amount)
}

// Mint is privileged issuance: it moves value out of the unissued sentinel,
// keeping per-asset supply constant at MAX.
func (kvLedger) Mint(asset sdk.Asset, to sdk.Address, amount *uint256.Int) {
	requireValidRecipient(to)
	unissued := getBalance(asset, AddressUnissued)
	rest, underflow := new(uint256.Int).SubOverflow(unissued, amount)
	if underflow {
		sdk.Revert("mint exceeds remaining supply", ErrInsufficientBalance)
	}
	setBalance(asset, AddressUnissued, rest)
	toBal := getBalance(asset, to)
	sum, overflow := new(uint256.Int).AddOverflow(toBal, amount)
	if overflow {
		sdk.Revert("balance overflow", ErrInvalidAmount)
	}
	setBalance(asset, to, sum)
	emitMint(asset, to, amount)
}

// -----------------------------------------------------------------------------
// Token Entry Points
// -----------------------------------------------------------------------------

// TokenBalance returns the balance of one account as a JSON amount view.
func TokenBalance(payload *string) *string {
	requireInitialized()
	args := decodeBalanceQueryArgs(payload)
	asset := requireAsset(args.Token)
	bal := ledger.BalanceOf(asset, AddressFromString(args.Account))
	return marshalView(&AmountView{Amount: bal.Dec()})
}

// TokenAllowance returns allowance(owner, spender) as a JSON amount view.
func TokenAllowance(payload *string) *string {
	requireInitialized()
	args := decodeAllowanceQueryArgs(payload)
	asset := requireAsset(args.Token)
	allowance := ledger.Allowance(asset, AddressFromString(args.Owner), AddressFromString(args.Spender))
	return marshalView(&AmountView{Amount: allowance.Dec()})
}

// TokenApprove sets allowance(caller, spender), overwriting any prior value.
func TokenApprove(payload *string) *string {
	requireInitialized()
	args := decodeApproveArgs(payload)
	asset := requireAsset(args.Token)
	spender := AddressFromString(args.Spender)
	if !spender.IsValid() {
		sdk.Revert("invalid spender", ErrInvalidRecipient)
	}
	amount := parseAmount(args.Amount)
	ledger.Approve(asset, getSenderAddress(), spender, amount)
	return strptr("approved")
}

// TokenTransfer moves value from the caller to another account.
func TokenTransfer(payload *string) *string {
	requireInitialized()
	args := decodeTransferArgs(payload)
	asset := requireAsset(args.Token)
	amount := parseAmount(args.Amount)
	ledger.Transfer(asset, getSenderAddress(), AddressFromString(args.To), amount)
	return strptr("transferred")
}

// TokenTransferFrom spends the caller's allowance to move value between accounts.
func TokenTransferFrom(payload *string) *string {
	requireInitialized()
	args := decodeTransferFromArgs(payload)
	asset := requireAsset(args.Token)
	amount := parseAmount(args.Amount)
	ledger.TransferFrom(asset, getSenderAddress(), AddressFromString(args.From), AddressFromString(args.To), amount)
	return strptr("transferred")
}

// TokenMint issues value to an account. Contract-owner only; the grant
// engine's core flows never mint.
func TokenMint(payload *string) *string {
	requireInitialized()
	requireOwner(getSenderAddress())
	args := decodeMintArgs(payload)
	asset := requireAsset(args.Token)
	amount := parseAmount(args.Amount)
	ledger.Mint(asset, AddressFromString(args.To), amount)
	return strptr("minted")
}
