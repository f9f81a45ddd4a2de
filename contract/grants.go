package contract

import (
	"github.com/holiman/uint256"

	"grantvault/sdk"
)

// Grant lifecycle: Created -> Open (amount >= 0) -> {Claimed | Removed}.
// While now < end the grant is open for funding/withdrawal (open policy) or
// removal (escrow policy); once now >= end only the recipient may claim.
// All mutating flows follow checks-effects-interactions: the engine's own
// bookkeeping is committed before the ledger moves value, so a ledger that
// re-enters the engine mid-transfer observes consistent state.

// CreateGrant registers a new grant. Under the open policy anyone may create
// and the amount starts at zero; under the escrow policy only the owner may
// create and the full amount is pulled into the vault atomically.
func CreateGrant(payload *string) *string {
	requireInitialized()
	cfg := mustContractConfig()
	args := decodeCreateGrantArgs(payload)
	caller := getSenderAddress()

	if args.Name == "" || len(args.Name) > MaxNameLength {
		sdk.Revert("invalid grant name", ErrInvalidPayload)
	}
	if len(args.Purpose) > MaxPurposeLength {
		sdk.Revert("purpose too long", ErrInvalidPayload)
	}
	asset := requireAsset(args.Token)
	recipient := AddressFromString(args.Recipient)
	if !recipient.IsValid() {
		sdk.Revert("invalid recipient", ErrInvalidRecipient)
	}
	amount := parseAmount(args.Amount)

	now := nowUnix()
	g := &Grant{
		ID:        0, // assigned below, after policy checks
		Name:      args.Name,
		Purpose:   args.Purpose,
		Token:     asset,
		Recipient: recipient,
		Creator:   caller,
		Amount:    uint256.NewInt(0),
		Start:     now,
		End:       now + FundingWindowSeconds,
	}

	switch cfg.Policy {
	case PolicyFixedEscrow:
		requireOwner(caller)
		if amount.IsZero() {
			sdk.Revert("escrow grants need a positive amount", ErrInvalidAmount)
		}
		g.ID = nextGrantID()
		g.Amount = amount
		saveGrant(g)
		// pull after bookkeeping; a failed pull reverts the whole creation
		ledger.TransferFrom(asset, AddressGrantVault, caller, AddressGrantVault, amount)
	case PolicyOpenFunding:
		if !amount.IsZero() {
			sdk.Revert("open funding grants start at zero", ErrInvalidAmount)
		}
		g.ID = nextGrantID()
		saveGrant(g)
	default:
		sdk.Abort("unknown funding policy")
	}

	emitGrantCreated(g)
	return strptr(uint64ToString(g.ID))
}

// FundGrant adds the caller's contribution to an open grant. Funding is
// additive and unordered across callers.
func FundGrant(payload *string) *string {
	requireInitialized()
	cfg := mustContractConfig()
	requirePolicy(cfg, PolicyOpenFunding)
	args := decodeFundGrantArgs(payload)
	caller := getSenderAddress()

	g := requireGrant(args.GrantID)
	if nowUnix() >= g.End {
		sdk.Revert("grant ready for collection", ErrWindowClosed)
	}
	amount := parseAmount(args.Amount)
	if amount.IsZero() {
		sdk.Revert("invalid amount", ErrInvalidAmount)
	}

	sum, overflow := new(uint256.Int).AddOverflow(g.Amount, amount)
	if overflow {
		sdk.Revert("grant amount overflow", ErrInvalidAmount)
	}
	g.Amount = sum
	saveGrant(g)
	addContribution(g.ID, caller, amount)
	ledger.TransferFrom(g.Token, AddressGrantVault, caller, AddressGrantVault, amount)

	emitGrantFunded(g.ID, g.Token, amount, caller)
	return strptr("funded")
}

// WithdrawGrant returns part of the caller's contribution while the window
// is still open. The boundary is strict: the recorded contribution must be
// strictly greater than the requested amount, so withdrawing the exact full
// contribution is rejected. That matches the original contract's behavior
// and is kept verbatim for compatibility.
func WithdrawGrant(payload *string) *string {
	requireInitialized()
	cfg := mustContractConfig()
	requirePolicy(cfg, PolicyOpenFunding)
	args := decodeWithdrawGrantArgs(payload)
	caller := getSenderAddress()

	g := requireGrant(args.GrantID)
	if nowUnix() >= g.End {
		sdk.Revert("grant ready for collection", ErrWindowClosed)
	}
	contribution := getContribution(g.ID, caller)
	if contribution.IsZero() {
		sdk.Revert("nothing to withdraw", ErrNothingToWithdraw)
	}
	amount := parseAmount(args.Amount)
	if !amount.Lt(contribution) {
		sdk.Revert("amount too high", ErrAmountTooHigh)
	}

	rest, underflow := new(uint256.Int).SubOverflow(g.Amount, amount)
	if underflow {
		sdk.Revert("grant amount underflow", ErrInvalidAmount)
	}
	g.Amount = rest
	saveGrant(g)
	subContribution(g.ID, caller, amount)
	ledger.Transfer(g.Token, AddressGrantVault, caller, amount)

	emitGrantWithdrawn(g.ID, g.Token, amount, caller)
	return strptr("withdrawn")
}

// ClaimGrant releases the full escrowed amount to the recipient once the
// window has closed. The amount is zeroed before the outbound transfer, so
// a second claim always fails with already_spent.
func ClaimGrant(payload *string) *string {
	requireInitialized()
	id := decodeGrantIDPayload(payload)
	caller := getSenderAddress()

	g := requireGrant(id)
	if nowUnix() < g.End {
		sdk.Revert("grant still locked", ErrWindowOpen)
	}
	if g.Spent() {
		sdk.Revert("grant already spent", ErrAlreadySpent)
	}
	if caller != g.Recipient {
		sdk.Revert("caller is not the grant recipient", ErrUnauthorized)
	}

	payout := g.Amount.Clone()
	g.Amount = uint256.NewInt(0)
	saveGrant(g)
	ledger.Transfer(g.Token, AddressGrantVault, g.Recipient, payout)

	emitGrantClaimed(g.ID, g.Token, payout, g.Recipient)
	return strptr("claimed")
}

// RemoveGrant refunds an escrowed grant to its creator. Only possible for
// the owner, only before the window ends; afterwards the recipient alone
// may collect.
func RemoveGrant(payload *string) *string {
	requireInitialized()
	cfg := mustContractConfig()
	requirePolicy(cfg, PolicyFixedEscrow)
	caller := getSenderAddress()
	requireOwner(caller)
	id := decodeGrantIDPayload(payload)

	g := requireGrant(id)
	if nowUnix() >= g.End {
		sdk.Revert("grant ready for collection", ErrWindowClosed)
	}
	if g.Spent() {
		sdk.Revert("zero amount", ErrZeroAmount)
	}

	refund := g.Amount.Clone()
	g.Amount = uint256.NewInt(0)
	saveGrant(g)
	ledger.Transfer(g.Token, AddressGrantVault, g.Creator, refund)

	emitGrantRemoved(g.ID, g.Token, refund)
	return strptr("removed")
}

// -----------------------------------------------------------------------------
// Read Accessors
// -----------------------------------------------------------------------------

// GetGrant returns the grant record as a JSON view.
func GetGrant(payload *string) *string {
	requireInitialized()
	g := requireGrant(decodeGrantIDPayload(payload))
	view := &GrantView{
		ID:        g.ID,
		Name:      g.Name,
		Purpose:   g.Purpose,
		Token:     AssetToString(g.Token),
		Recipient: AddressToString(g.Recipient),
		Creator:   AddressToString(g.Creator),
		Amount:    g.Amount.Dec(),
		Start:     g.Start,
		End:       g.End,
		Spent:     g.Spent(),
	}
	return marshalView(view)
}

// GetContribution returns one funder's recorded contribution for a grant.
func GetContribution(payload *string) *string {
	requireInitialized()
	args := decodeContributionQueryArgs(payload)
	requireGrant(args.GrantID)
	contribution := getContribution(args.GrantID, AddressFromString(args.Account))
	return marshalView(&AmountView{Amount: contribution.Dec()})
}

// CurrentGrantID returns the last assigned grant id as decimal text.
func CurrentGrantID(_ *string) *string {
	requireInitialized()
	return strptr(uint64ToString(getCount(GrantsCount)))
}

// Owner returns the contract owner address.
func Owner(_ *string) *string {
	cfg := mustContractConfig()
	return strptr(cfg.Owner.String())
}
