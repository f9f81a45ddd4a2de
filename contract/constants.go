package contract

import "grantvault/sdk"

// -----------------------------------------------------------------------------
// Funding Window
// -----------------------------------------------------------------------------

// FundingWindowSeconds is the fixed interval between a grant's creation and
// its unlock time (7 days). Funding and withdrawal are permitted strictly
// before the window ends; claiming strictly after.
const FundingWindowSeconds int64 = 604800

// -----------------------------------------------------------------------------
// Ledger Accounts
// -----------------------------------------------------------------------------

const (
	// AddressUnissued is the sentinel slot conceptually holding MAX minus
	// everything minted so far. Never a valid transfer recipient.
	AddressUnissued sdk.Address = "system:unissued"
	// AddressTokenLedger is the ledger's own account; transfers into it are
	// rejected like the null account.
	AddressTokenLedger sdk.Address = "system:token_ledger"
	// AddressGrantVault holds all escrowed grant value. Funders approve the
	// vault as spender so the engine can pull contributions.
	AddressGrantVault sdk.Address = "system:grant_vault"
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxNameLength limits the size of a grant's display name.
	MaxNameLength = 200
	// MaxPurposeLength limits the size of the optional purpose text.
	MaxPurposeLength = 500
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// GrantsCount holds the last assigned grant id (ids are never reused).
	GrantsCount = "count:grants"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kGrantRecord stores encoded Grant records.
	kGrantRecord byte = 0x01
	// kGrantFunder stores per-(grant, funder) contribution amounts.
	kGrantFunder byte = 0x02
	// kTokenBalance stores per-(asset, account) ledger balances.
	kTokenBalance byte = 0x10
	// kTokenAllowance stores per-(asset, owner, spender) allowances.
	kTokenAllowance byte = 0x11
)

// ContractConfigKey stores the owner/policy record written at init.
const ContractConfigKey = "cfg"
