package contract

import (
	"github.com/holiman/uint256"

	"grantvault/sdk"
)

// GrantPolicy selects the funding model fixed at contract init.
type GrantPolicy uint8

const (
	PolicyUnspecified GrantPolicy = 0
	// PolicyOpenFunding: anyone creates grants at zero and funds them during
	// the window; funders may withdraw (partially) before the window closes.
	PolicyOpenFunding GrantPolicy = 1
	// PolicyFixedEscrow: the contract owner creates grants with the full
	// amount escrowed atomically; the owner may remove them before the
	// window closes.
	PolicyFixedEscrow GrantPolicy = 2
)

// String prints the policy as the short text used in init payloads and events.
// Example payload: PolicyOpenFunding.String()
func (p GrantPolicy) String() string {
	switch p {
	case PolicyOpenFunding:
		return "open"
	case PolicyFixedEscrow:
		return "escrow"
	default:
		return "unspecified"
	}
}

// ContractConfig is written once at init and read by every entry point.
type ContractConfig struct {
	Owner  sdk.Address
	Policy GrantPolicy
}

// Grant is the escrow record for one time-boxed grant. Amount tracks the
// currently escrowed value; once it reaches zero through a claim or removal
// the grant is spent for good.
type Grant struct {
	ID        uint64
	Name      string
	Purpose   string
	Token     sdk.Asset
	Recipient sdk.Address
	Creator   sdk.Address
	Amount    *uint256.Int
	Start     int64
	End       int64
}

// Spent reports whether the grant has reached its terminal zero state.
func (g *Grant) Spent() bool {
	return g.Amount.IsZero()
}

//tinyjson:json
type CreateGrantArgs struct {
	Token     string `json:"token"`
	Name      string `json:"name"`
	Purpose   string `json:"purpose,omitempty"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount,omitempty"`
}

//tinyjson:json
type FundGrantArgs struct {
	GrantID uint64 `json:"id"`
	Amount  string `json:"amount"`
}

//tinyjson:json
type WithdrawGrantArgs struct {
	GrantID uint64 `json:"id"`
	Amount  string `json:"amount"`
}

//tinyjson:json
type ContributionQueryArgs struct {
	GrantID uint64 `json:"id"`
	Account string `json:"account"`
}

//tinyjson:json
type ApproveArgs struct {
	Token   string `json:"token"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

//tinyjson:json
type TransferArgs struct {
	Token  string `json:"token"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

//tinyjson:json
type TransferFromArgs struct {
	Token  string `json:"token"`
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

//tinyjson:json
type MintArgs struct {
	Token  string `json:"token"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

//tinyjson:json
type BalanceQueryArgs struct {
	Token   string `json:"token"`
	Account string `json:"account"`
}

//tinyjson:json
type AllowanceQueryArgs struct {
	Token   string `json:"token"`
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
}

// GrantView is the JSON shape returned by the grant_get read accessor.
//
//tinyjson:json
type GrantView struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Purpose   string `json:"purpose,omitempty"`
	Token     string `json:"token"`
	Recipient string `json:"recipient"`
	Creator   string `json:"creator"`
	Amount    string `json:"amount"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
	Spent     bool   `json:"spent"`
}

// AmountView wraps a single decimal amount for balance/allowance/funders reads.
//
//tinyjson:json
type AmountView struct {
	Amount string `json:"amount"`
}

// AddressFromString converts a human string to the platform address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }

// AssetFromString wraps a ticker string so type checking keeps us honest.
// Example payload: AssetFromString("gvt")
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }

// AssetToString unwraps the ticker string for logs or key building.
// Example payload: AssetToString(AssetFromString("gvt"))
func AssetToString(a sdk.Asset) string { return a.String() }
