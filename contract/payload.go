package contract

import (
	"strconv"
	"strings"

	"github.com/CosmWasm/tinyjson"
	"github.com/holiman/uint256"

	"grantvault/sdk"
)

// unwrapPayload trims quotes and whitespace, reverting if the payload is empty.
// Hosts deliver scalar payloads as JSON strings, so a quoted layer may wrap
// the actual value.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Revert(errMsg, ErrInvalidPayload)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Revert(errMsg, ErrInvalidPayload)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Revert(errMsg, ErrInvalidPayload)
			}
		}
	}
	return raw
}

// decodeJSONArgs funnels every JSON payload through one revert site.
func decodeJSONArgs(payload *string, v tinyjson.Unmarshaler, what string) {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		sdk.Revert(what+" payload missing", ErrInvalidPayload)
	}
	if err := tinyjson.Unmarshal([]byte(*payload), v); err != nil {
		sdk.Revert("invalid "+what+" payload", ErrInvalidPayload)
	}
}

func decodeCreateGrantArgs(payload *string) *CreateGrantArgs {
	args := &CreateGrantArgs{}
	decodeJSONArgs(payload, args, "grant create")
	return args
}

func decodeFundGrantArgs(payload *string) *FundGrantArgs {
	args := &FundGrantArgs{}
	decodeJSONArgs(payload, args, "grant fund")
	return args
}

func decodeWithdrawGrantArgs(payload *string) *WithdrawGrantArgs {
	args := &WithdrawGrantArgs{}
	decodeJSONArgs(payload, args, "grant withdraw")
	return args
}

func decodeContributionQueryArgs(payload *string) *ContributionQueryArgs {
	args := &ContributionQueryArgs{}
	decodeJSONArgs(payload, args, "contribution query")
	return args
}

func decodeApproveArgs(payload *string) *ApproveArgs {
	args := &ApproveArgs{}
	decodeJSONArgs(payload, args, "token approve")
	return args
}

func decodeTransferArgs(payload *string) *TransferArgs {
	args := &TransferArgs{}
	decodeJSONArgs(payload, args, "token transfer")
	return args
}

func decodeTransferFromArgs(payload *string) *TransferFromArgs {
	args := &TransferFromArgs{}
	decodeJSONArgs(payload, args, "token transfer_from")
	return args
}

func decodeMintArgs(payload *string) *MintArgs {
	args := &MintArgs{}
	decodeJSONArgs(payload, args, "token mint")
	return args
}

func decodeBalanceQueryArgs(payload *string) *BalanceQueryArgs {
	args := &BalanceQueryArgs{}
	decodeJSONArgs(payload, args, "balance query")
	return args
}

func decodeAllowanceQueryArgs(payload *string) *AllowanceQueryArgs {
	args := &AllowanceQueryArgs{}
	decodeJSONArgs(payload, args, "allowance query")
	return args
}

// decodeGrantIDPayload accepts a bare decimal grant id, optionally JSON-quoted.
func decodeGrantIDPayload(payload *string) uint64 {
	raw := unwrapPayload(payload, "grant id required")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		sdk.Revert("invalid grant id", ErrInvalidPayload)
	}
	return id
}

// parseAmount converts a decimal amount field; the empty string means zero.
// Amounts are unsigned 256-bit integers, the smallest value unit, no
// fractional part.
func parseAmount(val string) *uint256.Int {
	val = strings.TrimSpace(val)
	if val == "" {
		return uint256.NewInt(0)
	}
	v, err := uint256.FromDecimal(val)
	if err != nil {
		sdk.Revert("invalid amount", ErrInvalidAmount)
	}
	return v
}

// requireAsset validates a payload ticker and wraps it.
func requireAsset(val string) sdk.Asset {
	asset := AssetFromString(strings.TrimSpace(val))
	if !asset.IsValid() {
		sdk.Revert("invalid asset", ErrInvalidAsset)
	}
	return asset
}

// marshalView serializes a read-accessor view back to the caller.
func marshalView(v tinyjson.Marshaler) *string {
	data, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("failed to marshal view: " + err.Error())
	}
	s := string(data)
	return &s
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }

// uint64ToString turns an id back into decimal text for returns and logs.
func uint64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}
