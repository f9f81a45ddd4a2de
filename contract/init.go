package contract

import "grantvault/sdk"

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// Init initializes the contract with the caller as owner and fixes the
// funding policy. Must be called before any other function.
// Payload: "open" or "escrow"
func Init(payload *string) *string {
	if isContractInitialized() {
		sdk.Revert("contract already initialized", ErrAlreadyInitialized)
	}

	mode := unwrapPayload(payload, "funding policy required (open or escrow)")
	var policy GrantPolicy
	switch mode {
	case "open":
		policy = PolicyOpenFunding
	case "escrow":
		policy = PolicyFixedEscrow
	default:
		sdk.Revert("unknown funding policy: "+mode, ErrInvalidPayload)
	}

	cfg := ContractConfig{
		Owner:  getSenderAddress(),
		Policy: policy,
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Owner.String(), mode)
	return strptr("initialized with " + mode + " funding policy")
}
