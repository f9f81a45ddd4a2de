package contract

import (
	"strings"

	"grantvault/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized reverts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Revert("contract not initialized", ErrNotInitialized)
	}
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg := decodeContractConfig(*ptr)
	if cfg == nil {
		sdk.Abort("corrupt contract config")
	}
	return cfg
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// mustContractConfig loads the config, reverting when the contract is fresh.
func mustContractConfig() *ContractConfig {
	cfg := loadContractConfig()
	if cfg == nil {
		sdk.Revert("contract not initialized", ErrNotInitialized)
	}
	return cfg
}

// isContractOwner returns true if the given address is the contract owner.
func isContractOwner(addr sdk.Address) bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.Owner == addr
}

// requireOwner reverts unless the caller is the contract owner.
func requireOwner(caller sdk.Address) {
	if !isContractOwner(caller) {
		sdk.Revert("caller is not the contract owner", ErrUnauthorized)
	}
}

// requirePolicy reverts when the entry point is not part of the configured
// funding policy's surface.
func requirePolicy(cfg *ContractConfig, policy GrantPolicy) {
	if cfg.Policy != policy {
		sdk.Revert("operation not supported by "+cfg.Policy.String()+" funding policy", ErrPolicyViolation)
	}
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: owner|policy
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.Owner.String() + "|" + cfg.Policy.String()
}

// decodeContractConfig deserializes a pipe-delimited string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 2 {
		return nil
	}
	var policy GrantPolicy
	switch parts[1] {
	case "open":
		policy = PolicyOpenFunding
	case "escrow":
		policy = PolicyFixedEscrow
	default:
		return nil
	}
	return &ContractConfig{
		Owner:  AddressFromString(parts[0]),
		Policy: policy,
	}
}
