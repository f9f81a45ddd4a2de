package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
// Example payload: sdk.Address("hive:alice").String()
func (a Address) String() string {
	return string(a)
}

// Domain quickly checks the prefix to tell user/contract/system addresses apart.
// Example payload: sdk.Address("contract:grantvault").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsValid is a light sanity check: a non-empty prefix:name shape.
// Example payload: sdk.Address("hive:alice").IsValid()
func (a Address) IsValid() bool {
	s := a.String()
	idx := strings.Index(s, ":")
	return idx > 0 && idx < len(s)-1
}
