package contract

import "grantvault/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// grantKey builds a storage key string for a grant record by id.
func grantKey(id uint64) string {
	var buf [9]byte
	buf[0] = kGrantRecord
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// funderKey mixes grant id plus funder address bytes to avoid nested maps in host storage.
func funderKey(grantID uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kGrantFunder)
	buf = packU64LE(grantID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// balanceKey scopes ledger balances by asset then account. Asset tickers are
// key-safe (see sdk.Asset.IsValid) so '|' never collides.
func balanceKey(asset sdk.Asset, account sdk.Address) string {
	assetStr := AssetToString(asset)
	accountStr := AddressToString(account)
	buf := make([]byte, 0, 1+len(assetStr)+1+len(accountStr))
	buf = append(buf, kTokenBalance)
	buf = append(buf, assetStr...)
	buf = append(buf, '|')
	buf = append(buf, accountStr...)
	return string(buf)
}

// allowanceKey stores the (owner, spender) pair under the asset scope.
func allowanceKey(asset sdk.Asset, owner, spender sdk.Address) string {
	assetStr := AssetToString(asset)
	ownerStr := AddressToString(owner)
	spenderStr := AddressToString(spender)
	buf := make([]byte, 0, 1+len(assetStr)+1+len(ownerStr)+1+len(spenderStr))
	buf = append(buf, kTokenAllowance)
	buf = append(buf, assetStr...)
	buf = append(buf, '|')
	buf = append(buf, ownerStr...)
	buf = append(buf, '|')
	buf = append(buf, spenderStr...)
	return string(buf)
}
