package contract

import (
	"strconv"

	"grantvault/sdk"
)

// -----------------------------------------------------------------------------
// Counter Operations
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextGrantID assigns the next id. Ids are monotonic and never reused, even
// after a grant is claimed or removed.
func nextGrantID() uint64 {
	id := getCount(GrantsCount) + 1
	setCount(GrantsCount, id)
	return id
}

// -----------------------------------------------------------------------------
// Grant Record Persistence
// -----------------------------------------------------------------------------

// saveGrant stores the encoded grant record under its id key.
func saveGrant(g *Grant) {
	sdk.StateSetObject(grantKey(g.ID), encodeGrant(g))
}

// loadGrant fetches a grant by id, nil when the id was never assigned.
func loadGrant(id uint64) *Grant {
	ptr := sdk.StateGetObject(grantKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	g := decodeGrant(*ptr)
	if g == nil {
		sdk.Abort("corrupt grant record " + strconv.FormatUint(id, 10))
	}
	return g
}

// requireGrant loads a grant or reverts with the stable not-found symbol.
func requireGrant(id uint64) *Grant {
	g := loadGrant(id)
	if g == nil {
		sdk.Revert("grant not found", ErrGrantNotFound)
	}
	return g
}
