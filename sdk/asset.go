package sdk

type Asset string

// String returns the raw ticker string for logging or key building.
// Example payload: sdk.Asset("gvt").String()
func (a Asset) String() string {
	return string(a)
}

// IsValid keeps asset tickers short and key-safe (lowercase alnum plus underscore).
// Example payload: sdk.Asset("gvt").IsValid()
func (a Asset) IsValid() bool {
	if len(a) == 0 || len(a) > 16 {
		return false
	}
	for _, c := range a {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
