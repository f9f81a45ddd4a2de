package sdk

// Intent mirrors the host's transaction intent blobs attached to a call.
type Intent struct {
	Type string            `json:"type"`
	Args map[string]string `json:"args"`
}

// Sender describes the account that signed the current transaction.
type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

// Env is the execution environment snapshot for the current transaction.
type Env struct {
	ContractID  string
	TxID        string
	BlockID     string
	BlockHeight uint64
	Timestamp   string
	Sender      Sender
	Intents     []Intent
}

// AbortError is raised (as a panic) when execution hits an internal or host fault.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return e.Msg }

// RevertError carries the stable error symbol surfaced to callers when a
// precondition fails. The host discards all state changes of the call.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e *RevertError) Error() string { return e.Symbol + ": " + e.Msg }
