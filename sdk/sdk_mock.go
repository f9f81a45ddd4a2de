//go:build !wasm

package sdk

import "strconv"

// In-memory emulation of the wasm host, used by unit tests. Reverts and
// aborts become typed panics; the test harness snapshots and restores the
// state map to model whole-call rollback.

var (
	mockState = map[string]string{}
	mockLogs  []string
	mockEnv   = defaultEnv()
	mockTxSeq uint64
)

func defaultEnv() Env {
	return Env{
		ContractID:  "contract:grantvault",
		TxID:        "tx-0",
		BlockID:     "block-0",
		BlockHeight: 0,
		Timestamp:   "2025-01-01T00:00:00",
		Sender:      Sender{Address: "hive:nobody"},
	}
}

// Log records the message so tests can assert on emitted events.
func Log(s string) {
	mockLogs = append(mockLogs, s)
}

// StateSetObject stores a key/value string pair into the mock kv store.
func StateSetObject(key string, value string) {
	mockState[key] = value
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	val, ok := mockState[key]
	if !ok {
		return nil
	}
	return &val
}

// StateDeleteObject removes the key entirely.
func StateDeleteObject(key string) {
	delete(mockState, key)
}

// GetEnv returns the current mock environment snapshot.
func GetEnv() Env {
	return mockEnv
}

// GetEnvKey mirrors the host's single-key env lookup.
func GetEnvKey(key string) *string {
	switch key {
	case "contract.id":
		return &mockEnv.ContractID
	case "tx.id":
		return &mockEnv.TxID
	case "block.id":
		return &mockEnv.BlockID
	case "block.timestamp":
		return &mockEnv.Timestamp
	default:
		return nil
	}
}

// Abort panics with an AbortError, mirroring the host's hard stop.
func Abort(msg string) {
	panic(&AbortError{Msg: msg})
}

// Revert panics with a RevertError carrying the stable symbol.
func Revert(msg string, symbol string) {
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

// -----------------------------------------------------------------------------
// Test hooks
// -----------------------------------------------------------------------------

// MockReset wipes state, logs and env back to defaults for a fresh test.
func MockReset() {
	mockState = map[string]string{}
	mockLogs = nil
	mockEnv = defaultEnv()
	mockTxSeq = 0
}

// MockBeginTx starts a new simulated transaction with the given sender and
// block timestamp. The tx id changes so env caches refresh.
func MockBeginTx(sender Address, timestamp string) {
	mockTxSeq++
	mockEnv.TxID = "tx-" + strconv.FormatUint(mockTxSeq, 10)
	mockEnv.Sender = Sender{Address: sender, RequiredAuths: []Address{sender}}
	if timestamp != "" {
		mockEnv.Timestamp = timestamp
	}
}

// MockLogs returns all log lines emitted so far.
func MockLogs() []string {
	return mockLogs
}

// MockStateSnapshot copies the kv store so a failed call can be rolled back.
func MockStateSnapshot() map[string]string {
	snap := make(map[string]string, len(mockState))
	for k, v := range mockState {
		snap[k] = v
	}
	return snap
}

// MockStateRestore replaces the kv store with an earlier snapshot.
func MockStateRestore(snap map[string]string) {
	mockState = make(map[string]string, len(snap))
	for k, v := range snap {
		mockState[k] = v
	}
}
